package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "WIKIWALL_CONFIG"
	geminiKeyEnv   = "GEMINI_API_KEY"
	geminiModelEnv = "GEMINI_MODEL"
)

// Config holds all tunable settings for a run. Every field has a working
// default; a YAML file and environment variables layer on top.
type Config struct {
	Retry     RetryConfig    `yaml:"retry"`
	Layout    LayoutConfig   `yaml:"layout"`
	Endpoints EndpointConfig `yaml:"endpoints"`
	Gemini    GeminiConfig   `yaml:"gemini"`
	OutputDir string         `yaml:"outputDir"`
}

// RetryConfig bounds the download retry loop.
type RetryConfig struct {
	MaxAttempts int     `yaml:"maxAttempts"`
	DelaySecs   float64 `yaml:"delaySeconds"`
}

// Delay converts the configured seconds to a time.Duration.
func (r RetryConfig) Delay() time.Duration {
	return time.Duration(r.DelaySecs * float64(time.Second))
}

// LayoutConfig tunes the wallpaper composition geometry and typography.
type LayoutConfig struct {
	BorderFrac         float64 `yaml:"borderFrac"`         // border as a fraction of canvas width
	CaptionFrac        float64 `yaml:"captionFrac"`        // share of the content rect reserved for text
	SmallTierThreshold int     `yaml:"smallTierThreshold"` // caption length that forces the small font tier
	SmallTierScale     float64 `yaml:"smallTierScale"`     // small tier size relative to base
	LineHeightFactor   float64 `yaml:"lineHeightFactor"`
}

// EndpointConfig groups the remote URLs the resolver and downloader hit.
type EndpointConfig struct {
	APIBaseURL       string `yaml:"apiBaseUrl"`
	MainPageURL      string `yaml:"mainPageUrl"`
	ArchivePageURL   string `yaml:"archivePageUrl"`
	CommonsPageURL   string `yaml:"commonsPageUrl"`
	DefaultImageURL  string `yaml:"defaultImageUrl"`  // last-resort URL when every strategy fails
	FallbackAssetURL string `yaml:"fallbackAssetUrl"` // fetched when the resolved URL cannot be downloaded
}

// GeminiConfig wires the optional caption condensation service.
type GeminiConfig struct {
	APIKey   string `yaml:"apiKey"`
	Model    string `yaml:"model"`
	MaxChars int    `yaml:"maxChars"`
}

// Enabled reports whether condensation can run at all.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		cfg = loadFile(cfg, path)
	}

	cfg.applyEnvOverrides()
	return cfg
}

// LoadFrom behaves like Load but reads the given file instead of the
// WIKIWALL_CONFIG path. Used by the --config flag.
func LoadFrom(path string) Config {
	cfg := loadFile(defaultConfig(), path)
	cfg.applyEnvOverrides()
	return cfg
}

func loadFile(base Config, path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		return base
	}
	// Unmarshal over the defaults so absent keys keep their values.
	if err := yaml.Unmarshal(raw, &base); err != nil {
		log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		return defaultConfig()
	}
	return base
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(geminiKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(geminiModelEnv); v != "" {
		c.Gemini.Model = v
	}
	if c.OutputDir == "" {
		c.OutputDir = os.TempDir()
	}
}

func defaultConfig() Config {
	return Config{
		Retry: RetryConfig{MaxAttempts: 3, DelaySecs: 2},
		Layout: LayoutConfig{
			BorderFrac:         0.05,
			CaptionFrac:        0.20,
			SmallTierThreshold: 300,
			SmallTierScale:     0.85,
			LineHeightFactor:   1.2,
		},
		Endpoints: EndpointConfig{
			APIBaseURL:       "https://en.wikipedia.org/w/api.php",
			MainPageURL:      "https://en.wikipedia.org/wiki/Wikipedia:Picture_of_the_day",
			ArchivePageURL:   "https://en.wikipedia.org/wiki/Wikipedia:Picture_of_the_day/Archive",
			CommonsPageURL:   "https://commons.wikimedia.org/wiki/Commons:Picture_of_the_day",
			DefaultImageURL:  "https://upload.wikimedia.org/wikipedia/commons/thumb/8/80/Wikipedia-logo-v2.svg/1200px-Wikipedia-logo-v2.svg.png",
			FallbackAssetURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/80/Wikipedia-logo-v2.svg/1200px-Wikipedia-logo-v2.svg.png",
		},
		Gemini: GeminiConfig{Model: "gemini-1.5-flash", MaxChars: 100},
	}
}
