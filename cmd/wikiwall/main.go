package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dixieflatline76/wikiwall/config"
	"github.com/dixieflatline76/wikiwall/pkg/condense"
	"github.com/dixieflatline76/wikiwall/pkg/potd"
	"github.com/dixieflatline76/wikiwall/pkg/wallpaper"
	"github.com/dixieflatline76/wikiwall/util/log"
)

const httpTimeout = 30 * time.Second

var (
	flagDate       string
	flagConfig     string
	flagOutputDir  string
	flagNoSet      bool
	flagNoCondense bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Set Wikipedia's Picture of the Day as your desktop wallpaper",
		Long: "wikiwall fetches Wikipedia's Picture of the Day with its caption,\n" +
			"composes a wallpaper sized to your screen and sets it as the desktop background.",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagDate, "date", "", "run date in YYYY-MM-DD form (default: today)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "directory for the wallpaper file (default: system temp dir)")
	rootCmd.Flags().BoolVar(&flagNoSet, "no-set", false, "write the wallpaper file but do not change the desktop")
	rootCmd.Flags().BoolVar(&flagNoCondense, "no-condense", false, "skip caption condensation even when an API key is present")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Pick up GEMINI_API_KEY and friends from a .env file when present.
	_ = godotenv.Load()

	var cfg config.Config
	if flagConfig != "" {
		cfg = config.LoadFrom(flagConfig)
	} else {
		cfg = config.Load()
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}

	day := time.Now()
	if flagDate != "" {
		parsed, err := time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagDate, err)
		}
		day = parsed
	}

	client := &http.Client{
		Timeout: httpTimeout,
		Transport: &wallpaper.UserAgentTransport{
			RoundTripper: http.DefaultTransport,
			UserAgent:    config.UserAgent,
		},
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resolver := potd.NewResolver(client, cfg.Endpoints)
	downloader := wallpaper.NewDownloader(client, wallpaper.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		Delay:       cfg.Retry.Delay(),
	}, cfg.Endpoints.FallbackAssetURL)

	var condenser wallpaper.Condenser
	if !flagNoCondense {
		gc, err := condense.NewGeminiCondenser(ctx, cfg.Gemini)
		if err != nil {
			log.Printf("condensation unavailable: %v", err)
		} else if gc != nil {
			defer gc.Close()
			condenser = gc
		}
	}

	pipeline := wallpaper.NewPipeline(resolver, downloader, condenser, cfg)
	pipeline.SkipSet = flagNoSet

	path, err := pipeline.Run(ctx, day)
	if err != nil {
		return err
	}

	fmt.Printf("Wallpaper saved to %s\n", path)
	return nil
}
