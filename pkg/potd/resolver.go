package potd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dixieflatline76/wikiwall/config"
	"github.com/dixieflatline76/wikiwall/util/log"
)

// Origin identifies which strategy produced an image reference.
type Origin int

// Origin values, in cascade order.
const (
	OriginAPI Origin = iota
	OriginMainPage
	OriginArchive
	OriginCommons
	OriginFallback
)

// String returns the human-readable strategy name.
func (o Origin) String() string {
	switch o {
	case OriginAPI:
		return "api"
	case OriginMainPage:
		return "main-page"
	case OriginArchive:
		return "archive"
	case OriginCommons:
		return "commons"
	default:
		return "fallback"
	}
}

// ImageReference points at the day's picture. Immutable once created.
type ImageReference struct {
	URL    string
	Origin Origin
}

// Caption carries the picture's description text. Normalized has whitespace
// runs collapsed; Condensed is filled in by the optional condensation step
// and is empty otherwise.
type Caption struct {
	Raw        string
	Normalized string
	Condensed  string
}

// NewCaption normalizes raw text, substituting the default when it is empty.
func NewCaption(raw string) Caption {
	normalized := normalizeWhitespace(raw)
	if normalized == "" {
		normalized = DefaultCaption
	}
	return Caption{Raw: raw, Normalized: normalized}
}

// Text returns the condensed caption when available, the normalized one otherwise.
func (c Caption) Text() string {
	if c.Condensed != "" {
		return c.Condensed
	}
	return c.Normalized
}

// Result pairs an image reference with its caption.
type Result struct {
	Image   ImageReference
	Caption Caption
}

// Strategy is one self-contained attempt to resolve the day's picture. An
// error moves the cascade on to the next strategy; implementations never panic.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, day time.Time) (Result, error)
}

// Resolver walks an ordered list of strategies and returns the first success.
type Resolver struct {
	strategies      []Strategy
	defaultImageURL string
}

// NewResolver wires the four standard strategies in cascade order: the
// structured API first (least fragile), then the main page scrape, the
// archive scrape, and finally the Commons scrape.
func NewResolver(client *http.Client, eps config.EndpointConfig) *Resolver {
	return &Resolver{
		strategies: []Strategy{
			&apiStrategy{client: client, baseURL: eps.APIBaseURL},
			&mainPageStrategy{client: client, pageURL: eps.MainPageURL},
			&archiveStrategy{client: client, pageURL: eps.ArchivePageURL},
			&commonsStrategy{client: client, pageURL: eps.CommonsPageURL},
		},
		defaultImageURL: eps.DefaultImageURL,
	}
}

// NewResolverWithStrategies builds a resolver over an explicit strategy list.
func NewResolverWithStrategies(defaultImageURL string, strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies, defaultImageURL: defaultImageURL}
}

// Resolve tries each strategy in order and returns the first success. On
// total failure it returns the canned fallback result instead of an error;
// callers can check Image.Origin when they care.
func (r *Resolver) Resolve(ctx context.Context, day time.Time) Result {
	for _, s := range r.strategies {
		res, err := s.Attempt(ctx, day)
		if err != nil {
			log.Printf("potd: strategy %s failed: %v", s.Name(), err)
			continue
		}
		log.Debugf("potd: strategy %s resolved %s", s.Name(), res.Image.URL)
		return res
	}

	log.Printf("potd: all strategies failed, using fallback image")
	return Result{
		Image:   ImageReference{URL: r.defaultImageURL, Origin: OriginFallback},
		Caption: NewCaption(FallbackCaption),
	}
}

// fetchDocument retrieves a page and parses it for scraping.
func fetchDocument(ctx context.Context, client *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrNetwork, pageURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrNetwork, pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrNetwork, pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrParse, pageURL, err)
	}
	return doc, nil
}
