package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/wikiwall/pkg/render"
	"github.com/dixieflatline76/wikiwall/util/log"
)

// ErrDecode means the response body could not be interpreted as an image.
// For retry purposes it is treated exactly like a network failure.
var ErrDecode = errors.New("undecodable image data")

// Placeholder dimensions used when even the fallback asset fails.
const (
	placeholderWidth  = 1920
	placeholderHeight = 1080
)

// placeholderMessage is rendered onto the synthesized bitmap.
const placeholderMessage = "Wikipedia Picture of the Day could not be downloaded today. Please check your network connection."

// RetryPolicy bounds the download retry loop. Tests inject a zero delay.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Downloader turns an image URL into a decoded bitmap, resilient to
// transient network failure.
type Downloader struct {
	client      *http.Client
	policy      RetryPolicy
	fallbackURL string
}

// NewDownloader wires an HTTP client (its transport supplies the User-Agent
// header), a retry policy and the fallback asset URL.
func NewDownloader(client *http.Client, policy RetryPolicy, fallbackURL string) *Downloader {
	return &Downloader{client: client, policy: policy, fallbackURL: fallbackURL}
}

// Fetch retrieves and decodes the image at rawURL, retrying per the policy.
// On exhaustion it tries the fallback asset; on total failure it synthesizes
// a placeholder bitmap. The returned image is never nil and Fetch never
// fails: downstream composition is guaranteed a valid source.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) image.Image {
	if rawURL != "" {
		if img, err := d.fetchWithRetry(ctx, rawURL); err == nil {
			return img
		}
	} else {
		log.Printf("downloader: empty image URL, going straight to fallback asset")
	}

	if d.fallbackURL != "" && d.fallbackURL != rawURL {
		if img, err := d.fetchWithRetry(ctx, d.fallbackURL); err == nil {
			return img
		}
	}

	log.Printf("downloader: all sources failed, synthesizing placeholder")
	spec := render.CanvasSpec{Width: placeholderWidth, Height: placeholderHeight}
	return render.Placeholder(spec, placeholderMessage, render.DefaultTuning())
}

// fetchWithRetry attempts the download up to MaxAttempts times with a fixed
// inter-attempt delay. Decode failures count as failed attempts too.
func (d *Downloader) fetchWithRetry(ctx context.Context, rawURL string) (image.Image, error) {
	var lastErr error
	for attempt := 1; attempt <= d.policy.MaxAttempts; attempt++ {
		img, err := d.fetchOnce(ctx, rawURL)
		if err == nil {
			return img, nil
		}
		lastErr = err
		log.Printf("downloader: attempt %d/%d for %s failed: %v", attempt, d.policy.MaxAttempts, rawURL, err)

		if attempt < d.policy.MaxAttempts {
			select {
			case <-time.After(d.policy.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (d *Downloader) fetchOnce(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image: status %d", resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}
