package wallpaper

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/wikiwall/config"
	"github.com/dixieflatline76/wikiwall/pkg/potd"
	"github.com/dixieflatline76/wikiwall/pkg/render"
	"github.com/dixieflatline76/wikiwall/util/log"
)

// Resolver produces the day's image reference and caption. It never errors;
// total failure surfaces as a canned fallback result.
type Resolver interface {
	Resolve(ctx context.Context, day time.Time) potd.Result
}

// Fetcher turns an image URL into a bitmap, never failing.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) image.Image
}

// Condenser optionally shortens a caption. Any failure is non-fatal.
type Condenser interface {
	Condense(ctx context.Context, text string) (string, error)
}

// Pipeline orchestrates one run: resolve, condense, download, compose, save,
// set. Every stage failure short of the final save degrades instead of
// aborting.
type Pipeline struct {
	resolver   Resolver
	downloader Fetcher
	condenser  Condenser // nil disables condensation
	os         OS
	cfg        config.Config

	// SkipSet leaves the desktop untouched and only writes the file.
	SkipSet bool
}

// NewPipeline assembles a pipeline against the current operating system.
func NewPipeline(resolver Resolver, downloader Fetcher, condenser Condenser, cfg config.Config) *Pipeline {
	return &Pipeline{
		resolver:   resolver,
		downloader: downloader,
		condenser:  condenser,
		os:         getOS(),
		cfg:        cfg,
	}
}

// Run executes a full run for the given day and returns the path of the
// wallpaper file it wrote. The only fatal condition is failing to write that
// file.
func (p *Pipeline) Run(ctx context.Context, day time.Time) (string, error) {
	spec := p.canvasSpec()
	log.Printf("pipeline: canvas %dx%d", spec.Width, spec.Height)

	result := p.resolver.Resolve(ctx, day)
	log.Printf("pipeline: resolved via %s: %s", result.Image.Origin, result.Image.URL)

	caption := p.condense(ctx, result.Caption)

	img := p.downloader.Fetch(ctx, result.Image.URL)

	tuning := render.TuningFromConfig(p.cfg.Layout)
	composed := render.Compose(img, caption.Text(), spec, tuning)

	outPath := filepath.Join(p.cfg.OutputDir, fmt.Sprintf(config.OutputFilePattern, day.Format("2006-01-02")))
	if err := imaging.Save(composed, outPath, imaging.JPEGQuality(config.JPEGQuality)); err != nil {
		return "", fmt.Errorf("saving wallpaper to %s: %w", outPath, err)
	}
	log.Printf("pipeline: wallpaper saved to %s", outPath)

	if p.SkipSet {
		return outPath, nil
	}

	if err := p.os.setWallpaper(outPath); err != nil {
		// Not retried; surface the path so the user can set it manually.
		log.Printf("pipeline: failed to set wallpaper (%v); set it manually from %s", err, outPath)
	}
	return outPath, nil
}

// canvasSpec queries the primary screen size, defaulting on any failure.
func (p *Pipeline) canvasSpec() render.CanvasSpec {
	w, h, err := p.os.getDesktopDimension()
	if err != nil || w <= 0 || h <= 0 {
		log.Printf("pipeline: screen size unavailable (%v), defaulting to %dx%d",
			err, config.DefaultCanvasWidth, config.DefaultCanvasHeight)
		return render.CanvasSpec{Width: config.DefaultCanvasWidth, Height: config.DefaultCanvasHeight}
	}
	return render.CanvasSpec{Width: w, Height: h}
}

// condense passes the caption through the condensation collaborator,
// failing open to the unmodified caption.
func (p *Pipeline) condense(ctx context.Context, caption potd.Caption) potd.Caption {
	if p.condenser == nil {
		return caption
	}
	condensed, err := p.condenser.Condense(ctx, caption.Normalized)
	if err != nil {
		log.Printf("pipeline: caption condensation failed, keeping original: %v", err)
		return caption
	}
	if condensed != "" {
		caption.Condensed = condensed
	}
	return caption
}
