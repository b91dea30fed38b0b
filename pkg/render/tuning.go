package render

import (
	"image/color"

	"github.com/dixieflatline76/wikiwall/config"
)

// CanvasSpec is the target wallpaper resolution, fixed for a run.
type CanvasSpec struct {
	Width  int
	Height int
}

// Tuning gathers every layout constant in one value so callers (and tests)
// can adjust them without touching the engine.
type Tuning struct {
	BorderFrac         float64 // border as a fraction of canvas width
	CaptionFrac        float64 // share of the content rect reserved for caption text
	SmallTierThreshold int     // normalized caption length that forces the small tier
	SmallTierScale     float64 // small tier font size relative to base
	LineHeightFactor   float64
	BaseFontSize       float64 // 0 derives the size from the canvas height
	FramePad           int     // gap between image edge and inner frame
	FrameGap           int     // gap between inner and outer frame
	TextPadX           int     // horizontal padding inside the caption region
}

// DefaultTuning returns the production constants.
func DefaultTuning() Tuning {
	return Tuning{
		BorderFrac:         0.05,
		CaptionFrac:        0.20,
		SmallTierThreshold: 300,
		SmallTierScale:     0.85,
		LineHeightFactor:   1.2,
		FramePad:           10,
		FrameGap:           3,
		TextPadX:           20,
	}
}

// TuningFromConfig overlays configured layout values onto the defaults.
func TuningFromConfig(lc config.LayoutConfig) Tuning {
	t := DefaultTuning()
	if lc.BorderFrac > 0 {
		t.BorderFrac = lc.BorderFrac
	}
	if lc.CaptionFrac > 0 {
		t.CaptionFrac = lc.CaptionFrac
	}
	if lc.SmallTierThreshold > 0 {
		t.SmallTierThreshold = lc.SmallTierThreshold
	}
	if lc.SmallTierScale > 0 {
		t.SmallTierScale = lc.SmallTierScale
	}
	if lc.LineHeightFactor > 0 {
		t.LineHeightFactor = lc.LineHeightFactor
	}
	return t
}

// baseFontSize derives the base tier size from the canvas when not overridden.
func (t Tuning) baseFontSize(spec CanvasSpec) float64 {
	if t.BaseFontSize > 0 {
		return t.BaseFontSize
	}
	size := float64(spec.Height) / 40
	if size < 14 {
		size = 14
	}
	return size
}

// Fixed palette; no theming.
var (
	canvasColor      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	textColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	frameInnerColor  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	frameOuterColor  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	placeholderColor = color.NRGBA{R: 40, G: 40, B: 48, A: 255}
)
