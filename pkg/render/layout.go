package render

import (
	"image"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
)

// Line is one wrapped caption line with its baseline draw position.
type Line struct {
	Text string
	X, Y int
}

// LayoutPlan is the full deterministic composition derived from an image
// size, a caption and a canvas spec. It exists only during compositing.
type LayoutPlan struct {
	Border        int
	Content       image.Rectangle
	ImageRegion   image.Rectangle
	CaptionRegion image.Rectangle

	ScaledWidth  int
	ScaledHeight int
	ImageRect    image.Rectangle // placement of the scaled image
	FrameInner   image.Rectangle
	FrameOuter   image.Rectangle

	Tier     FontTier
	FontSize float64
	Lines    []Line
}

// PlanLayout computes the frame geometry, image scaling and wrapped caption
// positions for the given inputs. It is pure: the same inputs always produce
// the same plan.
func PlanLayout(srcWidth, srcHeight int, caption string, spec CanvasSpec, t Tuning) LayoutPlan {
	plan := LayoutPlan{}

	plan.Border = int(float64(spec.Width) * t.BorderFrac)
	plan.Content = image.Rect(plan.Border, plan.Border, spec.Width-plan.Border, spec.Height-plan.Border)

	captionHeight := int(float64(plan.Content.Dy()) * t.CaptionFrac)
	plan.ImageRegion = image.Rect(plan.Content.Min.X, plan.Content.Min.Y, plan.Content.Max.X, plan.Content.Max.Y-captionHeight)
	plan.CaptionRegion = image.Rect(plan.Content.Min.X, plan.Content.Max.Y-captionHeight, plan.Content.Max.X, plan.Content.Max.Y)

	plan.ScaledWidth, plan.ScaledHeight = fitToRegion(srcWidth, srcHeight, plan.ImageRegion.Dx(), plan.ImageRegion.Dy())

	// Center the scaled image in both axes.
	x0 := plan.ImageRegion.Min.X + (plan.ImageRegion.Dx()-plan.ScaledWidth)/2
	y0 := plan.ImageRegion.Min.Y + (plan.ImageRegion.Dy()-plan.ScaledHeight)/2
	plan.ImageRect = image.Rect(x0, y0, x0+plan.ScaledWidth, y0+plan.ScaledHeight)
	plan.FrameInner = plan.ImageRect.Inset(-t.FramePad)
	plan.FrameOuter = plan.FrameInner.Inset(-t.FrameGap)

	plan.Tier, plan.FontSize, plan.Lines = planText(caption, spec, plan.CaptionRegion, t)
	return plan
}

// fitToRegion scales (w, h) preserving aspect ratio to fill the region
// height; if the resulting width overflows, it re-scales by width instead.
// Whichever constraint binds first wins, so the result never exceeds either
// dimension.
func fitToRegion(w, h, regionW, regionH int) (int, int) {
	if w <= 0 || h <= 0 {
		return regionW, regionH
	}

	scaledH := regionH
	scaledW := int(float64(w) * float64(regionH) / float64(h))
	if scaledW > regionW {
		scaledW = regionW
		scaledH = int(float64(h) * float64(regionW) / float64(w))
	}
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}
	return scaledW, scaledH
}

// planText selects the font tier, wraps the caption and positions each line.
func planText(caption string, spec CanvasSpec, region image.Rectangle, t Tuning) (FontTier, float64, []Line) {
	baseSize := t.baseFontSize(spec)

	tier := TierBase
	size := baseSize
	if utf8.RuneCountInString(caption) > t.SmallTierThreshold {
		tier = TierSmall
		size = baseSize * t.SmallTierScale
	}

	usableWidth := region.Dx() - 2*t.TextPadX
	face := newFace(size)
	wrapped := wrapText(caption, face, usableWidth)

	// One downward re-wrap if the block is too tall for the region.
	lineHeight := size * t.LineHeightFactor
	if tier == TierBase && float64(len(wrapped))*lineHeight > float64(region.Dy()) {
		tier = TierSmall
		size = baseSize * t.SmallTierScale
		lineHeight = size * t.LineHeightFactor
		face = newFace(size)
		wrapped = wrapText(caption, face, usableWidth)
	}

	if len(wrapped) == 0 {
		return tier, size, nil
	}

	metrics := face.Metrics()
	blockHeight := int(float64(len(wrapped)) * lineHeight)
	top := region.Min.Y + (region.Dy()-blockHeight)/2

	lines := make([]Line, 0, len(wrapped))
	for i, text := range wrapped {
		width := measureWidth(face, text)
		x := region.Min.X + t.TextPadX + (usableWidth-width)/2
		y := top + int(float64(i)*lineHeight) + metrics.Ascent.Ceil()
		lines = append(lines, Line{Text: text, X: x, Y: y})
	}
	return tier, size, lines
}

// wrapText greedily accumulates words into lines that fit maxWidth. A word
// that cannot fit even alone gets its own overflowing line; there is no
// hyphenation.
func wrapText(s string, face font.Face, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureWidth(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
