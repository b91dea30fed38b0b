package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Compose renders the final wallpaper: a black canvas with the source image
// scaled and framed in the upper region and the caption wrapped and centered
// in the lower region. The source bitmap is never mutated; only a resized
// copy is drawn. Identical inputs produce pixel-identical output.
func Compose(src image.Image, caption string, spec CanvasSpec, t Tuning) *image.NRGBA {
	plan := PlanLayout(src.Bounds().Dx(), src.Bounds().Dy(), caption, spec, t)

	canvas := imaging.New(spec.Width, spec.Height, canvasColor)

	scaled := imaging.Resize(src, plan.ScaledWidth, plan.ScaledHeight, imaging.Lanczos)
	canvas = imaging.Paste(canvas, scaled, plan.ImageRect.Min)

	drawFrame(canvas, plan.FrameInner, frameInnerColor, 2)
	drawFrame(canvas, plan.FrameOuter, frameOuterColor, 1)

	drawLines(canvas, plan.FontSize, plan.Lines)
	return canvas
}

// Placeholder synthesizes a wallpaper-shaped bitmap carrying only an
// explanatory message, used when no real image could be obtained.
func Placeholder(spec CanvasSpec, message string, t Tuning) *image.NRGBA {
	canvas := imaging.New(spec.Width, spec.Height, placeholderColor)

	// Reuse the caption text machinery, centered over the whole canvas.
	region := image.Rect(0, 0, spec.Width, spec.Height)
	_, size, lines := planText(message, spec, region, t)
	drawLines(canvas, size, lines)
	return canvas
}

// drawLines draws wrapped caption lines at their planned baseline positions.
func drawLines(dst *image.NRGBA, size float64, lines []Line) {
	if len(lines) == 0 {
		return
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: newFace(size),
	}
	for _, line := range lines {
		drawer.Dot = fixed.P(line.X, line.Y)
		drawer.DrawString(line.Text)
	}
}

// drawFrame strokes a rectangle outline of the given thickness, growing inward.
func drawFrame(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, thickness int) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for i := 0; i < thickness; i++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, r.Min.Y+i, c)
			dst.SetNRGBA(x, r.Max.Y-1-i, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			dst.SetNRGBA(r.Min.X+i, y, c)
			dst.SetNRGBA(r.Max.X-1-i, y, c)
		}
	}
}
