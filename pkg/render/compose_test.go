package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage builds a small deterministic gradient bitmap.
func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestComposeCanvasSize(t *testing.T) {
	spec := CanvasSpec{Width: 1280, Height: 720}
	out := Compose(testImage(400, 300), "a caption", spec, DefaultTuning())
	require.NotNil(t, out)
	assert.Equal(t, spec.Width, out.Bounds().Dx())
	assert.Equal(t, spec.Height, out.Bounds().Dy())
}

func TestComposeIsIdempotent(t *testing.T) {
	spec := CanvasSpec{Width: 800, Height: 600}
	src := testImage(333, 217)
	caption := "composing the same inputs twice must yield identical pixels"

	a := Compose(src, caption, spec, DefaultTuning())
	b := Compose(src, caption, spec, DefaultTuning())
	assert.Equal(t, a.Pix, b.Pix)
}

func TestComposeEmptyCaption(t *testing.T) {
	spec := CanvasSpec{Width: 640, Height: 480}
	out := Compose(testImage(100, 100), "", spec, DefaultTuning())
	require.NotNil(t, out)
	assert.Equal(t, spec.Width, out.Bounds().Dx())
}

func TestComposeDoesNotMutateSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for i := range src.Pix {
		src.Pix[i] = 77
	}
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	Compose(src, "caption", CanvasSpec{640, 480}, DefaultTuning())
	assert.Equal(t, before, src.Pix)
}

func TestComposeDrawsFrame(t *testing.T) {
	spec := CanvasSpec{Width: 800, Height: 600}
	out := Compose(testImage(200, 200), "", spec, DefaultTuning())

	plan := PlanLayout(200, 200, "", spec, DefaultTuning())
	corner := out.NRGBAAt(plan.FrameInner.Min.X, plan.FrameInner.Min.Y)
	assert.Equal(t, frameInnerColor, corner)
	outerCorner := out.NRGBAAt(plan.FrameOuter.Min.X, plan.FrameOuter.Min.Y)
	assert.Equal(t, frameOuterColor, outerCorner)
}

func TestPlaceholder(t *testing.T) {
	spec := CanvasSpec{Width: 1024, Height: 768}
	out := Placeholder(spec, "nothing could be downloaded", DefaultTuning())
	require.NotNil(t, out)
	assert.Equal(t, spec.Width, out.Bounds().Dx())
	assert.Equal(t, spec.Height, out.Bounds().Dy())

	// The message must actually land on the canvas: some pixels differ
	// from the background.
	background := out.NRGBAAt(0, 0)
	found := false
	for y := 0; y < spec.Height && !found; y++ {
		for x := 0; x < spec.Width; x++ {
			if out.NRGBAAt(x, y) != background {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "placeholder message not rendered")
}

func TestPlaceholderEmptyMessage(t *testing.T) {
	out := Placeholder(CanvasSpec{640, 480}, "", DefaultTuning())
	require.NotNil(t, out)
}
