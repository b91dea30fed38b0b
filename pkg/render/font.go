package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/dixieflatline76/wikiwall/util/log"
)

// FontTier is one of the two discrete caption font sizes.
type FontTier int

// Font tiers.
const (
	TierBase FontTier = iota
	TierSmall
)

// String returns the tier name.
func (t FontTier) String() string {
	if t == TierSmall {
		return "small"
	}
	return "base"
}

// captionFont is the embedded typeface used for all caption text. Parsing it
// once keeps composition deterministic across runs. A nil value means the
// parse failed and the bitmap fallback face is in effect.
var captionFont *opentype.Font

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("render: embedded font unavailable, using bitmap fallback: %v", err)
		return
	}
	captionFont = f
}

// newFace returns a face for the given pixel size, falling back to the fixed
// bitmap face when the embedded font could not be loaded.
func newFace(size float64) font.Face {
	if captionFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(captionFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("render: face creation failed, using bitmap fallback: %v", err)
		return basicfont.Face7x13
	}
	return face
}

// measureWidth returns the rendered width of s in whole pixels.
func measureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
