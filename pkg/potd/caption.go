package potd

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var thumbSizePrefixRegex = regexp.MustCompile(`/\d+px-[^/]*$`)

// normalizeWhitespace collapses all whitespace runs to a single space and trims.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// absoluteImageURL fixes protocol-relative image sources ("//upload...").
func absoluteImageURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

// rewriteThumbURL converts a Wikimedia thumbnail URL into the full-resolution
// original: the "/thumb/" path segment is dropped along with the trailing
// "NNNpx-<name>" component.
//
//	.../commons/thumb/a/ab/Foo.jpg/640px-Foo.jpg -> .../commons/a/ab/Foo.jpg
func rewriteThumbURL(src string) string {
	if !strings.Contains(src, "/thumb/") {
		return src
	}
	src = strings.Replace(src, "/thumb/", "/", 1)
	return thumbSizePrefixRegex.ReplaceAllString(src, "")
}

// imageURLFromSelection locates an image element within the region and
// returns its full-resolution URL.
func imageURLFromSelection(region *goquery.Selection) (string, error) {
	img := region.Find(scrapeImageSelector).First()
	src, ok := img.Attr("src")
	if !ok || src == "" {
		return "", ErrEmptyResult
	}
	return rewriteThumbURL(absoluteImageURL(src)), nil
}

// captionFromSelection extracts caption text from a scraped region. Order:
// an explicit description element, then all non-link visible text, then the
// image's alt attribute, then the fixed default.
func captionFromSelection(region *goquery.Selection) Caption {
	if desc := region.Find(descriptionSelector).First(); desc.Length() > 0 {
		if text := normalizeWhitespace(desc.Text()); text != "" {
			return NewCaption(desc.Text())
		}
	}

	// Non-link text: links inside POTD boxes are usually "(archive)" style
	// chrome, not caption prose.
	clone := region.Clone()
	clone.Find(scrapeAnchorSelector).Remove()
	if text := normalizeWhitespace(clone.Text()); text != "" {
		return NewCaption(text)
	}

	if alt, ok := region.Find(scrapeImageSelector).First().Attr("alt"); ok && normalizeWhitespace(alt) != "" {
		return NewCaption(alt)
	}

	return NewCaption(DefaultCaption)
}

// longestBlockText returns the text of the longest paragraph-like element.
// More characters means more likely to be the real caption rather than a label.
func longestBlockText(doc *goquery.Document) string {
	var best string
	doc.Find(candidateParagraphs).Each(func(_ int, sel *goquery.Selection) {
		text := normalizeWhitespace(sel.Text())
		if len(text) > len(best) {
			best = text
		}
	})
	return best
}
