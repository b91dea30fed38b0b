package potd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// mainPageStrategy scrapes the canonical "Picture of the day" landing page.
type mainPageStrategy struct {
	client  *http.Client
	pageURL string
}

func (s *mainPageStrategy) Name() string { return OriginMainPage.String() }

// Attempt locates the featured picture region by its stable identifier, or
// failing that by heading text, and extracts image and caption from it.
func (s *mainPageStrategy) Attempt(ctx context.Context, day time.Time) (Result, error) {
	doc, err := fetchDocument(ctx, s.client, s.pageURL)
	if err != nil {
		return Result{}, err
	}

	region := doc.Find(mainPageRegionID).First()
	if region.Length() == 0 {
		region = regionAfterHeading(doc, func(text string) bool {
			return strings.Contains(strings.ToLower(text), potdHeadingMarker)
		})
	}
	if region == nil || region.Length() == 0 {
		return Result{}, fmt.Errorf("%w: featured picture region not found", ErrEmptyResult)
	}

	imageURL, err := imageURLFromSelection(region)
	if err != nil {
		return Result{}, fmt.Errorf("%w: no image in featured picture region", ErrEmptyResult)
	}

	return Result{
		Image:   ImageReference{URL: imageURL, Origin: OriginMainPage},
		Caption: captionFromSelection(region),
	}, nil
}

// regionAfterHeading finds the first h1-h4 whose text satisfies match and
// returns the block following it.
func regionAfterHeading(doc *goquery.Document, match func(string) bool) *goquery.Selection {
	var region *goquery.Selection
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if !match(heading.Text()) {
			return true
		}
		next := heading.Next()
		if next.Length() == 0 {
			// Headings are often wrapped (e.g. in a div); try the wrapper's sibling.
			next = heading.Parent().Next()
		}
		if next.Length() > 0 {
			region = next
			return false
		}
		return true
	})
	return region
}
