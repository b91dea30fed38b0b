package potd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// commonsStrategy scrapes the Wikimedia Commons picture-of-the-day page, the
// last real source before the resolver's canned fallback.
type commonsStrategy struct {
	client  *http.Client
	pageURL string
}

func (s *commonsStrategy) Name() string { return OriginCommons.String() }

// Attempt looks for the known POTD container, or failing that any container
// holding an image, and applies the shared extraction rules.
func (s *commonsStrategy) Attempt(ctx context.Context, day time.Time) (Result, error) {
	doc, err := fetchDocument(ctx, s.client, s.pageURL)
	if err != nil {
		return Result{}, err
	}

	region := doc.Find(commonsRegionWanted).First()
	if region.Length() == 0 {
		// No known identifier; settle for any container with an image.
		doc.Find("div, table").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if sel.Find(scrapeImageSelector).Length() > 0 {
				region = sel
				return false
			}
			return true
		})
	}
	if region.Length() == 0 {
		return Result{}, fmt.Errorf("%w: no image container on commons page", ErrEmptyResult)
	}

	imageURL, err := imageURLFromSelection(region)
	if err != nil {
		return Result{}, fmt.Errorf("%w: no image in commons container", ErrEmptyResult)
	}

	return Result{
		Image:   ImageReference{URL: imageURL, Origin: OriginCommons},
		Caption: captionFromSelection(region),
	}, nil
}
