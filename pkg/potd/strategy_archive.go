package potd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// archiveStrategy scrapes the chronological POTD archive page, looking for
// the entry headed by today's date.
type archiveStrategy struct {
	client  *http.Client
	pageURL string
}

func (s *archiveStrategy) Name() string { return OriginArchive.String() }

// Attempt finds the heading matching today's date (or the word "today") and
// extracts image and caption from the block that follows it.
func (s *archiveStrategy) Attempt(ctx context.Context, day time.Time) (Result, error) {
	doc, err := fetchDocument(ctx, s.client, s.pageURL)
	if err != nil {
		return Result{}, err
	}

	// Archive headings vary between "January 2, 2006" and "2 January 2006".
	wanted := []string{
		strings.ToLower(day.Format("January 2, 2006")),
		strings.ToLower(day.Format("2 January 2006")),
		archiveTodayMarker,
	}

	region := regionAfterHeading(doc, func(text string) bool {
		lower := strings.ToLower(text)
		for _, w := range wanted {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	})
	if region == nil || region.Length() == 0 {
		return Result{}, fmt.Errorf("%w: no archive entry for %s", ErrEmptyResult, day.Format("2006-01-02"))
	}

	imageURL, err := imageURLFromSelection(region)
	if err != nil {
		return Result{}, fmt.Errorf("%w: no image in archive entry", ErrEmptyResult)
	}

	return Result{
		Image:   ImageReference{URL: imageURL, Origin: OriginArchive},
		Caption: captionFromSelection(region),
	}, nil
}
