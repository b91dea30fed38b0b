package potd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dixieflatline76/wikiwall/util/log"
)

// apiStrategy resolves the day's picture through the MediaWiki action API.
// Three calls: the POTD template's media filename, the filename's resolved
// URL, and the template's rendered markup for the caption.
type apiStrategy struct {
	client  *http.Client
	baseURL string
}

func (s *apiStrategy) Name() string { return OriginAPI.String() }

type imagesResponse struct {
	Query struct {
		Pages map[string]struct {
			Images []struct {
				Title string `json:"title"`
			} `json:"images"`
		} `json:"pages"`
	} `json:"query"`
}

type imageInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

type parseResponse struct {
	Parse struct {
		Text struct {
			HTML string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// Attempt resolves via the structured API, keyed by the ISO run date.
func (s *apiStrategy) Attempt(ctx context.Context, day time.Time) (Result, error) {
	title := day.Format(potdTemplateFormat)

	fileTitle, err := s.fetchMediaTitle(ctx, title)
	if err != nil {
		return Result{}, err
	}

	imageURL, err := s.fetchImageURL(ctx, fileTitle)
	if err != nil {
		return Result{}, err
	}

	caption, err := s.fetchCaption(ctx, title)
	if err != nil {
		// The image alone is still a success; fall back to the default caption.
		log.Debugf("potd: api caption fetch failed: %v", err)
		caption = NewCaption(DefaultCaption)
	}

	return Result{
		Image:   ImageReference{URL: rewriteThumbURL(imageURL), Origin: OriginAPI},
		Caption: caption,
	}, nil
}

// fetchMediaTitle returns the "File:..." title attached to the POTD template.
func (s *apiStrategy) fetchMediaTitle(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "images")
	params.Set("titles", title)
	params.Set("format", "json")

	var result imagesResponse
	if err := s.getJSON(ctx, params, &result); err != nil {
		return "", err
	}

	for _, page := range result.Query.Pages {
		if len(page.Images) > 0 && page.Images[0].Title != "" {
			return page.Images[0].Title, nil
		}
	}
	return "", fmt.Errorf("%w: %s has no associated media", ErrEmptyResult, title)
}

// fetchImageURL resolves a file title to its upload URL.
func (s *apiStrategy) fetchImageURL(ctx context.Context, fileTitle string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("titles", fileTitle)
	params.Set("format", "json")

	var result imageInfoResponse
	if err := s.getJSON(ctx, params, &result); err != nil {
		return "", err
	}

	for _, page := range result.Query.Pages {
		if len(page.ImageInfo) > 0 && page.ImageInfo[0].URL != "" {
			return page.ImageInfo[0].URL, nil
		}
	}
	return "", fmt.Errorf("%w: no imageinfo for %s", ErrParse, fileTitle)
}

// fetchCaption renders the POTD template and extracts its description text.
func (s *apiStrategy) fetchCaption(ctx context.Context, title string) (Caption, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("prop", "text")
	params.Set("format", "json")

	var result parseResponse
	if err := s.getJSON(ctx, params, &result); err != nil {
		return Caption{}, err
	}
	if result.Parse.Text.HTML == "" {
		return Caption{}, fmt.Errorf("%w: parse.text missing for %s", ErrParse, title)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.Parse.Text.HTML))
	if err != nil {
		return Caption{}, fmt.Errorf("%w: parsing rendered template: %v", ErrParse, err)
	}

	// Explicit description element first.
	if desc := doc.Find(descriptionSelector).First(); desc.Length() > 0 {
		if text := normalizeWhitespace(desc.Text()); text != "" {
			return NewCaption(text), nil
		}
	}
	// Then the longest paragraph-like block.
	if text := longestBlockText(doc); text != "" {
		return NewCaption(text), nil
	}
	// All visible text as last resort.
	return NewCaption(doc.Text()), nil
}

func (s *apiStrategy) getJSON(ctx context.Context, params url.Values, out interface{}) error {
	fullURL := s.baseURL + "?" + params.Encode()
	log.Debugf("potd: api GET %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrNetwork, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: API returned status %d", ErrNetwork, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding API response: %v", ErrParse, err)
	}
	return nil
}
