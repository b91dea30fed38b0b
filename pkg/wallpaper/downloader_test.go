package wallpaper

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zero-delay policy so retry loops do not slow the suite down.
var testPolicy = RetryPolicy{MaxAttempts: 3, Delay: 0}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func imageServer(t *testing.T, failures int, counter *int32) *httptest.Server {
	body := pngBytes(t, 10, 10)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(counter, 1)
		if int(n) <= failures {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
}

func TestFetchFirstAttemptSuccess(t *testing.T) {
	var calls int32
	ts := imageServer(t, 0, &calls)
	defer ts.Close()

	d := NewDownloader(ts.Client(), testPolicy, "")
	img := d.Fetch(context.Background(), ts.URL)

	require.NotNil(t, img)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.EqualValues(t, 1, calls)
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var calls int32
	ts := imageServer(t, 2, &calls) // fail twice, succeed on the third
	defer ts.Close()

	d := NewDownloader(ts.Client(), testPolicy, "")
	img := d.Fetch(context.Background(), ts.URL)

	require.NotNil(t, img)
	assert.EqualValues(t, 3, calls)
}

func TestFetchFallsBackAfterExhaustion(t *testing.T) {
	var primaryCalls, fallbackCalls int32
	primary := imageServer(t, 100, &primaryCalls) // never succeeds
	defer primary.Close()
	fallback := imageServer(t, 0, &fallbackCalls)
	defer fallback.Close()

	d := NewDownloader(primary.Client(), testPolicy, fallback.URL)
	img := d.Fetch(context.Background(), primary.URL)

	require.NotNil(t, img)
	assert.EqualValues(t, testPolicy.MaxAttempts, primaryCalls)
	assert.EqualValues(t, 1, fallbackCalls)
}

func TestFetchDecodeFailureCountsAsAttempt(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("this is not an image"))
	}))
	defer ts.Close()

	d := NewDownloader(ts.Client(), testPolicy, "")
	img := d.Fetch(context.Background(), ts.URL)

	// Garbage bytes drive the retry loop just like a bad status, then the
	// placeholder takes over.
	require.NotNil(t, img)
	assert.EqualValues(t, testPolicy.MaxAttempts, calls)
	assert.Equal(t, placeholderWidth, img.Bounds().Dx())
	assert.Equal(t, placeholderHeight, img.Bounds().Dy())
}

func TestFetchTotalFailureSynthesizesPlaceholder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer ts.Close()

	// Both the resolved URL and the fallback asset fail.
	d := NewDownloader(ts.Client(), testPolicy, ts.URL+"/fallback")
	img := d.Fetch(context.Background(), ts.URL+"/primary")

	require.NotNil(t, img)
	assert.Equal(t, placeholderWidth, img.Bounds().Dx())
	assert.Equal(t, placeholderHeight, img.Bounds().Dy())
}

func TestFetchEmptyURLGoesStraightToFallback(t *testing.T) {
	var fallbackCalls int32
	fallback := imageServer(t, 0, &fallbackCalls)
	defer fallback.Close()

	d := NewDownloader(fallback.Client(), testPolicy, fallback.URL)
	img := d.Fetch(context.Background(), "")

	require.NotNil(t, img)
	assert.EqualValues(t, 1, fallbackCalls)
}

func TestFetchNeverReturnsNil(t *testing.T) {
	// Forced failures well beyond MaxAttempts, no fallback configured.
	d := NewDownloader(http.DefaultClient, RetryPolicy{MaxAttempts: 5, Delay: 0}, "")
	img := d.Fetch(context.Background(), "http://127.0.0.1:1/nope")
	require.NotNil(t, img)
}

func TestUserAgentTransport(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Write(pngBytes(t, 4, 4))
	}))
	defer ts.Close()

	client := &http.Client{Transport: &UserAgentTransport{
		RoundTripper: http.DefaultTransport,
		UserAgent:    "wikiwall-test/1.0",
	}}

	d := NewDownloader(client, testPolicy, "")
	d.Fetch(context.Background(), ts.URL)
	assert.Equal(t, "wikiwall-test/1.0", got)
}

func TestPlaceholderBackground(t *testing.T) {
	// Placeholder bitmaps carry a non-black background so they read as
	// intentional rather than as a failed render.
	d := NewDownloader(http.DefaultClient, RetryPolicy{MaxAttempts: 1, Delay: 0}, "")
	img := d.Fetch(context.Background(), "http://127.0.0.1:1/nope")

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	background := nrgba.NRGBAAt(0, 0)
	assert.NotEqual(t, color.NRGBA{}, background)
}
