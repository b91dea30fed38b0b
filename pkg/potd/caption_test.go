package potd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed runs", "a   b\n\nc", "a b c"},
		{"tabs and newlines", "\tfoo\n bar\r\n", "foo bar"},
		{"already clean", "hello world", "hello world"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeWhitespace(tc.input))
		})
	}
}

func TestNewCaption(t *testing.T) {
	c := NewCaption("  a   photo of\n a bird  ")
	assert.Equal(t, "a photo of a bird", c.Normalized)
	assert.Equal(t, "a photo of a bird", c.Text())

	// Empty input substitutes the default.
	empty := NewCaption("   ")
	assert.Equal(t, DefaultCaption, empty.Normalized)

	// Condensed text wins once set.
	c.Condensed = "a bird"
	assert.Equal(t, "a bird", c.Text())
}

func TestRewriteThumbURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "standard thumbnail",
			input:    "https://upload.wikimedia.org/wikipedia/commons/thumb/a/ab/Foo.jpg/640px-Foo.jpg",
			expected: "https://upload.wikimedia.org/wikipedia/commons/a/ab/Foo.jpg",
		},
		{
			name:     "not a thumbnail",
			input:    "https://upload.wikimedia.org/wikipedia/commons/a/ab/Foo.jpg",
			expected: "https://upload.wikimedia.org/wikipedia/commons/a/ab/Foo.jpg",
		},
		{
			name:     "filename with dashes",
			input:    "https://upload.wikimedia.org/wikipedia/commons/thumb/1/12/A-b_c.png/1200px-A-b_c.png",
			expected: "https://upload.wikimedia.org/wikipedia/commons/1/12/A-b_c.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rewriteThumbURL(tc.input))
		})
	}
}

func TestAbsoluteImageURL(t *testing.T) {
	assert.Equal(t, "https://upload.wikimedia.org/x.jpg", absoluteImageURL("//upload.wikimedia.org/x.jpg"))
	assert.Equal(t, "https://example.org/x.jpg", absoluteImageURL("https://example.org/x.jpg"))
}
