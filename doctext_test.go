package taxon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		maxLines int
		want     string
	}{
		{
			name:     "empty doc stays empty",
			doc:      "",
			maxLines: 3,
			want:     "",
		},
		{
			name:     "single line",
			doc:      "Returns the length of its argument.",
			maxLines: 3,
			want:     "Returns the length of its argument.",
		},
		{
			name:     "stops at first blank line",
			doc:      "First paragraph line one.\nLine two.\n\nSecond paragraph is dropped.",
			maxLines: 5,
			want:     "First paragraph line one. Line two.",
		},
		{
			name:     "caps at max lines",
			doc:      "one\ntwo\nthree\nfour",
			maxLines: 2,
			want:     "one two",
		},
		{
			name:     "normalizes indentation",
			doc:      "  Indented first line.\n\tIndented second line.",
			maxLines: 3,
			want:     "Indented first line. Indented second line.",
		},
		{
			name:     "skips leading blank lines",
			doc:      "\n\nActual content.",
			maxLines: 3,
			want:     "Actual content.",
		},
		{
			name:     "non-positive cap yields empty",
			doc:      "anything",
			maxLines: 0,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, excerpt(tt.doc, tt.maxLines))
		})
	}
}
