package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "hello", want: 5},
		{name: "japanese", in: "こんにちは", want: 5},
		{name: "emoji", in: "Hello👋", want: 6},
		{name: "empty", in: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountRunes(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		max       int
		want      string
		truncated bool
	}{
		{name: "shorter than limit", in: "Hello", max: 10, want: "Hello", truncated: false},
		{name: "exactly at limit", in: "Hello", max: 5, want: "Hello", truncated: false},
		{name: "cut ascii", in: "Hello world", max: 5, want: "Hello", truncated: true},
		{name: "cut multibyte on rune boundary", in: "こんにちは世界", max: 5, want: "こんにちは", truncated: true},
		{name: "zero disables", in: "Hello", max: 0, want: "Hello", truncated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}
