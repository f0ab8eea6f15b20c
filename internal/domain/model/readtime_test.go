package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"only whitespace", " \t\n  ", 0},
		{"single word", "hello", 1},
		{"three words", "one two three", 3},
		{"leading trailing and repeated spaces", "  a   b  ", 2},
		{"tabs and newlines", "a\tb\nc\r\nd", 4},
		{"unicode whitespace", "a\u00a0b\u2003c", 3},
		{"punctuation stays attached", "hello, world!", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestFormatReadTime(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, "0s"},
		{1, "0s"}, // 0.3s rounds down
		{2, "00:01"},
		{3, "00:01"},
		{15, "00:05"}, // 4.5s rounds half away from zero
		{100, "00:30"},
		{150, "00:45"},
		{199, "00:60"},
		{200, "01:00"},
		{201, "01:00"},
		{300, "01:30"},
		{1000, "05:00"},
		{20000, "100:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReadTime(tt.words))
		})
	}
}

func TestEstimateReadTime(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, ReadTimeEstimate{WordCount: 0, ReadTime: "0s"}, EstimateReadTime(""))
	})

	t.Run("three words", func(t *testing.T) {
		assert.Equal(t, ReadTimeEstimate{WordCount: 3, ReadTime: "00:01"}, EstimateReadTime("one two three"))
	})

	t.Run("two hundred words is one minute", func(t *testing.T) {
		assert.Equal(t, ReadTimeEstimate{WordCount: 200, ReadTime: "01:00"}, EstimateReadTime(words(200)))
	})

	t.Run("whitespace padding is ignored", func(t *testing.T) {
		assert.Equal(t, 2, EstimateReadTime("  a   b  ").WordCount)
	})
}

// Counts are widened to int. The original widget stored them in a byte, so 256
// words wrapped to 0 and displayed "0s"; here they count normally.
func TestEstimateReadTime_CountsBeyondByteRange(t *testing.T) {
	got := EstimateReadTime(words(256))

	assert.Equal(t, 256, got.WordCount)
	assert.Equal(t, "01:17", got.ReadTime)
}
