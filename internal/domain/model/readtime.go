package model

import (
	"fmt"
	"math"
	"strings"
)

// WordsPerMinute is the fixed reading speed used for estimates.
const WordsPerMinute = 200

// ReadTimeEstimate is the derived view of a draft text.
type ReadTimeEstimate struct {
	WordCount int
	ReadTime  string
}

// CountWords returns the number of maximal runs of non-whitespace characters
// in text. Leading, trailing and repeated whitespace never produce empty words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FormatReadTime converts a word count to an "MM:SS" reading time, or "0s"
// when both parts round to zero.
//
// The arithmetic is done in float32 so results match the published widget
// exactly, including its rounding of 199 words to "00:60". Counts are not
// bounded to a byte: minutes of 100 or more print with all their digits.
func FormatReadTime(wordCount int) string {
	t := float32(wordCount) / float32(WordsPerMinute)
	whole := float32(math.Floor(float64(t)))
	frac := float32(t - whole)
	secs := math.Round(float64(float32(frac * 60)))

	minutes := int(whole)
	seconds := int(secs)
	if minutes == 0 && seconds == 0 {
		return "0s"
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// EstimateReadTime computes the word count and reading time for text.
func EstimateReadTime(text string) ReadTimeEstimate {
	count := CountWords(text)
	return ReadTimeEstimate{
		WordCount: count,
		ReadTime:  FormatReadTime(count),
	}
}
