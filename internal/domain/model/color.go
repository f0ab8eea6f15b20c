package model

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultColor is the heading color used until a stored preference is loaded.
const DefaultColor = "#ff0000"

// ColorKey is the preference key under which the selected color is stored.
const ColorKey = "color"

// ErrInvalidColor is returned when a color is not of the form #RRGGBB.
var ErrInvalidColor = errors.New("invalid color")

// IsHexColor reports whether s has the form #RRGGBB. Hex digits may be upper
// or lower case.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormalizeColor trims and lowercases a color submitted by a user, returning
// ErrInvalidColor if the result is not a #RRGGBB value. Browsers' color inputs
// always submit lowercase, so stored values stay comparable.
func NormalizeColor(s string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	if !IsHexColor(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// StyleOf returns the inline CSS declaration applied to the color heading.
func StyleOf(color string) string {
	return "color: " + color
}
