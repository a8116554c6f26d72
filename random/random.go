package random

import (
	"math/rand/v2"
	"strings"
)

// Between returns a random number in [min, max], both ends inclusive.
// When min > max the bounds are swapped rather than panicking.
func Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return rand.IntN(max-min+1) + min
}

// CharFrom returns a single random rune from s.
// An empty string returns the zero rune.
func CharFrom(s string) rune {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	return runes[rand.IntN(len(runes))]
}

// StringFrom builds a string of length random runes drawn from charset.
// An empty charset or non-positive length returns the empty string.
func StringFrom(charset string, length int) string {
	if charset == "" || length < 1 {
		return ""
	}
	runes := []rune(charset)
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(runes[rand.IntN(len(runes))])
	}
	return sb.String()
}
