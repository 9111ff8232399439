package generator

import "strings"

// Maximum stored lengths for user-supplied fields. The client enforces the
// skills cap as a courtesy; these are the authoritative bounds.
const (
	MaxSkillsLen = 500
	MaxRoleLen   = 80
)

// Bounds for the requested summary length, in sentences.
const (
	MinSentences     = 2
	MaxSentences     = 6
	DefaultSentences = 4
)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize strips angle-bracket characters and trims surrounding whitespace.
// Every other character is preserved; this is not HTML escaping, just a guard
// against markup sneaking into stored text and prompts.
func Sanitize(s string) string {
	return strings.TrimSpace(angleBrackets.Replace(s))
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ClampSentences forces n into [MinSentences, MaxSentences].
func ClampSentences(n int) int {
	if n < MinSentences {
		return MinSentences
	}
	if n > MaxSentences {
		return MaxSentences
	}
	return n
}
