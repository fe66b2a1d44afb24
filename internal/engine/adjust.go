package engine

import (
	"regexp"
	"strings"
)

// Adjustment factors applied by Adjust.
const (
	EmojiBoost        = 0.4
	IntensifierFactor = 1.3
	NegationFactor    = -0.8
)

var (
	positiveEmoji = []string{"❤", "😊", "😀", "😃", "😄", "😍", "🥰", "🙂", "👍"}

	intensifierPattern = regexp.MustCompile(`(?i)\b(?:very|really|extremely|so)\b`)
	negationPattern    = regexp.MustCompile(`(?i)\b(?:not|never|cannot)\b|n't\b|\bno\s`)
	timePattern        = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}(?:\s*[ap]m)?\b`)
)

// Adjust applies the surface-cue rules to base in a fixed order and returns
// the adjusted score with one explanation fragment per rule that fired.
func Adjust(text string, base float64) (float64, string) {
	score := base
	var notes []string

	if containsAny(text, positiveEmoji) {
		score += EmojiBoost
		notes = append(notes, "Contains positive emoji.")
	}
	if intensifierPattern.MatchString(text) {
		score *= IntensifierFactor
		notes = append(notes, "Contains intensifiers.")
	}
	if negationPattern.MatchString(text) {
		score *= NegationFactor
		notes = append(notes, "Contains negations.")
	}
	if timePattern.MatchString(text) {
		notes = append(notes, "Contains time reference.")
	}

	return score, strings.TrimSpace(strings.Join(notes, " "))
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
