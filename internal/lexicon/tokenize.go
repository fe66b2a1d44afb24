package lexicon

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lower-cased word tokens. Any rune that is not a
// letter, digit or underscore separates tokens, so "don't" yields "don" and "t".
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}
