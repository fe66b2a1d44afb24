// Package lexicon provides an AFINN-style word polarity table and the
// scorer that averages it over a token sequence.
package lexicon

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/kljensen/snowball/english"
)

//go:embed afinn.txt
var defaultWords string

// Weight bounds of the AFINN scale.
const (
	MinWeight = -5
	MaxWeight = 5
)

// ErrMalformedEntry is returned by Load for lines that are not word<TAB>weight.
var ErrMalformedEntry = errors.New("malformed lexicon entry")

// Lexicon maps words to polarity weights. Entries are looked up by exact
// word first and by Snowball English stem second, so inflected forms of a
// listed word still score. A Lexicon is read-only after construction.
type Lexicon struct {
	words map[string]float64
	stems map[string]float64
}

// New builds a lexicon from a word to weight mapping.
func New(entries map[string]float64) *Lexicon {
	l := &Lexicon{
		words: make(map[string]float64, len(entries)),
		stems: make(map[string]float64, len(entries)),
	}
	for _, word := range slices.Sorted(maps.Keys(entries)) {
		l.add(word, entries[word])
	}
	return l
}

func (l *Lexicon) add(word string, weight float64) {
	word = strings.ToLower(strings.TrimSpace(word))
	l.words[word] = weight

	// A word that is its own stem owns the stem weight. Otherwise the first
	// inflection added holds it until the base form shows up. New adds in
	// sorted order so the result does not depend on map iteration.
	stem := english.Stem(word, false)
	if word == stem {
		l.stems[stem] = weight
		return
	}
	if _, exists := l.stems[stem]; !exists {
		l.stems[stem] = weight
	}
}

var loadDefault = sync.OnceValue(func() *Lexicon {
	l, err := Load(strings.NewReader(defaultWords))
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
	}
	return l
})

// Default returns the embedded AFINN-style lexicon.
func Default() *Lexicon {
	return loadDefault()
}

// Load parses tab separated word/weight lines. Blank lines and lines
// starting with # are skipped.
func Load(r io.Reader) (*Lexicon, error) {
	l := &Lexicon{
		words: make(map[string]float64),
		stems: make(map[string]float64),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, rawWeight, ok := strings.Cut(line, "\t")
		if !ok || strings.TrimSpace(word) == "" {
			return nil, fmt.Errorf("%w on line %d: %q", ErrMalformedEntry, lineNo, line)
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(rawWeight), 64)
		if err != nil {
			return nil, fmt.Errorf("%w on line %d: weight %q", ErrMalformedEntry, lineNo, rawWeight)
		}
		if weight < MinWeight || weight > MaxWeight {
			return nil, fmt.Errorf("%w on line %d: weight %v outside [%d, %d]", ErrMalformedEntry, lineNo, weight, MinWeight, MaxWeight)
		}

		l.add(word, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}

	return l, nil
}

// LoadFile reads a lexicon from path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Len returns the number of listed words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Weight returns the polarity of a single lower-cased token.
func (l *Lexicon) Weight(token string) (float64, bool) {
	if w, ok := l.words[token]; ok {
		return w, true
	}
	w, ok := l.stems[english.Stem(token, false)]
	return w, ok
}

// Score returns the summed weight of tokens divided by the token count.
// Unknown tokens count toward the denominator. An empty sequence scores 0.
func (l *Lexicon) Score(_ context.Context, tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	var sum float64
	for _, token := range tokens {
		if w, ok := l.Weight(strings.ToLower(token)); ok {
			sum += w
		}
	}
	return sum / float64(len(tokens)), nil
}
