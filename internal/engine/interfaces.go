package engine

import (
	"context"
)

// Scorer defines the contract for the lexicon stage. Score returns the
// aggregate polarity of an already tokenized text.
type Scorer interface {
	Score(ctx context.Context, tokens []string) (float64, error)
}
