// Package model defines the core domain models used throughout the application.
package model

// Sentiment is the categorical label assigned to a piece of text.
type Sentiment string

// Sentiment constants.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// IsValid reports whether s is one of the known sentiment labels.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Category distinguishes emotional verdicts from fact-check verdicts.
type Category string

// Category constants.
const (
	CategoryEmotional Category = "emotional"
	CategoryMath      Category = "math"
	CategoryDate      Category = "date"
)

// IsFactual reports whether the verdict was graded on factual correctness
// rather than emotional tone.
func (c Category) IsFactual() bool {
	return c == CategoryMath || c == CategoryDate
}

// AnalysisResult is the verdict produced by the classification engine.
// It is a value type and is never mutated after it is returned.
type AnalysisResult struct {
	Sentiment   Sentiment `json:"sentiment"`
	ContextInfo string    `json:"contextInfo"`
	Category    Category  `json:"category"`
	Rule        string    `json:"rule,omitempty"` // detector that decided the verdict, empty for lexicon scoring
	Score       float64   `json:"score"`
}
