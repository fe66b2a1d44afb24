package engine

import "github.com/Veraticus/moodring/internal/model"

// Cut points between labels. Both are exclusive.
const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

// Label maps a final score to its sentiment.
func Label(score float64) model.Sentiment {
	switch {
	case score > PositiveThreshold:
		return model.SentimentPositive
	case score < NegativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
