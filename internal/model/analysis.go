package model

import "time"

// Analysis is a stored record of one classified text.
type Analysis struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AnalysisResult
}

// NewAnalysis pairs a text with the verdict the engine produced for it.
func NewAnalysis(text string, result AnalysisResult) *Analysis {
	return &Analysis{
		Text:           text,
		AnalysisResult: result,
	}
}
