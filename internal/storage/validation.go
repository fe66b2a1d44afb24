package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/moodring/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidLimit     = errors.New("limit cannot be negative")
	ErrInvalidSentiment = errors.New("invalid sentiment")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return nil
}

// validateAnalysis validates a record before it is written.
func validateAnalysis(analysis *model.Analysis) error {
	if analysis == nil {
		return fmt.Errorf("%w: analysis", ErrNilParameter)
	}
	if err := validateString(analysis.Text, "text"); err != nil {
		return err
	}
	if !analysis.Sentiment.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSentiment, analysis.Sentiment)
	}
	return nil
}
