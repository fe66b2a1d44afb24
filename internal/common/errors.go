// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Analysis errors.
	ErrAnalysisFailed = errors.New("analysis failed")
	ErrEmptyText      = errors.New("text is required")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// AnalysisError reports an unexpected failure inside a pipeline stage.
// Expected conditions such as unparseable arithmetic never produce one.
type AnalysisError struct {
	Err   error
	Stage string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is makes every AnalysisError match ErrAnalysisFailed.
func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed
}

// NewAnalysisError wraps err as a failure of the named stage.
func NewAnalysisError(stage string, err error) error {
	return &AnalysisError{Stage: stage, Err: err}
}
