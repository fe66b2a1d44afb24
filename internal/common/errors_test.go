package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisError(t *testing.T) {
	cause := errors.New("lexicon unavailable")
	err := fmt.Errorf("classify: %w", NewAnalysisError("lexicon", cause))

	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, cause)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "lexicon", analysisErr.Stage)
	assert.Equal(t, "classify: lexicon stage: lexicon unavailable", err.Error())
}

func TestUserError(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "with cause", err: NewUserError("record not found", ErrNotFound), want: "record not found: not found"},
		{name: "message only", err: NewUserError("text is required", nil), want: "text is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	assert.ErrorIs(t, NewUserError("x", ErrNotFound), ErrNotFound)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("classified", "sentiment", "positive")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"sentiment":"positive"`)

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
