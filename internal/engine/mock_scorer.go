package engine

import (
	"context"
	"slices"
	"sync"
)

// MockScorer is a test implementation of the Scorer interface. It returns a
// fixed score or error and records the tokens of every call.
type MockScorer struct {
	Err   error
	calls [][]string
	Value float64
	mu    sync.Mutex
}

// NewMockScorer creates a mock that always returns value.
func NewMockScorer(value float64) *MockScorer {
	return &MockScorer{Value: value}
}

// Score records tokens and returns the configured value or error.
func (m *MockScorer) Score(_ context.Context, tokens []string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, slices.Clone(tokens))
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Value, nil
}

// GetCalls returns the tokens of every call for verification in tests.
func (m *MockScorer) GetCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([][]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of times Score was called.
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
