package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/moodring/internal/classification"
	"github.com/Veraticus/moodring/internal/common"
	"github.com/Veraticus/moodring/internal/lexicon"
	"github.com/Veraticus/moodring/internal/metrics"
	"github.com/Veraticus/moodring/internal/model"
)

// monday is Monday 13 May 2024.
var monday = time.Date(2024, time.May, 13, 10, 30, 0, 0, time.UTC)

func newTestAnalyzer(scorer Scorer, now time.Time, opts ...Option) *Analyzer {
	base := []Option{
		WithClock(clockwork.NewFakeClockAt(now)),
		WithLocation(time.UTC),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return NewAnalyzer(scorer, append(base, opts...)...)
}

func TestClassify_Math(t *testing.T) {
	scorer := NewMockScorer(0)
	a := newTestAnalyzer(scorer, monday)

	result, err := a.Classify(context.Background(), "5 + 3 = 8")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.9, result.Score, 1e-9)
	assert.Contains(t, result.ContextInfo, "correct")
	assert.Equal(t, model.CategoryMath, result.Category)

	result, err = a.Classify(context.Background(), "5 + 3 = 9")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)
	assert.InDelta(t, -0.9, result.Score, 1e-9)
	assert.Contains(t, result.ContextInfo, "actually equals 8")

	assert.Zero(t, scorer.CallCount())
}

func TestClassify_EmptyText(t *testing.T) {
	scorer := NewMockScorer(5)
	a := newTestAnalyzer(scorer, monday)

	for _, text := range []string{"", "   ", "?!...", "😊"} {
		t.Run(text, func(t *testing.T) {
			result, err := a.Classify(context.Background(), text)
			require.NoError(t, err)
			assert.Equal(t, model.SentimentNeutral, result.Sentiment)
			assert.Zero(t, result.Score)
			assert.Equal(t, NoTextInfo, result.ContextInfo)
			assert.Equal(t, model.CategoryEmotional, result.Category)
		})
	}
	assert.Zero(t, scorer.CallCount())
}

func TestClassify_Weekday(t *testing.T) {
	result, err := newTestAnalyzer(NewMockScorer(0), monday).Classify(context.Background(), "Today is Monday")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.5, result.Score, 1e-9)

	result, err = newTestAnalyzer(NewMockScorer(0), monday.AddDate(0, 0, 1)).Classify(context.Background(), "Today is Monday")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)
	assert.InDelta(t, -0.5, result.Score, 1e-9)
	assert.Equal(t, classification.RuleWeekday, result.Rule)
}

func TestClassify_UsesLocationForToday(t *testing.T) {
	lateMonday := time.Date(2024, time.May, 13, 23, 30, 0, 0, time.UTC)
	a := newTestAnalyzer(NewMockScorer(0), lateMonday, WithLocation(time.FixedZone("UTC+2", 2*60*60)))

	result, err := a.Classify(context.Background(), "today is tuesday")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
}

func TestClassify_MathWinsOverPhrase(t *testing.T) {
	result, err := newTestAnalyzer(NewMockScorer(0), monday).Classify(context.Background(), "I worked hard and 2 * 3 = 6")
	require.NoError(t, err)
	assert.Equal(t, classification.RuleMath, result.Rule)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
}

func TestClassify_LexiconPath(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		info      string
		sentiment model.Sentiment
		base      float64
		score     float64
	}{
		{name: "positive base", text: "nice day", base: 0.5, score: 0.5, sentiment: model.SentimentPositive},
		{name: "on the threshold", text: "fine", base: 0.2, score: 0.2, sentiment: model.SentimentNeutral},
		{name: "negated", text: "not nice", base: 0.5, score: -0.4, sentiment: model.SentimentNegative, info: "Contains negations."},
		{name: "emoji lifts neutral", text: "meh ❤", base: 0, score: 0.4, sentiment: model.SentimentPositive, info: "Contains positive emoji."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewMockScorer(tt.base)
			result, err := newTestAnalyzer(scorer, monday).Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.sentiment, result.Sentiment)
			assert.InDelta(t, tt.score, result.Score, 1e-9)
			assert.Equal(t, tt.info, result.ContextInfo)
			assert.Equal(t, model.CategoryEmotional, result.Category)
			assert.Empty(t, result.Rule)
			assert.Equal(t, [][]string{lexicon.Tokenize(tt.text)}, scorer.GetCalls())
		})
	}
}

func TestClassify_DefaultLexicon(t *testing.T) {
	a := newTestAnalyzer(lexicon.Default(), monday)

	result, err := a.Classify(context.Background(), "I love this")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)

	result, err = a.Classify(context.Background(), "This is terrible")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)

	result, err = a.Classify(context.Background(), "I am not happy")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNegative, result.Sentiment)
}

func TestClassify_ScorerError(t *testing.T) {
	scorer := NewMockScorer(0)
	scorer.Err = errors.New("lexicon unavailable")
	reg := prometheus.NewRegistry()
	m := metrics.NewEngineMetrics(reg)

	_, err := newTestAnalyzer(scorer, monday, WithMetrics(m)).Classify(context.Background(), "hello there")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAnalysisFailed)

	var analysisErr *common.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "lexicon", analysisErr.Stage)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Errors), 1e-9)
}

func TestClassify_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewEngineMetrics(reg)
	a := newTestAnalyzer(NewMockScorer(0.5), monday, WithMetrics(m))

	_, err := a.Classify(context.Background(), "5 + 3 = 8")
	require.NoError(t, err)
	_, err = a.Classify(context.Background(), "good stuff")
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.Classifications.WithLabelValues("positive", "math")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Classifications.WithLabelValues("positive", "emotional")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RuleHits.WithLabelValues(classification.RuleMath)), 1e-9)
}

func TestClassify_CustomDetector(t *testing.T) {
	d, err := classification.NewDetector([]classification.Rule{{
		Name:     "shout",
		Pattern:  `!!!`,
		Category: model.CategoryEmotional,
		Verdict: func(classification.Match, time.Time) *model.AnalysisResult {
			return &model.AnalysisResult{Sentiment: model.SentimentPositive, Score: 1}
		},
	}})
	require.NoError(t, err)

	a := newTestAnalyzer(NewMockScorer(0), monday, WithDetector(d))
	result, err := a.Classify(context.Background(), "wow!!!")
	require.NoError(t, err)
	assert.Equal(t, "shout", result.Rule)

	// The default table is gone, so arithmetic falls through to the scorer.
	result, err = a.Classify(context.Background(), "5 + 3 = 9")
	require.NoError(t, err)
	assert.Equal(t, model.SentimentNeutral, result.Sentiment)
	assert.Len(t, a.Rules(), 1)
}

func TestClassify_Concurrent(t *testing.T) {
	a := newTestAnalyzer(lexicon.Default(), monday)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := a.Classify(context.Background(), "5 * 5 = 25")
			assert.NoError(t, err)
			assert.Equal(t, model.SentimentPositive, result.Sentiment)
		}()
	}
	wg.Wait()
}
