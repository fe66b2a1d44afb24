// Package engine composes the classification pipeline: special-case
// detectors, lexicon scoring, contextual adjustment and thresholding.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Veraticus/moodring/internal/classification"
	"github.com/Veraticus/moodring/internal/common"
	"github.com/Veraticus/moodring/internal/lexicon"
	"github.com/Veraticus/moodring/internal/metrics"
	"github.com/Veraticus/moodring/internal/model"
)

// NoTextInfo explains the verdict for input without any tokens.
const NoTextInfo = "No meaningful text detected"

// Analyzer classifies text. It is safe for concurrent use; the only state
// it reads is the clock.
type Analyzer struct {
	scorer   Scorer
	clock    clockwork.Clock
	location *time.Location
	detector *classification.Detector
	metrics  *metrics.EngineMetrics
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock sets the clock used for "today" fact checks.
func WithClock(clock clockwork.Clock) Option {
	return func(a *Analyzer) { a.clock = clock }
}

// WithLocation sets the time zone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(a *Analyzer) { a.location = loc }
}

// WithDetector replaces the default rule table.
func WithDetector(d *classification.Detector) Option {
	return func(a *Analyzer) { a.detector = d }
}

// WithMetrics records every classification into m.
func WithMetrics(m *metrics.EngineMetrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithLogger sets the logger for stage decisions.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer creates an analyzer that falls back to scorer when no
// detector rule decides the verdict.
func NewAnalyzer(scorer Scorer, opts ...Option) *Analyzer {
	a := &Analyzer{
		scorer:   scorer,
		clock:    clockwork.NewRealClock(),
		location: time.Local,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.detector == nil {
		a.detector = classification.NewDefaultDetector()
	}
	return a
}

// Classify runs the pipeline over text. Unparseable input yields a neutral
// verdict rather than an error; only a failing scorer returns an error,
// which matches common.ErrAnalysisFailed.
func (a *Analyzer) Classify(ctx context.Context, text string) (model.AnalysisResult, error) {
	start := a.clock.Now()

	result, err := a.classify(ctx, text, start.In(a.location))
	if err != nil {
		a.metrics.ObserveError()
		a.logger.Warn("Classification failed", "error", err)
		return model.AnalysisResult{}, err
	}

	a.metrics.ObserveResult(string(result.Sentiment), string(result.Category), result.Rule,
		a.clock.Since(start).Seconds())
	return result, nil
}

func (a *Analyzer) classify(ctx context.Context, text string, now time.Time) (model.AnalysisResult, error) {
	if verdict := a.detector.Detect(text, now); verdict != nil {
		a.logger.Debug("Detector decided verdict",
			"rule", verdict.Rule,
			"sentiment", verdict.Sentiment,
			"score", verdict.Score)
		return *verdict, nil
	}

	tokens := lexicon.Tokenize(text)
	if len(tokens) == 0 {
		return model.AnalysisResult{
			Sentiment:   model.SentimentNeutral,
			Category:    model.CategoryEmotional,
			ContextInfo: NoTextInfo,
		}, nil
	}

	base, err := a.scorer.Score(ctx, tokens)
	if err != nil {
		return model.AnalysisResult{}, common.NewAnalysisError("lexicon", err)
	}

	score, info := Adjust(text, base)
	sentiment := Label(score)

	a.logger.Debug("Lexicon decided verdict",
		"tokens", len(tokens),
		"base_score", base,
		"score", score,
		"sentiment", sentiment)

	return model.AnalysisResult{
		Sentiment:   sentiment,
		Score:       score,
		ContextInfo: info,
		Category:    model.CategoryEmotional,
	}, nil
}

// Rules lists the detector rules in evaluation order.
func (a *Analyzer) Rules() []classification.Rule {
	return a.detector.Rules()
}
