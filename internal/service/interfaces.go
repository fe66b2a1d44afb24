// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/moodring/internal/model"
)

// Storage defines the contract for the analysis record store.
type Storage interface {
	// SaveAnalysis persists a record, assigning an ID and timestamps when missing.
	SaveAnalysis(ctx context.Context, analysis *model.Analysis) error
	GetAnalysis(ctx context.Context, id string) (*model.Analysis, error)
	// ListAnalyses returns records newest first. A limit of 0 returns all records.
	ListAnalyses(ctx context.Context, limit int) ([]model.Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
	CountAnalyses(ctx context.Context) (int, error)

	// Database maintenance
	Migrate(ctx context.Context) error
	Close() error
}

// Classifier defines the contract for the classification engine as seen by
// the API and CLI layers.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.AnalysisResult, error)
}
