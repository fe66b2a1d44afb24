// Package testutil provides test utilities shared across moodring packages.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Veraticus/moodring/internal/model"
	"github.com/Veraticus/moodring/internal/service"
	"github.com/Veraticus/moodring/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage service.Storage
	Clock   *clockwork.FakeClock
	t       *testing.T
}

// SetupTestDB creates a new migrated in-memory database whose timestamps
// come from a fake clock. It is closed when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	db.SeedAnalyses("I love it", "today is Monday")
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	clock := clockwork.NewFakeClockAt(time.Date(2024, time.May, 13, 9, 0, 0, 0, time.UTC))
	store.SetClock(clock)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		Clock:   clock,
		t:       t,
	}
}

// SeedAnalyses stores one neutral record per text, one minute apart, and
// returns them in insertion order.
func (db *TestDB) SeedAnalyses(texts ...string) []*model.Analysis {
	db.t.Helper()

	seeded := make([]*model.Analysis, 0, len(texts))
	for _, text := range texts {
		analysis := model.NewAnalysis(text, model.AnalysisResult{
			Sentiment: model.SentimentNeutral,
			Category:  model.CategoryEmotional,
		})
		if err := db.Storage.SaveAnalysis(context.Background(), analysis); err != nil {
			db.t.Fatalf("failed to seed analysis %q: %v", text, err)
		}
		seeded = append(seeded, analysis)
		db.Clock.Advance(time.Minute)
	}
	return seeded
}
