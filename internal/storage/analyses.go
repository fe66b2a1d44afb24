package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Veraticus/moodring/internal/common"
	"github.com/Veraticus/moodring/internal/model"
)

const analysisColumns = `id, text, sentiment, score, context_info, category, rule, created_at, updated_at`

// SaveAnalysis inserts or replaces a record. A missing ID is filled with a
// new UUID and CreatedAt defaults to now; UpdatedAt is always set to now.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAnalysis(analysis); err != nil {
		return err
	}

	now := s.clock.Now().UTC()
	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = now
	}
	analysis.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (`+analysisColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			sentiment = excluded.sentiment,
			score = excluded.score,
			context_info = excluded.context_info,
			category = excluded.category,
			rule = excluded.rule,
			updated_at = excluded.updated_at
	`,
		analysis.ID,
		analysis.Text,
		string(analysis.Sentiment),
		analysis.Score,
		analysis.ContextInfo,
		string(analysis.Category),
		analysis.Rule,
		analysis.CreatedAt,
		analysis.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis returns the record with the given ID or common.ErrNotFound.
func (s *SQLiteStorage) GetAnalysis(ctx context.Context, id string) (*model.Analysis, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+analysisColumns+` FROM analyses WHERE id = ?`, id)
	analysis, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// ListAnalyses returns records newest first, at most limit of them when
// limit is positive.
func (s *SQLiteStorage) ListAnalyses(ctx context.Context, limit int) ([]model.Analysis, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	query := `SELECT ` + analysisColumns + ` FROM analyses ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	analyses := []model.Analysis{}
	for rows.Next() {
		analysis, scanErr := scanAnalysis(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", scanErr)
		}
		analyses = append(analyses, *analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}
	return analyses, nil
}

// DeleteAnalysis removes the record with the given ID or returns common.ErrNotFound.
func (s *SQLiteStorage) DeleteAnalysis(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("analysis %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// CountAnalyses returns the number of stored records.
func (s *SQLiteStorage) CountAnalyses(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*model.Analysis, error) {
	var (
		analysis  model.Analysis
		sentiment string
		category  string
	)
	err := row.Scan(
		&analysis.ID,
		&analysis.Text,
		&sentiment,
		&analysis.Score,
		&analysis.ContextInfo,
		&category,
		&analysis.Rule,
		&analysis.CreatedAt,
		&analysis.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	analysis.Sentiment = model.Sentiment(sentiment)
	analysis.Category = model.Category(category)
	return &analysis, nil
}
