package dailyverse

import (
	"context"
	"database/sql"
	"errors"

	"github.com/scripturalzealous/zealous-api/internal/database"
)

// PostgresStore persists the daily verse cache across restarts.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dbService database.Service) *PostgresStore {
	return &PostgresStore{db: dbService.DB()}
}

func (s *PostgresStore) Get(ctx context.Context, scope, date string) (*DailyVerse, error) {
	query := `
		SELECT verse, reference, reflection
		FROM daily_verse_cache
		WHERE scope = $1 AND verse_date = $2
	`

	var v DailyVerse
	err := s.db.QueryRowContext(ctx, query, scope, date).Scan(&v.Verse, &v.Reference, &v.Reflection)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *PostgresStore) Set(ctx context.Context, scope, date string, v DailyVerse) error {
	query := `
		INSERT INTO daily_verse_cache (scope, verse_date, verse, reference, reflection)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (scope, verse_date)
		DO UPDATE SET verse = $3, reference = $4, reflection = $5
	`
	_, err := s.db.ExecContext(ctx, query, scope, date, v.Verse, v.Reference, v.Reflection)
	return err
}

func (s *PostgresStore) Prune(ctx context.Context, before string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM daily_verse_cache WHERE verse_date < $1`, before)
	return err
}

// feelingsWindow bounds the personalization history per user.
const feelingsWindow = 10

type FeelingsRepo interface {
	Append(ctx context.Context, userID int, feeling string) error
	List(ctx context.Context, userID int) ([]string, error)
}

type feelingsRepo struct {
	db *sql.DB
}

func NewFeelingsRepo(dbService database.Service) FeelingsRepo {
	return &feelingsRepo{db: dbService.DB()}
}

// Append records a feeling and trims the history down to the rolling window.
func (r *feelingsRepo) Append(ctx context.Context, userID int, feeling string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_feelings (user_id, feeling)
		VALUES ($1, $2)
	`, userID, feeling)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		DELETE FROM user_feelings
		WHERE user_id = $1
		AND id NOT IN (
			SELECT id FROM user_feelings
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		)
	`, userID, feelingsWindow)
	return err
}

// List returns the window oldest first, so the gateway prompt reads the
// feelings in the order they were shared.
func (r *feelingsRepo) List(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT feeling FROM (
			SELECT id, feeling FROM user_feelings
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) latest
		ORDER BY id ASC
	`, userID, feelingsWindow)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feelings []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		feelings = append(feelings, f)
	}
	return feelings, rows.Err()
}
