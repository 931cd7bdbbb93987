package prayer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/scripturalzealous/zealous-api/internal/database"
)

var (
	ErrNotFound       = errors.New("prayer request not found")
	ErrInternalServer = errors.New("internal server error")
)

type PrayerRepo interface {
	Create(ctx context.Context, pr PrayerRequest, email string) error
	List(ctx context.Context) ([]PrayerRequest, error)
	ListByUser(ctx context.Context, userID int) ([]PrayerRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewPrayerRepo(dbService database.Service) PrayerRepo {
	return &repository{db: dbService.DB()}
}

// Create inserts the request and, when an email was provided, its address
// into the restricted side table. Both rows commit together.
func (r *repository) Create(ctx context.Context, pr PrayerRequest, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrInternalServer
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO prayer_requests (id, name, prayer_request, status, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`, pr.ID, pr.Name, pr.PrayerRequest, pr.Status, pr.UserID)
	if err != nil {
		return ErrInternalServer
	}

	if email != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO prayer_request_emails (prayer_request_id, email)
			VALUES ($1, $2)
		`, pr.ID, email)
		if err != nil {
			return ErrInternalServer
		}
	}

	if err := tx.Commit(); err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]PrayerRequest, error) {
	query := `
		SELECT id, name, prayer_request, status, notes, user_id, created_at
		FROM prayer_requests
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query)
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]PrayerRequest, error) {
	query := `
		SELECT id, name, prayer_request, status, notes, user_id, created_at
		FROM prayer_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query, userID)
}

func (r *repository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]PrayerRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var requests []PrayerRequest
	for rows.Next() {
		var pr PrayerRequest
		if err := rows.Scan(
			&pr.ID,
			&pr.Name,
			&pr.PrayerRequest,
			&pr.Status,
			&pr.Notes,
			&pr.UserID,
			&pr.CreatedAt,
		); err != nil {
			return nil, ErrInternalServer
		}
		requests = append(requests, pr)
	}

	if err = rows.Err(); err != nil {
		return nil, ErrInternalServer
	}
	return requests, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE prayer_requests SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return ErrInternalServer
	}
	return checkAffected(res)
}

func (r *repository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE prayer_requests SET notes = $1 WHERE id = $2
	`, notes, id)
	if err != nil {
		return ErrInternalServer
	}
	return checkAffected(res)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM prayer_requests WHERE id = $1
	`, id)
	if err != nil {
		return ErrInternalServer
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return ErrInternalServer
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
