package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/scripturalzealous/zealous-api/internal/database"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInternalServer     = errors.New("internal server error")
)

// Repository defines the methods the Auth module provides for DB operations.
type Repository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID int) (*User, error)
	IsAdmin(ctx context.Context, userID int) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) CreateUser(ctx context.Context, user User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Check if email exists
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.QueryRowContext(ctx, checkQuery, user.Email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	query := `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING id, email, password, is_admin, created_at, updated_at
	`

	usr := User{}
	err = r.db.QueryRowContext(ctx, query, user.Email, user.Password).
		Scan(&usr.ID, &usr.Email, &usr.Password, &usr.IsAdmin, &usr.CreatedAt, &usr.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &usr, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password, is_admin, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetUserByID(ctx context.Context, userID int) (*User, error) {
	query := `
		SELECT id, email, password, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&u.ID, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// IsAdmin resolves the admin flag server-side on every request, so a stale
// token can never keep admin access after the flag is revoked.
func (r *repository) IsAdmin(ctx context.Context, userID int) (bool, error) {
	var isAdmin bool
	err := r.db.QueryRowContext(ctx, `SELECT is_admin FROM users WHERE id = $1`, userID).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return isAdmin, nil
}
