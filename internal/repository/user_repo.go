package repository

import (
	"context"
	"errors"

	"SubastasAPI/internal/apperrors"
	"SubastasAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const uniqueViolation = "23505"

// Create inserts a new user. The unique constraint on email is the
// authoritative duplicate check: a conflict maps to ErrEmailTaken, so there
// is no separate existence pre-check to race against.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (user_id, email, full_name, phone, company, password_hash, is_active, created_at, registered_auctions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.DB.QueryRow(ctx, query,
		u.UserID, u.Email, u.FullName, u.Phone, u.Company,
		u.PasswordHash, u.IsActive, u.CreatedAt, u.RegisteredAuctions).
		Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `
		SELECT id, user_id, email, full_name, phone, company, password_hash, is_active, created_at, registered_auctions
		FROM users
		WHERE email=$1`
	err := r.DB.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.UserID, &u.Email, &u.FullName, &u.Phone, &u.Company,
		&u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.RegisteredAuctions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	var u model.User
	query := `
		SELECT id, user_id, email, full_name, phone, company, password_hash, is_active, created_at, registered_auctions
		FROM users
		WHERE user_id=$1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.UserID, &u.Email, &u.FullName, &u.Phone, &u.Company,
		&u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.RegisteredAuctions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
