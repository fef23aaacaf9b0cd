package user

import (
	"context"
	"database/sql"
	"errors"

	"loja-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const PgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, email, name, password, role string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uint) (User, error)
	UpdateProfile(ctx context.Context, userID uint, params UpdateProfileParams) (User, error)
	UpdatePassword(ctx context.Context, userID uint, hash string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, name, password, role string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, name, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, password, role, created_at
	`, email, name, password, role,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return User{}, ErrEmailExists
		}
		log.Error("failed to insert user", zap.String("email", email), zap.Error(err))
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password, role, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	return u, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password, role, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	return u, err
}

// UpdateProfile applies only the provided fields; COALESCE keeps the
// stored value when the input is nil.
func (r *repository) UpdateProfile(
	ctx context.Context,
	userID uint,
	params UpdateProfileParams,
) (User, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.Uint("user_id", userID),
	)

	var u User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name  = COALESCE($2, name),
		    email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, email, name, password, role, created_at
	`, userID, params.Name, params.Email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return User{}, ErrEmailExists
		}
		log.Error("failed to update profile", zap.Error(err))
		return User{}, err
	}

	log.Info("profile updated")
	return u, nil
}

func (r *repository) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password = $2 WHERE id = $1
	`, userID, hash)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
