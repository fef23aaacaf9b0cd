package address

import (
	"context"
	"database/sql"
	"errors"

	"loja-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Address, error)

	Create(ctx context.Context, addr *Address) error
	Update(ctx context.Context, addr *Address) error
	Delete(ctx context.Context, id uuid.UUID) error

	ClearDefault(ctx context.Context, userID uint) error
	SetDefault(ctx context.Context, userID uint, addressID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const addressColumns = `
	id, user_id,
	street, number, complement, neighborhood,
	city, state, postal_code, is_default`

func (r *repository) GetByUserID(
	ctx context.Context,
	userID uint,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByUserID"),
		zap.Uint("user_id", userID),
	)

	const q = `
		SELECT` + addressColumns + `
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []*Address

	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID, &a.UserID,
			&a.Street, &a.Number, &a.Complement, &a.Neighborhood,
			&a.City, &a.State, &a.PostalCode, &a.IsDefault,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, &a)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByID"),
		zap.String("address_id", id.String()),
	)

	const q = `
		SELECT` + addressColumns + `
		FROM addresses
		WHERE id = $1
		LIMIT 1
	`

	var a Address
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.UserID,
		&a.Street, &a.Number, &a.Complement, &a.Neighborhood,
		&a.City, &a.State, &a.PostalCode, &a.IsDefault,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return &a, nil
}

func (r *repository) Create(
	ctx context.Context,
	addr *Address,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Create"),
		zap.String("address_id", addr.ID.String()),
	)

	const q = `
		INSERT INTO addresses (
			id, user_id,
			street, number, complement, neighborhood,
			city, state, postal_code, is_default
		) VALUES (
			$1, $2,
			$3, $4, $5, $6,
			$7, $8, $9, $10
		)
	`

	_, err := r.db.ExecContext(
		ctx, q,
		addr.ID, addr.UserID,
		addr.Street, addr.Number, addr.Complement, addr.Neighborhood,
		addr.City, addr.State, addr.PostalCode, addr.IsDefault,
	)

	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return err
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	addr *Address,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Update"),
		zap.String("address_id", addr.ID.String()),
	)

	const q = `
		UPDATE addresses
		SET street = $1,
		    number = $2,
		    complement = $3,
		    neighborhood = $4,
		    city = $5,
		    state = $6,
		    postal_code = $7,
		    is_default = $8
		WHERE id = $9
		  AND user_id = $10
	`

	res, err := r.db.ExecContext(
		ctx, q,
		addr.Street, addr.Number, addr.Complement, addr.Neighborhood,
		addr.City, addr.State, addr.PostalCode, addr.IsDefault,
		addr.ID, addr.UserID,
	)
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// Delete removes the row; orders that pointed at it keep living with a
// null delivery address (FK ON DELETE SET NULL).
func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", id.String()),
	)
	log.Debug("start deleting address")

	_, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	return err
}

func (r *repository) ClearDefault(
	ctx context.Context,
	userID uint,
) error {

	const q = `
		UPDATE addresses
		SET is_default = false
		WHERE user_id = $1
		  AND is_default = true
	`

	_, err := r.db.ExecContext(ctx, q, userID)
	return err
}

func (r *repository) SetDefault(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) error {

	const q = `
		UPDATE addresses
		SET is_default = (id = $2)
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, q, userID, addressID)
	return err
}
