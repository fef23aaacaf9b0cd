package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"loja-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetList(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Create(ctx context.Context, input NewProductInput, slug string) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.name, p.slug, p.description, p.price,
	p.category_id, p.stock, p.available, p.image_url`

func (r *repository) GetList(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetList"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := int32(20)
	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}

	offset := (finalPage - 1) * finalLimit

	log = log.With(
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
		zap.Int32("offset", offset),
	)

	// ---------- where ----------
	where := []string{"1=1"}
	args := []any{}

	if opts.OnlyAvailable {
		where = append(where, "p.available = true")
	}

	if opts.CategorySlug != nil && *opts.CategorySlug != "" {
		where = append(where, fmt.Sprintf("c.slug = $%d", len(args)+1))
		args = append(args, *opts.CategorySlug)
	}

	if opts.Search != nil && *opts.Search != "" {
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*opts.Search+"%")
	}

	query := `
	SELECT` + productColumns + `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY p.name ASC
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := make([]*Product, 0, finalLimit)

	for rows.Next() {
		var p Product
		if err := scanProduct(rows.Scan, &p); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, &p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func scanProduct(scan func(dest ...any) error, p *Product) error {
	return scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.CategoryID, &p.Stock, &p.Available, &p.ImageURL,
	)
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	query := `
	SELECT` + productColumns + `
	FROM products p
	WHERE p.id = $1
	`

	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan, &p)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	query := `
	SELECT` + productColumns + `
	FROM products p
	WHERE p.slug = $1
	`

	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, query, slug).Scan, &p)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput, slug string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("slug", slug),
	)

	query := `
	INSERT INTO products (
		name, slug, description, price,
		category_id, stock, available, image_url
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING
		id, name, slug, description, price,
		category_id, stock, available, image_url
	`

	var p Product
	err := scanProduct(r.db.QueryRowContext(
		ctx, query,
		input.Name, slug, input.Description, input.Price,
		input.CategoryID, input.Stock, input.Available, input.ImageURL,
	).Scan, &p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			log.Warn("duplicate product slug")
			return nil, ErrSlugTaken
		}
		log.Error("insert failed", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return &p, nil
}

// Delete removes a product. Postgres blocks the delete while order items
// still reference it (FK RESTRICT), which surfaces as ErrProductReferenced.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgForeignKeyViolation {
			return ErrProductReferenced
		}
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
