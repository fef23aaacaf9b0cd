package product

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "price",
		"category_id", "stock", "available", "image_url",
	})
}

func TestRepository_GetBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRows().
			AddRow(1, "Cafe Premium", "cafe-premium", "Torra escura", "19.90", 2, 10, true, nil)

		mock.ExpectQuery("SELECT(.|\n)+FROM products p(.|\n)+WHERE p.slug").
			WithArgs("cafe-premium").
			WillReturnRows(rows)

		p, err := repo.GetBySlug(context.Background(), "cafe-premium")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("19.90")))
		assert.Equal(t, 10, p.Stock)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)+FROM products p(.|\n)+WHERE p.slug").
			WithArgs("nope").
			WillReturnRows(productRows())

		_, err := repo.GetBySlug(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_GetList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success with category filter", func(t *testing.T) {
		slug := "bebidas"
		rows := productRows().
			AddRow(1, "Cafe Premium", "cafe-premium", "", "19.90", 2, 10, true, nil).
			AddRow(2, "Cha Verde", "cha-verde", "", "5.00", 2, 3, true, nil)

		mock.ExpectQuery("SELECT(.|\n)+JOIN categories c").
			WithArgs(slug, int32(20), int32(0)).
			WillReturnRows(rows)

		res, err := repo.GetList(context.Background(), ListOptions{
			CategorySlug:  &slug,
			OnlyAvailable: true,
		})
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)+JOIN categories c").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetList(context.Background(), ListOptions{})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("Blocked while referenced by order items", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products").
			WithArgs(1).
			WillReturnError(&pq.Error{Code: "23503"})

		assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrProductReferenced)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrProductNotFound)
	})
}
