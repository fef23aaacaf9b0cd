package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(1, "Bebidas", "bebidas").
			AddRow(2, "Doces", "doces")

		mock.ExpectQuery("SELECT id, name, slug").
			WillReturnRows(rows)

		res, err := repo.GetCategories(context.Background())
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "bebidas", res[0].Slug)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetCategories(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_AddCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(1, "Bebidas", "bebidas")

		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Bebidas", "bebidas").
			WillReturnRows(rows)

		c, err := repo.AddCategory(context.Background(), "Bebidas", "bebidas")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), c.ID)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.AddCategory(context.Background(), "Bebidas", "bebidas")
		assert.ErrorIs(t, err, ErrNameTaken)
	})
}

func TestRepository_DeleteCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteCategory(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteCategory(context.Background(), 99)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
