package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() { db.Close() }
}

var userCols = []string{"id", "email", "name", "password", "role", "created_at"}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("ana@example.com", "Ana", "hashed", "USER").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "ana@example.com", "Ana", "hashed", "USER", time.Now()))

		u, err := repo.Create(ctx, "ana@example.com", "Ana", "hashed", "USER")

		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, RoleUser, u.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, "ana@example.com", "Ana", "hashed", "USER")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "ana@example.com", "Ana", "hashed", "USER", time.Now()))

		u, err := repo.FindByEmail(ctx, "ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userCols))

		_, err := repo.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password")).
			WithArgs(uint(1), "new-hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePassword(ctx, 1, "new-hash")
		require.NoError(t, err)
	})

	t.Run("User missing", func(t *testing.T) {
		repo, mock, closeDB := newMockRepo(t)
		defer closeDB()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password")).
			WithArgs(uint(99), "new-hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePassword(ctx, 99, "new-hash")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
