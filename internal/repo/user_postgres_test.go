package repo_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/blog-platform/internal/models"
	"github.com/rogerio-castellano/blog-platform/internal/repo"
)

func TestPostgresUserRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresUserRepository(db)
	query := regexp.QuoteMeta(`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id`)

	t.Run("assigns id", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("alice", "alice@example.com", "digest").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		u, err := r.Create(context.Background(), models.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "digest",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("duplicate email maps to ErrDuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("alice2", "alice@example.com", "digest").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := r.Create(context.Background(), models.User{
			Username:     "alice2",
			Email:        "alice@example.com",
			PasswordHash: "digest",
		})
		assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepositoryGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresUserRepository(db)
	query := regexp.QuoteMeta(`SELECT id, username, email, password FROM users WHERE email = $1`)

	t.Run("existing user", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "email", "password"}).
			AddRow(4, "bob", "bob@example.com", "digest")
		mock.ExpectQuery(query).WithArgs("bob@example.com").WillReturnRows(rows)

		u, err := r.GetByEmail(context.Background(), "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, 4, u.ID)
		assert.Equal(t, "digest", u.PasswordHash)
	})

	t.Run("unknown email", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}))

		_, err := r.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, repo.ErrUserNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
