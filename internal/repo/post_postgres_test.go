package repo_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/blog-platform/internal/models"
	"github.com/rogerio-castellano/blog-platform/internal/repo"
)

func TestPostgresPostRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO posts (title, content, author_id) VALUES ($1, $2, $3) RETURNING id`)).
		WithArgs("Hello", "First post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	created, err := r.Create(context.Background(), models.Post{Title: "Hello", Content: "First post", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPostRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresPostRepository(db)

	t.Run("existing post", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id"}).
			AddRow(3, "Hello", "Body", 7)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, author_id FROM posts WHERE id = $1`)).
			WithArgs(3).
			WillReturnRows(rows)

		p, err := r.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, models.Post{ID: 3, Title: "Hello", Content: "Body", AuthorID: 7}, p)
	})

	t.Run("missing post", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, author_id FROM posts WHERE id = $1`)).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id"}))

		_, err := r.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, repo.ErrPostNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

// Update and Delete must condition on both id and author_id and collapse
// "does not exist" and "owned by someone else" into the same error.
func TestPostgresPostRepositoryUpdateOwnershipScoped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresPostRepository(db)
	query := regexp.QuoteMeta(`UPDATE posts SET title = $1, content = $2 WHERE id = $3 AND author_id = $4`)

	t.Run("owner updates own post", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("New", "Edited", 5, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.Update(context.Background(), 5, 1, "New", "Edited")
		assert.NoError(t, err)
	})

	t.Run("wrong author matches no rows", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("New", "Edited", 5, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := r.Update(context.Background(), 5, 2, "New", "Edited")
		assert.ErrorIs(t, err, repo.ErrPostNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPostRepositoryDeleteOwnershipScoped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresPostRepository(db)
	query := regexp.QuoteMeta(`DELETE FROM posts WHERE id = $1 AND author_id = $2`)

	t.Run("owner deletes own post", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(5, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.Delete(context.Background(), 5, 1))
	})

	t.Run("absent post and foreign post are indistinguishable", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(99, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(query).
			WithArgs(5, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		errAbsent := r.Delete(context.Background(), 99, 1)
		errForeign := r.Delete(context.Background(), 5, 2)
		assert.ErrorIs(t, errAbsent, repo.ErrPostNotFound)
		assert.ErrorIs(t, errForeign, repo.ErrPostNotFound)
		assert.Equal(t, errAbsent, errForeign)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPostRepositoryGetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewPostgresPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id"}).
		AddRow(1, "First", "a", 1).
		AddRow(2, "Second", "b", 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, author_id FROM posts ORDER BY id`)).
		WillReturnRows(rows)

	posts, err := r.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, 2, posts[1].AuthorID)

	require.NoError(t, mock.ExpectationsWereMet())
}
