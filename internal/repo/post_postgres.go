package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogerio-castellano/blog-platform/internal/models"
)

type PostgresPostRepository struct {
	db *sql.DB
}

func NewPostgresPostRepository(db *sql.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(ctx context.Context, p models.Post) (models.Post, error) {
	query := `INSERT INTO posts (title, content, author_id) VALUES ($1, $2, $3) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Title, p.Content, p.AuthorID).Scan(&p.ID)
	return p, err
}

func (r *PostgresPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT id, title, content, author_id FROM posts ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostgresPostRepository) GetByID(ctx context.Context, id int) (models.Post, error) {
	query := `SELECT id, title, content, author_id FROM posts WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Post
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	return p, err
}

func (r *PostgresPostRepository) Update(ctx context.Context, id, authorID int, title, content string) error {
	query := `UPDATE posts SET title = $1, content = $2 WHERE id = $3 AND author_id = $4`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, title, content, id, authorID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostgresPostRepository) Delete(ctx context.Context, id, authorID int) error {
	query := `DELETE FROM posts WHERE id = $1 AND author_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
