package repo

import (
	"context"

	"github.com/rogerio-castellano/blog-platform/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, p models.Post) (models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (models.Post, error)

	// Update and Delete match a row on both id and author id. When nothing
	// matches they return ErrPostNotFound whether the post is absent or owned
	// by a different author.
	Update(ctx context.Context, id, authorID int, title, content string) error
	Delete(ctx context.Context, id, authorID int) error
}
