package repo

import (
	"context"

	"github.com/rogerio-castellano/blog-platform/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}
