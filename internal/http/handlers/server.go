package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/blog-platform/internal/auth"
	"github.com/rogerio-castellano/blog-platform/internal/repo"
)

// LoginGuard throttles repeated failed logins. A nil guard disables the
// lockout entirely.
type LoginGuard interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// Server bundles the dependencies the handlers need. Everything is passed in
// explicitly so tests can substitute storage backends, secrets and clocks.
type Server struct {
	users  repo.UserRepository
	posts  repo.PostRepository
	tokens *auth.TokenService
	hasher auth.Hasher
	guard  LoginGuard
	log    *logrus.Logger
}

func New(users repo.UserRepository, posts repo.PostRepository, tokens *auth.TokenService, hasher auth.Hasher, guard LoginGuard, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		users:  users,
		posts:  posts,
		tokens: tokens,
		hasher: hasher,
		guard:  guard,
		log:    log,
	}
}
