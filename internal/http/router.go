package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/blog-platform/internal/auth"
	"github.com/rogerio-castellano/blog-platform/internal/http/handlers"
	rl "github.com/rogerio-castellano/blog-platform/internal/http/rate_limiter"
)

// NewRouter wires the full route table. Mutating post routes sit behind the
// bearer-token gate; the auth endpoints sit behind the per-IP rate limiter.
func NewRouter(h *handlers.Server, tokens *auth.TokenService, limiter *rl.Limiter, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Welcome to the Blogging Platform API"))
	})

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(RateLimit(limiter))
		}
		r.Post("/register", h.RegisterHandler)
		r.Post("/login", h.LoginHandler)
	})

	r.Get("/posts", h.GetPostsHandler)
	r.Get("/posts/{id}", h.GetPostByIDHandler)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(tokens))
		r.Post("/posts", h.CreatePostHandler)
		r.Put("/posts/{id}", h.UpdatePostHandler)
		r.Delete("/posts/{id}", h.DeletePostHandler)
	})

	return r
}
