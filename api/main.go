package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/blog-platform/internal/auth"
	"github.com/rogerio-castellano/blog-platform/internal/config"
	"github.com/rogerio-castellano/blog-platform/internal/db"
	httpapp "github.com/rogerio-castellano/blog-platform/internal/http"
	"github.com/rogerio-castellano/blog-platform/internal/http/handlers"
	rl "github.com/rogerio-castellano/blog-platform/internal/http/rate_limiter"
	"github.com/rogerio-castellano/blog-platform/internal/loginguard"
	"github.com/rogerio-castellano/blog-platform/internal/repo"
)

// @title Blogging Platform API
// @version 1.0
// @description REST API for user accounts and author-scoped blog posts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("could not connect to database")
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.WithError(err).Fatal("could not migrate database")
	}

	var guard handlers.LoginGuard
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.WithError(err).Fatal("could not connect to redis")
		}
		defer rdb.Close()
		guard = loginguard.New(rdb, cfg.LockoutStrikes, cfg.LockoutWindow)
	} else {
		log.Info("no redis address configured, login lockout disabled")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartCleanupLoop()

	h := handlers.New(
		repo.NewPostgresUserRepository(database),
		repo.NewPostgresPostRepository(database),
		tokens,
		hasher,
		guard,
		log,
	)

	r := httpapp.NewRouter(h, tokens, limiter, log)
	log.WithField("addr", cfg.Addr).Info("server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
