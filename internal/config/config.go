package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. All values can come from environment
// variables prefixed with BLOG_ (e.g. BLOG_DATABASE_URL) or from an optional
// config.yaml in the working directory.
type Config struct {
	Addr        string        `mapstructure:"addr"`
	DatabaseURL string        `mapstructure:"database_url"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	BcryptCost  int           `mapstructure:"bcrypt_cost"`

	// Per-IP rate limiting for the auth endpoints.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`

	// Failed-login lockout. Only active when RedisAddr is set.
	LockoutStrikes int           `mapstructure:"lockout_strikes"`
	LockoutWindow  time.Duration `mapstructure:"lockout_window"`
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("rate_limit_rps", 1.0)
	v.SetDefault("rate_limit_burst", 3)
	v.SetDefault("lockout_strikes", 5)
	v.SetDefault("lockout_window", 15*time.Minute)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("blog")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database_url is required (BLOG_DATABASE_URL)")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt_secret is required (BLOG_JWT_SECRET)")
	}

	return cfg, nil
}
