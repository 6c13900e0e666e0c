package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config is everything main needs, read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	BcryptCost  int
}

// Load reads the environment, filling in development defaults for
// anything unset except the JWT secret, which has no safe default.
func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL", "postgres://localhost:5432/jobboard?sslmode=disable"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  bcrypt.DefaultCost,
	}

	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		if cost, err := strconv.Atoi(raw); err == nil {
			cfg.BcryptCost = cost
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
