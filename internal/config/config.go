package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the server
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// Storage backend: "memory" or "redis"
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// Generative provider; an empty key disables AI and forces the
	// curated fallback pool
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`
	ModelName     string `env:"AI_MODEL_NAME" envDefault:"gemini-flash-latest"`

	AdminSecret string `env:"ADMIN_SECRET" envDefault:"my_super_secret"`

	// SelfURL enables the keepalive self-ping when set
	SelfURL string `env:"SELF_URL"`

	// Asset directories: watermarked output first, raw assets as fallback
	ImageDir string `env:"IMAGE_DIR" envDefault:"processed_images"`
	AssetDir string `env:"ASSET_DIR" envDefault:"assets"`

	// Frontend bundle directory
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
