package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Email   EmailConfig
	Storage StorageConfig
	License LicenseConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=studio_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	From         string `env:"EMAIL_FROM,  default=studio@example.com"`
	AdminEmail   string `env:"ADMIN_EMAIL, default=hello@example.com"`
}

type StorageConfig struct {
	BaseURL    string `env:"STORAGE_BASE_URL,    default=http://localhost:9000"`
	SigningKey string `env:"STORAGE_SIGNING_KEY"`
}

type LicenseConfig struct {
	// MaxDomains is the advisory per-license domain cap surfaced in the
	// license detail view. Registration past the cap is not rejected.
	MaxDomains int `env:"LICENSE_MAX_DOMAINS, default=3"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
