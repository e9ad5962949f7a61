package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// AdminPasscode is the shared moderation passcode. AdminPasscodeHash,
	// when set, takes precedence and must be a bcrypt hash.
	AdminPasscode     string `env:"ADMIN_PASSCODE, default=4321"`
	AdminPasscodeHash string `env:"ADMIN_PASSCODE_HASH"`

	// StoreDriver selects the KV backend: redis or mongo.
	StoreDriver string `env:"STORE_DRIVER, default=redis"`

	Seed  SeedConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// SeedConfig locates the fixture dataset and pins its schema version.
type SeedConfig struct {
	FixturesBaseURL string `env:"FIXTURES_BASE_URL, default=https://fixtures.consultbridge.dev"`
	Version         string `env:"SEED_VERSION,      default=2024-03-25"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=consultbridge"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.StoreDriver != "redis" && cfg.StoreDriver != "mongo" {
		return nil, fmt.Errorf("load config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
