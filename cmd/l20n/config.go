package main

import (
	"time"

	"github.com/dmitrymomot/l20n/pkg/fetch"
	"github.com/dmitrymomot/l20n/pkg/redis"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env          string        `env:"L20N_ENV" envDefault:"development"`
	Manifest     string        `env:"L20N_MANIFEST" envDefault:"locales/manifest.yaml"`
	Extra        string        `env:"L20N_EXTRA_LANGUAGES"` // YAML file listing installed language packs
	ResourcesDir string        `env:"L20N_RESOURCES_DIR" envDefault:"locales"`
	Resources    []string      `env:"L20N_RESOURCES" envSeparator:","`
	BaseURL      string        `env:"L20N_BASE_URL"` // fetch bundled resources over HTTP instead of ResourcesDir
	FetchTimeout time.Duration `env:"L20N_FETCH_TIMEOUT" envDefault:"10s"`

	S3Enabled bool `env:"L20N_S3_ENABLED"` // serve language packs from S3
	S3        fetch.S3Config

	RedisEnabled bool          `env:"L20N_REDIS_ENABLED"` // share language packs through Redis
	RedisTTL     time.Duration `env:"L20N_REDIS_TTL" envDefault:"1h"`
	Redis        redis.Config
}
