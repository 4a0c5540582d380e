package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"L20N_REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"L20N_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval  time.Duration `env:"L20N_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"L20N_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout is the timeout for connecting to the database.
	KeyPrefix      string        `env:"L20N_REDIS_KEY_PREFIX" envDefault:"l20n:"`             // KeyPrefix namespaces every key written by Storage.
}
