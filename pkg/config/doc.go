// Package config loads configuration structs from the process environment.
//
// It combines `github.com/joho/godotenv`, which reads `.env` files into the
// environment, with `github.com/caarlos0/env/v11`, which parses the
// environment into a struct using field tags:
//
//	type Config struct {
//	    Manifest  string   `env:"L20N_MANIFEST" envDefault:"locales/manifest.yaml"`
//	    Resources []string `env:"L20N_RESOURCES" envSeparator:","`
//	}
//
//	func main() {
//	    config.MustLoadEnv("deploy/.env") // optional, overrides the environment
//
//	    var cfg Config
//	    config.MustLoad(&cfg)
//	}
//
// # Caching
//
// Each struct type is parsed once per process. The first Load for a type
// parses the environment; every later Load for the same type returns a copy
// of that result, or the same error. Concurrent first calls parse only once.
// Tests that change the environment therefore declare a config struct of
// their own instead of reusing one loaded elsewhere.
//
// The default `.env` of the working directory is read, if present, before
// the first parse. Files given to LoadEnv override variables already set.
//
// # Errors
//
//   - `ErrParsingConfig` – the environment does not satisfy the struct tags.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFile` – a file passed to `LoadEnv` cannot be read.
package config
