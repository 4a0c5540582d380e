package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of the first parse of one config type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	entries sync.Map // reflect.Type -> *entry

	defaultEnvLoaded sync.Once
)

// Load parses the process environment into v using its `env` struct tags.
//
// The first call for a type also loads the .env file of the working
// directory, if there is one. Each type is parsed once: later calls, from any
// goroutine, get a copy of the first result, including its error.
//
// Example:
//
//	type EngineConfig struct {
//		DefaultLanguage string        `env:"L20N_DEFAULT_LANGUAGE" envDefault:"en"`
//		ResourcesDir    string        `env:"L20N_RESOURCES_DIR,required"`
//		FetchTimeout    time.Duration `env:"L20N_FETCH_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	raw, _ := entries.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := raw.(*entry)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
//
//	var cfg EngineConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment, later files overriding earlier ones and the existing
// environment. Without arguments the .env file of the working directory is
// loaded.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}
