package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/l20n/pkg/logger"
)

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env   string
		debug bool
		json  bool
		label string
	}{
		{env: "development", debug: true, label: logger.EnvDevelopment},
		{env: "", debug: true, label: logger.EnvDevelopment},
		{env: "test", debug: true, label: logger.EnvDevelopment},
		{env: "production", json: true, label: logger.EnvProduction},
		{env: "prod", json: true, label: logger.EnvProduction},
		{env: "staging", json: true, label: logger.EnvProduction},
		{env: "stage", json: true, label: logger.EnvProduction},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(tt.env, "l20n"),
				logger.WithOutput(buf),
			)

			log.Debug("resource loaded", logger.ResourceID("{locale}/app.l20n"))
			if !tt.debug {
				assert.Zero(t, buf.Len(), "debug records are dropped")
				log.Info("languages negotiated")
			}

			if tt.json {
				entry := decode(t, buf)
				assert.Equal(t, "l20n", entry["service"])
				assert.Equal(t, tt.label, entry["env"])
				return
			}
			out := buf.String()
			assert.Contains(t, out, "level=DEBUG")
			assert.Contains(t, out, "service=l20n")
			assert.Contains(t, out, "env="+tt.label)
		})
	}
}

func TestPresetsIgnoreEmptyService(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithDevelopment(""))
	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "the default level stays in place")

	log.Info("shown")
	assert.NotContains(t, decode(t, buf), "service")
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
	log.Error("dropped")
}
