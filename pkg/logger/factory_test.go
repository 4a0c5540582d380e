package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/logger"
)

func TestNewFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []logger.Option
		json bool
	}{
		{name: "json by default", json: true},
		{name: "text", opts: []logger.Option{logger.WithTextFormatter()}},
		{name: "text then json", opts: []logger.Option{logger.WithTextFormatter(), logger.WithJSONFormatter()}, json: true},
		{name: "explicit format", opts: []logger.Option{logger.WithFormat(logger.FormatText)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(append([]logger.Option{logger.WithOutput(buf)}, tt.opts...)...)

			log.Warn("resource fetch failed", logger.ResourceID("{locale}/app.properties"), logger.Lang("fr", "app"))

			if !tt.json {
				out := buf.String()
				assert.Contains(t, out, "level=WARN")
				assert.Contains(t, out, `msg="resource fetch failed"`)
				assert.Contains(t, out, "resource_id={locale}/app.properties")
				return
			}
			entry := decode(t, buf)
			assert.Equal(t, "WARN", entry["level"])
			assert.Equal(t, "{locale}/app.properties", entry["resource_id"])
			assert.Equal(t, "fr/app", entry["lang"])
		})
	}
}

func TestNewLevels(t *testing.T) {
	t.Parallel()

	t.Run("with level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelError))

		log.Warn("localization error", logger.ErrorKind("notfounderror"))
		assert.Zero(t, buf.Len())

		log.Error("l20n failed", logger.Error(errors.New("no keys")))
		assert.Equal(t, "no keys", decode(t, buf)["error"])
	})

	t.Run("handler options win over level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelError),
			logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelDebug}),
		)

		log.Debug("context created", logger.Count(2))
		assert.EqualValues(t, 2, decode(t, buf)["count"])
	})
}

func TestNewStaticAttrs(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithAttr(logger.Component("negotiate")),
		logger.WithAttr(),
	)

	log.Info("languages negotiated")
	assert.Equal(t, "negotiate", decode(t, buf)["component"])
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf), logger.WithTextFormatter()))
	t.Cleanup(func() { slog.SetDefault(logger.Discard()) })

	slog.Info("resolved")
	assert.True(t, strings.Contains(buf.String(), "msg=resolved"))
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
