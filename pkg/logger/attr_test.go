package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestLang(t *testing.T) {
	assert.Equal(t, "fr", logger.Lang("fr", "").Value.String())
	assert.Equal(t, "fr/extra", logger.Lang("fr", "extra").Value.String())
	assert.Equal(t, "lang", logger.Lang("fr", "app").Key)
}

func TestEntityID(t *testing.T) {
	attr := logger.EntityID("a", "b")
	require.Equal(t, "entity_id", attr.Key)
	assert.Equal(t, "a,b", attr.Value.String())

	assert.True(t, logger.EntityID().Equal(slog.Attr{}))
}

func TestContextID(t *testing.T) {
	attr := logger.ContextID("ctx-1")
	require.Equal(t, "context_id", attr.Key)
	assert.Equal(t, "ctx-1", attr.Value.Any())

	assert.True(t, logger.ContextID(nil).Equal(slog.Attr{}))
}

func TestResourceAttrs(t *testing.T) {
	assert.Equal(t, "resource_id", logger.ResourceID("app.properties").Key)
	assert.Equal(t, "error_kind", logger.ErrorKind("fetcherror").Key)
	assert.Equal(t, int64(3), logger.Count(3).Value.Int64())
}
