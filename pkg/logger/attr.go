package logger

import (
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Lang records a language code under the key "lang".
// The source tier is appended after a slash when given, e.g. "fr/extra".
func Lang(code, src string) slog.Attr {
	if src == "" {
		return slog.String("lang", code)
	}
	return slog.String("lang", code+"/"+src)
}

// ResourceID records a resource identifier under the key "resource_id".
func ResourceID(id string) slog.Attr {
	return slog.String("resource_id", id)
}

// EntityID records one or more entity identifiers under the key "entity_id".
// If no id is given, it returns an empty Attr.
func EntityID(ids ...string) slog.Attr {
	if len(ids) == 0 {
		return slog.Attr{}
	}
	return slog.String("entity_id", strings.Join(ids, ","))
}

// ErrorKind records the error kind under the key "error_kind".
func ErrorKind(kind string) slog.Attr {
	return slog.String("error_kind", kind)
}

// ContextID records a localization context identifier under the key "context_id".
// If id is nil, it returns an empty Attr.
func ContextID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("context_id", id)
}

// Count records a counter under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
