package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Environment names understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Format is the record encoding of a logger.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*settings)

type settings struct {
	level      slog.Level
	format     Format
	output     io.Writer
	handler    *slog.HandlerOptions
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// New builds a logger writing JSON at info level to stdout unless options say
// otherwise. Records logged with a context carry the attributes of every
// registered extractor.
func New(opts ...Option) *slog.Logger {
	s := &settings{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}

	hopts := s.handler
	if hopts == nil {
		hopts = &slog.HandlerOptions{Level: s.level}
	}

	var h slog.Handler = slog.NewJSONHandler(s.output, hopts)
	if s.format == FormatText {
		h = slog.NewTextHandler(s.output, hopts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(NewContextHandler(h, s.extractors...))
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat selects the encoding. It panics on anything but FormatJSON and
// FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(s *settings) { s.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithHandlerOptions replaces the handler options; their level takes
// precedence over WithLevel.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(s *settings) {
		if opts != nil {
			s.handler = opts
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors run for every record.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) {
		for _, ex := range extractors {
			if ex != nil {
				s.extractors = append(s.extractors, ex)
			}
		}
	}
}

// WithContextValue logs the value stored in the context under key as name,
// e.g. the run id of the CLI.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*settings) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(key); v != nil {
			return slog.Any(name, v), true
		}
		return slog.Attr{}, false
	})
}

// WithDevelopment logs text at debug level, tagged with service and env.
func WithDevelopment(service string) Option {
	return preset(service, EnvDevelopment, slog.LevelDebug, FormatText)
}

// WithProduction logs JSON at info level, tagged with service and env.
func WithProduction(service string) Option {
	return preset(service, EnvProduction, slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks WithProduction for production and staging names and
// WithDevelopment for anything else.
func WithEnvironment(env, service string) Option {
	switch env {
	case EnvProduction, "prod", "staging", "stage":
		return WithProduction(service)
	default:
		return WithDevelopment(service)
	}
}

// preset is a no-op without a service name.
func preset(service, env string, level slog.Level, format Format) Option {
	return func(s *settings) {
		if service == "" {
			return
		}
		s.level = level
		s.format = format
		s.attrs = append(s.attrs, slog.String("service", service), slog.String("env", env))
	}
}
