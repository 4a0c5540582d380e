// Package logger builds slog loggers for the engine and its CLI.
//
// New returns a *slog.Logger configured by options: output format (JSON or
// text), level, destination, static attributes and context extractors. The
// handler it builds is wrapped in a ContextHandler, which adds the attributes
// returned by each extractor to every record logged with a context, such as
// the run id of a CLI invocation.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("L20N_ENV"), "l20n"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "resource fetch failed",
//	    logger.ResourceID("{locale}/app.properties"),
//	    logger.Lang("fr", "app"),
//	    logger.Error(err),
//	)
//
// WithDevelopment logs text at debug level; WithProduction logs JSON at info
// level; WithEnvironment picks one by environment name. Library types default
// to Discard so they stay silent until a logger is injected.
//
// The attribute helpers in attr.go keep key names consistent across packages:
// lang, resource_id, entity_id, error_kind, context_id, count, component and
// error. Error, EntityID and ContextID return an empty attribute for a nil or
// empty input, which slog drops:
//
//	log.Info("resolved", logger.Error(err))
package logger
