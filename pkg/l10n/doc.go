// Package l10n ties parsing, caching and resolution together.
//
// An Env is created once per process. It owns the resource cache and the
// registry of contexts. A Context is a consumer view over an ordered list of
// resource ids; it resolves keys against a fallback chain of languages:
//
//	env, err := l10n.NewEnv("en-US", fetch.NewFS(os.DirFS("locales")),
//		l10n.WithLogger(log),
//		l10n.WithErrorHandler(func(kind l10n.ErrorKind, err error) {
//			metrics.Inc(string(kind))
//		}),
//	)
//	if err != nil {
//		return err
//	}
//
//	lctx := env.CreateContext("{locale}/app.properties", "{locale}/brand.l20n")
//	defer env.DestroyContext(lctx)
//
//	values, err := lctx.ResolveValues(ctx,
//		[]l10n.Language{{Code: "fr", Src: l10n.SourceApp}, {Code: "en-US", Src: l10n.SourceApp}},
//		l10n.Key{ID: "greeting", Args: resolver.Args{"user": "Ann"}},
//	)
//
// Resolution never fails because of content: parse, fetch, resolution and
// not-found errors are logged, passed to the registered error handlers and
// replaced with fallback strings. The returned error is reserved for
// cancellation and for use of a destroyed context.
//
// Each resource is fetched at most once per language and source tier. The
// outcome, including a failure, stays cached until the last context using the
// resource is destroyed.
package l10n
