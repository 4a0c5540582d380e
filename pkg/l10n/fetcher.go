package l10n

import "context"

// Fetcher loads the raw text of a resource for a language. resID may contain
// a "{locale}" placeholder to be replaced with lang.Code. A resource that does
// not exist should be reported with an error wrapping ErrNotFound.
//
// Fetch is called at most once per resource, language code and source tier
// while the resource stays cached. The context passed to Fetch is never
// cancelled by the engine; implementations enforce their own timeouts.
type Fetcher interface {
	Fetch(ctx context.Context, resID string, lang Language) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, resID string, lang Language) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, resID string, lang Language) (string, error) {
	return f(ctx, resID, lang)
}
