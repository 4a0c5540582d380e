package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/l20n/pkg/l10n"
)

// LocalePlaceholder is replaced with the language code in resource ids.
const LocalePlaceholder = "{locale}"

// ExpandLocale replaces every "{locale}" in resID with code.
func ExpandLocale(resID, code string) string {
	return strings.ReplaceAll(resID, LocalePlaceholder, code)
}

// Router dispatches fetches to a fetcher per source tier.
type Router struct {
	fetchers map[l10n.Source]l10n.Fetcher
}

// NewRouter creates a router serving the app tier with app. Other tiers are
// added with Handle.
func NewRouter(app l10n.Fetcher) *Router {
	r := &Router{fetchers: make(map[l10n.Source]l10n.Fetcher)}
	if app != nil {
		r.fetchers[l10n.SourceApp] = app
	}
	return r
}

// Handle registers f for the src tier and returns the router.
func (r *Router) Handle(src l10n.Source, f l10n.Fetcher) *Router {
	r.fetchers[src] = f
	return r
}

func (r *Router) Fetch(ctx context.Context, resID string, lang l10n.Language) (string, error) {
	f, ok := r.fetchers[lang.Src]
	if !ok {
		return "", fmt.Errorf("%w: %w %q", l10n.ErrNotFound, ErrNoFetcher, lang.Src)
	}
	return f.Fetch(ctx, resID, lang)
}
