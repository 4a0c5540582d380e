package l10n

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/l20n/pkg/ast"
	"github.com/dmitrymomot/l20n/pkg/async"
	"github.com/dmitrymomot/l20n/pkg/cache"
	"github.com/dmitrymomot/l20n/pkg/logger"
	"github.com/dmitrymomot/l20n/pkg/parser"
	"github.com/dmitrymomot/l20n/pkg/pseudo"
)

type resourceFuture = async.Future[*ast.Resource]

// Env owns the resource cache and the context registry.
type Env struct {
	defaultLang string
	fetcher     Fetcher
	logger      *slog.Logger
	handlers    []ErrorHandler

	resources *cache.Store[string, *resourceFuture]

	mu       sync.Mutex
	contexts map[*Context]struct{}
}

// NewEnv creates an environment. defaultLang is the language pseudo-locales
// are generated from.
func NewEnv(defaultLang string, fetcher Fetcher, opts ...Option) (*Env, error) {
	if defaultLang == "" {
		return nil, ErrEmptyDefaultLanguage
	}
	if fetcher == nil {
		return nil, ErrNilFetcher
	}

	e := &Env{
		defaultLang: defaultLang,
		fetcher:     fetcher,
		logger:      logger.Discard(),
		contexts:    make(map[*Context]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.resources = cache.New[string, *resourceFuture]()
	e.resources.SetEvictCallback(func(key string, _ *resourceFuture) {
		e.logger.Debug("resource evicted", logger.Component("l10n"), slog.String("key", key))
	})

	return e, nil
}

// DefaultLanguage returns the language pseudo-locales are generated from.
func (e *Env) DefaultLanguage() string {
	return e.defaultLang
}

// CreateContext registers a context over the given resource ids. Order is
// significant: when several resources define the same entity, the first one
// wins. Duplicate ids are dropped.
func (e *Env) CreateContext(resIDs ...string) *Context {
	seen := make(map[string]struct{}, len(resIDs))
	ids := make([]string, 0, len(resIDs))
	for _, id := range resIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	c := &Context{env: e, id: uuid.New(), resIDs: ids}

	e.mu.Lock()
	e.contexts[c] = struct{}{}
	e.mu.Unlock()

	e.logger.Debug("context created", logger.ContextID(c.id), logger.Count(len(ids)))
	return c
}

// DestroyContext unregisters c. Cached resources no other live context uses
// are evicted for every language and source tier. A fetch still in flight is
// left in the cache and its outcome is kept once it settles. Destroying a
// context twice is a no-op.
func (e *Env) DestroyContext(c *Context) {
	if c == nil || c.env != e {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.contexts[c]; !ok {
		return
	}
	delete(e.contexts, c)
	c.destroyed.Store(true)

	evicted := 0
	for _, id := range c.resIDs {
		if e.inUse(id) {
			continue
		}
		evicted += e.resources.RemoveFunc(func(key string, f *resourceFuture) bool {
			return strings.HasPrefix(key, id) && f.IsComplete()
		})
	}

	e.logger.Debug("context destroyed", logger.ContextID(c.id), logger.Count(evicted))
}

// inUse reports whether any live context references resID.
// Must be called with e.mu held.
func (e *Env) inUse(resID string) bool {
	for c := range e.contexts {
		for _, id := range c.resIDs {
			if id == resID {
				return true
			}
		}
	}
	return false
}

// CacheLen returns the number of cached resource entries, failed ones included.
func (e *Env) CacheLen() int {
	return e.resources.Len()
}

// DisplayName returns the display name of a pseudo-locale, or code itself for
// any other language.
func (e *Env) DisplayName(code string) string {
	if l, ok := pseudo.Get(code); ok {
		return l.Name()
	}
	return code
}

// TransformText applies the pseudo-locale transform of code to s. Text is
// returned unchanged for other languages.
func (e *Env) TransformText(code, s string) string {
	if l, ok := pseudo.Get(code); ok {
		return l.Transform(s)
	}
	return s
}

// resource returns the cached future for resID in lang, starting the fetch on
// first use. The fetch is detached from ctx so that a cancelled caller never
// leaves a cancelled outcome in the cache.
func (e *Env) resource(ctx context.Context, resID string, lang Language) *resourceFuture {
	f, _ := e.resources.GetOrPut(lang.cacheKey(resID), func() *resourceFuture {
		return async.Async(context.WithoutCancel(ctx), lang, func(ctx context.Context, lang Language) (*ast.Resource, error) {
			return e.load(ctx, resID, lang)
		})
	})
	return f
}

func (e *Env) load(ctx context.Context, resID string, lang Language) (*ast.Resource, error) {
	syntax, err := parser.SyntaxFor(resID)
	if err != nil {
		return nil, e.fail(ctx, &Error{Kind: KindConfig, Resource: resID, Lang: lang, Err: err})
	}

	target := lang
	var pl *pseudo.Locale
	if lang.Src == SourcePseudo {
		l, ok := pseudo.Get(lang.Code)
		if !ok {
			return nil, e.fail(ctx, &Error{
				Kind:     KindConfig,
				Resource: resID,
				Lang:     lang,
				Err:      fmt.Errorf("%w: %s", ErrUnknownPseudoLocale, lang.Code),
			})
		}
		pl = l
		target = AppLanguage(e.defaultLang)
	}

	src, err := e.fetcher.Fetch(ctx, resID, target)
	if err != nil {
		return nil, e.fail(ctx, &Error{Kind: KindFetch, Resource: resID, Lang: lang, Err: err})
	}

	res, err := parser.Parse(syntax, src, func(perr *parser.ParseError) {
		kind := KindParse
		if perr.Kind == parser.KindDuplicate {
			kind = KindDuplicate
		}
		e.report(ctx, &Error{Kind: kind, Resource: resID, Lang: lang, Err: perr})
	})
	if err != nil {
		return nil, e.fail(ctx, &Error{Kind: KindParse, Resource: resID, Lang: lang, Err: err})
	}

	if pl != nil {
		res = ast.MapResource(res, pl.Transform)
	}

	e.logger.DebugContext(ctx, "resource loaded",
		logger.ResourceID(resID),
		logger.Lang(lang.Code, string(lang.Src)),
		logger.Count(res.Len()),
	)
	return res, nil
}

func (e *Env) fail(ctx context.Context, err *Error) error {
	e.report(ctx, err)
	return err
}

// report logs err and forwards it to every error handler.
func (e *Env) report(ctx context.Context, err *Error) {
	attrs := []any{logger.ErrorKind(string(err.Kind)), logger.Error(err.Err)}
	if err.Lang.Code != "" {
		attrs = append(attrs, logger.Lang(err.Lang.Code, string(err.Lang.Src)))
	}
	if err.Resource != "" {
		attrs = append(attrs, logger.ResourceID(err.Resource))
	}
	if len(err.IDs) > 0 {
		attrs = append(attrs, logger.EntityID(err.IDs...))
	}
	e.logger.WarnContext(ctx, "localization error", attrs...)

	for _, h := range e.handlers {
		h(err.Kind, err)
	}
}
