package l10n

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/l20n/pkg/ast"
	"github.com/dmitrymomot/l20n/pkg/async"
	"github.com/dmitrymomot/l20n/pkg/logger"
	"github.com/dmitrymomot/l20n/pkg/resolver"
)

// Key identifies an entity to resolve together with its runtime arguments.
type Key struct {
	ID   string
	Args resolver.Args
}

// Keys builds argument-less keys.
func Keys(ids ...string) []Key {
	keys := make([]Key, len(ids))
	for i, id := range ids {
		keys[i] = Key{ID: id}
	}
	return keys
}

// Entity is a resolved entity. Attrs is nil when the entity has no attributes.
type Entity struct {
	Value string
	Attrs map[string]string
}

// Context resolves keys against an ordered set of resources.
// It is safe for concurrent use.
type Context struct {
	env       *Env
	id        uuid.UUID
	resIDs    []string
	destroyed atomic.Bool
}

// ID returns the unique identifier of the context.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// ResourceIDs returns the resource ids of the context in lookup order.
func (c *Context) ResourceIDs() []string {
	return append([]string(nil), c.resIDs...)
}

// ResolveValues resolves the value of each key, trying langs in order.
// A key found in no language resolves to its id.
func (c *Context) ResolveValues(ctx context.Context, langs []Language, keys ...Key) ([]string, error) {
	return resolveKeys(ctx, c, langs, keys,
		func(l *lookup, key Key, e *ast.Entity) string {
			return l.format(ctx, key.ID, key.Args, e)
		},
		func(id string) string { return id },
	)
}

// ResolveEntities resolves the value and attributes of each key, trying langs
// in order. A key found in no language resolves to its id with no attributes.
func (c *Context) ResolveEntities(ctx context.Context, langs []Language, keys ...Key) ([]Entity, error) {
	return resolveKeys(ctx, c, langs, keys,
		func(l *lookup, key Key, e *ast.Entity) Entity {
			out := Entity{Value: l.format(ctx, key.ID, key.Args, e)}
			if len(e.Attrs) > 0 {
				out.Attrs = make(map[string]string, len(e.Attrs))
				for _, attr := range e.Attrs {
					out.Attrs[attr.ID] = l.format(ctx, key.ID+"::"+attr.ID, key.Args, attr)
				}
			}
			return out
		},
		func(id string) Entity { return Entity{Value: id} },
	)
}

func resolveKeys[T any](
	ctx context.Context,
	c *Context,
	langs []Language,
	keys []Key,
	format func(l *lookup, key Key, e *ast.Entity) T,
	missing func(id string) T,
) ([]T, error) {
	if c.destroyed.Load() {
		return nil, ErrContextDestroyed
	}

	results := make([]T, len(keys))
	done := make([]bool, len(keys))

	for _, lang := range langs {
		l, err := c.fetch(ctx, lang)
		if err != nil {
			return nil, err
		}

		pending := 0
		for i, key := range keys {
			if done[i] {
				continue
			}
			e := l.entity(key.ID)
			if e == nil {
				c.env.report(ctx, &Error{Kind: KindNotFound, IDs: []string{key.ID}, Lang: lang, Err: ErrNotFound})
				pending++
				continue
			}
			results[i] = format(l, key, e)
			done[i] = true
		}

		if pending == 0 {
			return results, nil
		}
	}

	var ids []string
	seen := make(map[string]struct{})
	for i, key := range keys {
		if done[i] {
			continue
		}
		results[i] = missing(key.ID)
		if _, ok := seen[key.ID]; !ok {
			seen[key.ID] = struct{}{}
			ids = append(ids, key.ID)
		}
	}
	if len(ids) > 0 {
		c.env.report(ctx, &Error{Kind: KindNotFound, IDs: ids, Err: ErrNotFoundInAnyLanguage})
	}

	return results, nil
}

// fetch waits until every resource of the context is loaded for lang.
// Resources that failed to load are skipped by the returned lookup.
func (c *Context) fetch(ctx context.Context, lang Language) (*lookup, error) {
	futures := make([]*async.Future[*ast.Resource], len(c.resIDs))
	for i, id := range c.resIDs {
		futures[i] = c.env.resource(ctx, id, lang)
	}

	resources, errs, _ := async.WaitAll(ctx, futures...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loaded := resources[:0]
	for i, res := range resources {
		if errs[i] == nil && res != nil {
			loaded = append(loaded, res)
		}
	}

	c.env.logger.DebugContext(ctx, "resources ready",
		logger.ContextID(c.id),
		logger.Lang(lang.Code, string(lang.Src)),
		logger.Count(len(loaded)),
	)
	return &lookup{c: c, lang: lang, resources: loaded}, nil
}

// lookup resolves entities of one language across the context's resources.
type lookup struct {
	c         *Context
	lang      Language
	resources []*ast.Resource
}

func (l *lookup) entity(id string) *ast.Entity {
	for _, res := range l.resources {
		if e, ok := res.Get(id); ok {
			return e
		}
	}
	return nil
}

// format resolves e, reporting failures under id. The entity falls back to
// id itself when its value cannot be resolved.
func (l *lookup) format(ctx context.Context, id string, args resolver.Args, e *ast.Entity) string {
	r := &resolver.Resolver{
		Lang:   l.lang.Code,
		Lookup: l.entity,
		Report: func(err error) {
			l.c.env.report(ctx, &Error{Kind: KindResolve, IDs: []string{id}, Lang: l.lang, Err: err})
		},
	}

	out, err := r.Resolve(args, e)
	if err != nil {
		l.c.env.report(ctx, &Error{Kind: KindResolve, IDs: []string{id}, Lang: l.lang, Err: err})
		return id
	}
	return out
}
