package l10n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/l10n"
	"github.com/dmitrymomot/l20n/pkg/resolver"
)

func TestResolveValues(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"fr/app.properties": "hello = Bonjour",
		"en/app.properties": "hello = Hello\ngreeting = Welcome, {{ user }}!",
	}

	t.Run("single language", func(t *testing.T) {
		t.Parallel()
		env, _, log := newEnv(t, files)
		lctx := env.CreateContext("{locale}/app.properties")

		values, err := lctx.ResolveValues(context.Background(), app("en"),
			l10n.Key{ID: "hello"},
			l10n.Key{ID: "greeting", Args: resolver.Args{"user": "Ann"}},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Hello", "Welcome, " + resolver.FSI + "Ann" + resolver.PDI + "!"}, values)
		assert.Empty(t, log.errs)
	})

	t.Run("falls back to the next language", func(t *testing.T) {
		t.Parallel()
		env, f, log := newEnv(t, files)
		lctx := env.CreateContext("{locale}/app.properties")

		values, err := lctx.ResolveValues(context.Background(), app("fr", "en"),
			l10n.Key{ID: "hello"},
			l10n.Key{ID: "greeting", Args: resolver.Args{"user": "Ann"}},
		)
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", values[0])
		assert.Equal(t, "Welcome, "+resolver.FSI+"Ann"+resolver.PDI+"!", values[1])

		notFound := log.byKind(l10n.KindNotFound)
		require.Len(t, notFound, 1)
		assert.Equal(t, "greeting", notFound[0].ID())
		assert.Equal(t, l10n.AppLanguage("fr"), notFound[0].Lang)
		assert.NotErrorIs(t, notFound[0], l10n.ErrNotFoundInAnyLanguage)
		assert.Equal(t, 1, f.count("en/app.properties"))
	})

	t.Run("skips languages when everything resolved", func(t *testing.T) {
		t.Parallel()
		env, f, _ := newEnv(t, files)
		lctx := env.CreateContext("{locale}/app.properties")

		_, err := lctx.ResolveValues(context.Background(), app("fr", "en"), l10n.Keys("hello")...)
		require.NoError(t, err)
		assert.Zero(t, f.count("en/app.properties"))
	})

	t.Run("missing in every language", func(t *testing.T) {
		t.Parallel()
		env, _, log := newEnv(t, files)
		lctx := env.CreateContext("{locale}/app.properties")

		values, err := lctx.ResolveValues(context.Background(), app("fr", "en"), l10n.Keys("nope", "hello", "nope", "gone")...)
		require.NoError(t, err)
		assert.Equal(t, []string{"nope", "Bonjour", "nope", "gone"}, values)

		notFound := log.byKind(l10n.KindNotFound)
		require.NotEmpty(t, notFound)
		last := notFound[len(notFound)-1]
		assert.ErrorIs(t, last, l10n.ErrNotFoundInAnyLanguage)
		assert.ErrorIs(t, last, l10n.ErrNotFound)
		assert.Equal(t, []string{"nope", "gone"}, last.IDs)

		aggregated := 0
		for _, e := range notFound {
			if len(e.IDs) > 1 || e.Lang.Code == "" {
				aggregated++
			}
		}
		assert.Equal(t, 1, aggregated)
	})

	t.Run("no languages", func(t *testing.T) {
		t.Parallel()
		env, _, log := newEnv(t, files)
		lctx := env.CreateContext("{locale}/app.properties")

		values, err := lctx.ResolveValues(context.Background(), nil, l10n.Keys("hello")...)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, values)
		require.Len(t, log.byKind(l10n.KindNotFound), 1)
	})

	t.Run("first resource wins", func(t *testing.T) {
		t.Parallel()
		env, _, _ := newEnv(t, map[string]string{
			"en/a.properties": "title = From A",
			"en/b.l20n":       `<title "From B"> <only "Only B {{ title }}">`,
		})
		lctx := env.CreateContext("{locale}/a.properties", "{locale}/b.l20n", "{locale}/a.properties")
		assert.Equal(t, []string{"{locale}/a.properties", "{locale}/b.l20n"}, lctx.ResourceIDs())

		values, err := lctx.ResolveValues(context.Background(), app("en"), l10n.Keys("title", "only")...)
		require.NoError(t, err)
		assert.Equal(t, "From A", values[0])
		assert.Equal(t, "Only B "+resolver.FSI+"From A"+resolver.PDI, values[1])
	})
}

func TestResolveEntities(t *testing.T) {
	t.Parallel()

	env, _, log := newEnv(t, map[string]string{
		"en/app.l20n": `
<button "Click"
  title: "Press {{ $what }}"
  broken: { a: "A" }>
<plain "Plain">
<bad { a: "A" }
  ok: "Still fine">`,
	})
	lctx := env.CreateContext("{locale}/app.l20n")

	entities, err := lctx.ResolveEntities(context.Background(), app("en"),
		l10n.Key{ID: "button", Args: resolver.Args{"what": "me"}},
		l10n.Key{ID: "plain"},
		l10n.Key{ID: "bad"},
		l10n.Key{ID: "absent"},
	)
	require.NoError(t, err)
	require.Len(t, entities, 4)

	assert.Equal(t, "Click", entities[0].Value)
	assert.Equal(t, map[string]string{
		"title":  "Press " + resolver.FSI + "me" + resolver.PDI,
		"broken": "button::broken",
	}, entities[0].Attrs)

	assert.Equal(t, l10n.Entity{Value: "Plain"}, entities[1])

	assert.Equal(t, "bad", entities[2].Value)
	assert.Equal(t, map[string]string{"ok": "Still fine"}, entities[2].Attrs)

	assert.Equal(t, l10n.Entity{Value: "absent"}, entities[3])

	resolveErrs := log.byKind(l10n.KindResolve)
	require.Len(t, resolveErrs, 2)
	ids := []string{resolveErrs[0].ID(), resolveErrs[1].ID()}
	assert.ElementsMatch(t, []string{"button::broken", "bad"}, ids)
	for _, e := range resolveErrs {
		assert.ErrorIs(t, e, resolver.ErrUnresolvableValue)
	}
}

func TestResolvePlaceableErrorsAreReported(t *testing.T) {
	t.Parallel()

	env, _, log := newEnv(t, map[string]string{
		"en/app.l20n": `<a "A {{ b }}"> <b "B {{ a }}">`,
	})
	lctx := env.CreateContext("{locale}/app.l20n")

	values, err := lctx.ResolveValues(context.Background(), app("en"), l10n.Keys("a")...)
	require.NoError(t, err)
	assert.Contains(t, values[0], "{{ a }}")

	resolveErrs := log.byKind(l10n.KindResolve)
	require.Len(t, resolveErrs, 1)
	assert.Equal(t, "a", resolveErrs[0].ID())
	assert.ErrorIs(t, resolveErrs[0], resolver.ErrCyclicReference)
}
