package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/logger"
	"github.com/dmitrymomot/l20n/pkg/pseudo"
	"github.com/dmitrymomot/l20n/pkg/resolver"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := writeTree(t, map[string]string{
		"manifest.yaml": "default_language: en\napp_version: \"2.5\"\navailable_languages:\n  en: 1\n  fr: 1\n",
		"packs.yaml":    "de:\n  - target: \"2.5\"\n    revision: 1\n",
		"en/app.properties": "hello = Hello {{ user }}\n" +
			"unread = {[ plural(n) ]}\nunread[one] = One message\nunread[other] = {{ n }} messages\n",
		"en/app.l20n":             `<button "Send" title: "Send now">`,
		"fr/app.properties":       "hello = Bonjour {{ user }}\n",
		"extra/de/app.properties": "hello = Hallo {{ user }}\n",
	})
	return Config{
		Manifest:     filepath.Join(dir, "manifest.yaml"),
		Extra:        filepath.Join(dir, "packs.yaml"),
		ResourcesDir: dir,
		Resources:    []string{"{locale}/app.properties", "{locale}/app.l20n"},
	}
}

func runJSON(t *testing.T, cfg Config, req request) output {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, req, &buf, logger.Discard()))

	var out output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestRunValues(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)

	out := runJSON(t, cfg, request{
		Accept: "fr-CH, en;q=0.5",
		Keys:   []string{"hello", "unread"},
		Args:   resolver.Args{"user": "Ann", "n": 3.0},
	})

	assert.Equal(t, []language{
		{Code: "fr", Src: "app", Name: "fr"},
		{Code: "en", Src: "app", Name: "en"},
	}, out.Languages)
	assert.Equal(t, "Bonjour "+resolver.FSI+"Ann"+resolver.PDI, out.Values["hello"])
	assert.Equal(t, "3 messages", out.Values["unread"])

	require.NotEmpty(t, out.Errors)
	for _, e := range out.Errors {
		assert.NotEqual(t, "resolveerror", e.Kind)
	}
}

func TestRunLanguagePack(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)

	out := runJSON(t, cfg, request{Accept: "de", Keys: []string{"hello"}, Args: resolver.Args{"user": "Jo"}})
	require.Len(t, out.Languages, 2)
	assert.Equal(t, "extra", out.Languages[0].Src)
	assert.Equal(t, "Hallo "+resolver.FSI+"Jo"+resolver.PDI, out.Values["hello"])
}

func TestRunEntitiesAndPseudo(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)

	out := runJSON(t, cfg, request{Accept: pseudo.Accented, Keys: []string{"button", "missing"}, Entities: true})

	require.Len(t, out.Languages, 2)
	assert.Equal(t, "pseudo", out.Languages[0].Src)
	l, _ := pseudo.Get(pseudo.Accented)
	assert.Equal(t, l.Name(), out.Languages[0].Name)

	assert.Equal(t, entity{Value: l.Transform("Send"), Attrs: map[string]string{"title": l.Transform("Send now")}}, out.Entities["button"])
	assert.Equal(t, entity{Value: "missing"}, out.Entities["missing"])
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t)

	err := run(context.Background(), cfg, request{}, &bytes.Buffer{}, logger.Discard())
	require.ErrorIs(t, err, ErrNoKeys)

	noRes := cfg
	noRes.Resources = nil
	err = run(context.Background(), noRes, request{Keys: []string{"a"}}, &bytes.Buffer{}, logger.Discard())
	require.ErrorIs(t, err, ErrNoResources)

	noManifest := cfg
	noManifest.Manifest = filepath.Join(t.TempDir(), "absent.yaml")
	err = run(context.Background(), noManifest, request{Keys: []string{"a"}}, &bytes.Buffer{}, logger.Discard())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestArgList(t *testing.T) {
	t.Parallel()

	var args argList
	require.NoError(t, args.Set("user=Ann"))
	require.NoError(t, args.Set("n=5"))
	require.NoError(t, args.Set("expr=a=b"))
	require.ErrorIs(t, args.Set("broken"), ErrInvalidArg)

	assert.Equal(t, resolver.Args{"user": "Ann", "n": 5.0, "expr": "a=b"}, args.values())
	assert.Equal(t, "user=Ann,n=5,expr=a=b", args.String())
	assert.Nil(t, argList(nil).values())
}
