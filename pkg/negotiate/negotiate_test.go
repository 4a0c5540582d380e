package negotiate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/l10n"
	"github.com/dmitrymomot/l20n/pkg/negotiate"
	"github.com/dmitrymomot/l20n/pkg/pseudo"
)

func TestPrioritize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		negotiable []string
		requested  []string
		want       []string
	}{
		{"first match wins", []string{"en", "fr", "de"}, []string{"pl", "de", "fr"}, []string{"de", "en"}},
		{"no match", []string{"en", "fr"}, []string{"pl"}, []string{"en"}},
		{"match is default", []string{"en", "fr"}, []string{"en", "fr"}, []string{"en"}},
		{"nothing requested", []string{"en", "fr"}, nil, []string{"en"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, negotiate.Prioritize("en", tc.negotiable, tc.requested))
		})
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	t.Run("requested language not available", func(t *testing.T) {
		t.Parallel()
		m := negotiate.Manifest{DefaultLanguage: "en", AvailableLanguages: map[string]int{"en": 1}}
		got := negotiate.Negotiate(m, nil, []string{"fr", "en"})
		assert.Equal(t, []l10n.Language{l10n.AppLanguage("en")}, got)
	})

	t.Run("requested language bundled", func(t *testing.T) {
		t.Parallel()
		m := negotiate.Manifest{DefaultLanguage: "en", AvailableLanguages: map[string]int{"fr": 1, "en": 1}}
		got := negotiate.Negotiate(m, nil, []string{"fr", "en"})
		assert.Equal(t, []l10n.Language{l10n.AppLanguage("fr"), l10n.AppLanguage("en")}, got)
	})

	t.Run("language pack only", func(t *testing.T) {
		t.Parallel()
		m := negotiate.Manifest{DefaultLanguage: "en", AppVersion: "2.5", AvailableLanguages: map[string]int{"en": 1}}
		extra := negotiate.ExtraLanguages{"de": {{Target: "2.5", Revision: 1}}}
		got := negotiate.Negotiate(m, extra, []string{"de"})
		assert.Equal(t, []l10n.Language{
			{Code: "de", Src: l10n.SourceExtra},
			l10n.AppLanguage("en"),
		}, got)
	})

	t.Run("pseudo-locale", func(t *testing.T) {
		t.Parallel()
		m := negotiate.Manifest{DefaultLanguage: "en", AvailableLanguages: map[string]int{"en": 1}}
		got := negotiate.Negotiate(m, nil, []string{pseudo.Bidi})
		assert.Equal(t, []l10n.Language{
			{Code: pseudo.Bidi, Src: l10n.SourcePseudo},
			l10n.AppLanguage("en"),
		}, got)
	})
}

func TestSource(t *testing.T) {
	t.Parallel()

	available := map[string]int{"en": 1, "fr": 2, pseudo.Accented: 1}
	extra := negotiate.ExtraLanguages{
		"fr": {{Target: "1.0", Revision: 9}, {Target: "2.5", Revision: 3}},
		"de": {{Target: "2.5", Revision: 1}},
		"it": {{Target: "1.0", Revision: 1}},
		"en": {{Target: "2.5", Revision: 1}},
	}

	cases := []struct {
		code string
		want l10n.Source
	}{
		{"fr", l10n.SourceExtra},
		{"de", l10n.SourceExtra},
		{"it", l10n.SourceApp},
		{"en", l10n.SourceApp},
		{"pl", l10n.SourceApp},
		{pseudo.Bidi, l10n.SourcePseudo},
		{pseudo.Accented, l10n.SourceApp},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, negotiate.Source("2.5", available, extra, tc.code))
		})
	}

	t.Run("older pack loses", func(t *testing.T) {
		t.Parallel()
		older := negotiate.ExtraLanguages{"fr": {{Target: "2.5", Revision: 2}}}
		assert.Equal(t, l10n.SourceApp, negotiate.Source("2.5", available, older, "fr"))
	})
}

func TestNegotiatorRequest(t *testing.T) {
	t.Parallel()

	m := negotiate.Manifest{DefaultLanguage: "en", AvailableLanguages: map[string]int{"en": 1, "fr": 1}}

	var notified [][]l10n.Language
	n := negotiate.NewNegotiator(m, negotiate.WithOnChange(func(langs []l10n.Language) {
		notified = append(notified, langs)
	}))

	first := n.Request(nil, []string{"fr"})
	require.Len(t, notified, 1)
	assert.Equal(t, first, notified[0])

	again := n.Request(nil, []string{"pl", "fr"})
	assert.Equal(t, first, again)
	assert.Len(t, notified, 1, "same chain must not notify")

	n.Request(nil, []string{"en"})
	require.Len(t, notified, 2)
	assert.Equal(t, []l10n.Language{l10n.AppLanguage("en")}, notified[1])

	assert.Equal(t, m, n.Manifest())
}

func TestRequestedFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   []string
	}{
		{"empty", "", nil},
		{"quality order", "en;q=0.5, de", []string{"de", "en"}},
		{"base language follows region", "de-AT, en;q=0.5", []string{"de-AT", "de", "en"}},
		{"listed base keeps its place", "fr-CA, fr;q=0.9, en;q=0.8", []string{"fr-CA", "fr", "en"}},
		{"canonical case", "en-us", []string{"en-US", "en"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, negotiate.RequestedFromAcceptLanguage(tc.header))
		})
	}

	t.Run("drives negotiation", func(t *testing.T) {
		t.Parallel()
		m := negotiate.Manifest{DefaultLanguage: "en", AvailableLanguages: map[string]int{"en": 1, "fr": 1}}
		got := negotiate.Negotiate(m, nil, negotiate.RequestedFromAcceptLanguage("fr-CH, en;q=0.7"))
		assert.Equal(t, []l10n.Language{l10n.AppLanguage("fr"), l10n.AppLanguage("en")}, got)
	})
}
