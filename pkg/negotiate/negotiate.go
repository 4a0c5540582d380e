package negotiate

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/l20n/pkg/l10n"
	"github.com/dmitrymomot/l20n/pkg/logger"
	"github.com/dmitrymomot/l20n/pkg/pseudo"
)

// Prioritize picks the first requested code present in negotiable and returns
// it followed by def. It returns just def when nothing matches or the match is
// def itself.
func Prioritize(def string, negotiable, requested []string) []string {
	for _, code := range requested {
		if !slices.Contains(negotiable, code) {
			continue
		}
		if code == def {
			break
		}
		return []string{code, def}
	}
	return []string{def}
}

// Source returns the tier resources for code are loaded from. A language
// pack built for appVersion wins when the language is not bundled or the pack
// revision is newer than the bundled one. Pseudo-locales not bundled with the
// application are generated.
func Source(appVersion string, available map[string]int, extra ExtraLanguages, code string) l10n.Source {
	if lp, ok := matchingPack(appVersion, extra[code]); ok {
		rev, bundled := available[code]
		if !bundled || lp.Revision > rev {
			return l10n.SourceExtra
		}
	}

	if _, bundled := available[code]; !bundled && pseudo.IsPseudo(code) {
		return l10n.SourcePseudo
	}

	return l10n.SourceApp
}

// Negotiate computes the language fallback chain for requested.
func Negotiate(m Manifest, extra ExtraLanguages, requested []string) []l10n.Language {
	codes := Prioritize(m.DefaultLanguage, negotiable(m, extra), requested)
	return languages(m, extra, codes)
}

// Negotiator remembers the last negotiated chain and notifies when it changes.
type Negotiator struct {
	manifest Manifest
	onChange func([]l10n.Language)
	logger   *slog.Logger

	mu   sync.Mutex
	prev []string
}

// Option configures a Negotiator.
type Option func(*Negotiator)

// WithOnChange sets the callback invoked with the new chain whenever a
// negotiation produces a chain different from the previous one.
func WithOnChange(fn func([]l10n.Language)) Option {
	return func(n *Negotiator) {
		n.onChange = fn
	}
}

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(log *slog.Logger) Option {
	return func(n *Negotiator) {
		if log != nil {
			n.logger = log
		}
	}
}

// NewNegotiator creates a negotiator for the manifest.
func NewNegotiator(m Manifest, opts ...Option) *Negotiator {
	n := &Negotiator{manifest: m, logger: logger.Discard()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Manifest returns the manifest the negotiator was created with.
func (n *Negotiator) Manifest() Manifest {
	return n.manifest
}

// Request negotiates requested against the manifest and the installed extra
// packs. The change callback fires only when the resulting code list differs
// from the one of the previous call.
func (n *Negotiator) Request(extra ExtraLanguages, requested []string) []l10n.Language {
	codes := Prioritize(n.manifest.DefaultLanguage, negotiable(n.manifest, extra), requested)
	langs := languages(n.manifest, extra, codes)

	n.mu.Lock()
	changed := !slices.Equal(n.prev, codes)
	n.prev = codes
	n.mu.Unlock()

	if changed {
		n.logger.Debug("languages negotiated",
			logger.Component("negotiate"),
			slog.Any("languages", codes),
		)
		if n.onChange != nil {
			n.onChange(langs)
		}
	}
	return langs
}

// negotiable is every code a request can match: bundled, extra and pseudo.
func negotiable(m Manifest, extra ExtraLanguages) []string {
	codes := make([]string, 0, len(m.AvailableLanguages)+len(extra)+2)
	for code := range m.AvailableLanguages {
		codes = append(codes, code)
	}
	for code := range extra {
		codes = append(codes, code)
	}
	return append(codes, pseudo.Codes()...)
}

func languages(m Manifest, extra ExtraLanguages, codes []string) []l10n.Language {
	langs := make([]l10n.Language, len(codes))
	for i, code := range codes {
		langs[i] = l10n.Language{
			Code: code,
			Src:  Source(m.AppVersion, m.AvailableLanguages, extra, code),
		}
	}
	return langs
}

func matchingPack(appVersion string, packs []LangPack) (LangPack, bool) {
	for _, lp := range packs {
		if lp.Target == appVersion {
			return lp, true
		}
	}
	return LangPack{}, false
}
