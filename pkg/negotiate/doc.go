// Package negotiate computes the language fallback chain of an application.
//
// The chain always ends with the default language and holds at most one other
// language: the first requested code the application can serve, either from
// its bundle, from an installed language pack or as a pseudo-locale.
//
//	m, err := negotiate.ParseMeta("en-US", "en-US:3, fr:2", "2.5")
//	if err != nil {
//		return err
//	}
//
//	n := negotiate.NewNegotiator(m, negotiate.WithOnChange(func(langs []l10n.Language) {
//		// re-translate with the new chain
//	}))
//	langs := n.Request(nil, negotiate.RequestedFromAcceptLanguage(r.Header.Get("Accept-Language")))
//
// Each language carries the source tier its resources are fetched from; see
// Source for the selection rules.
package negotiate
