package l10n

// Source is the tier a language's resources come from.
type Source string

const (
	// SourceApp marks resources bundled with the application.
	SourceApp Source = "app"
	// SourceExtra marks resources from a downloaded language pack.
	SourceExtra Source = "extra"
	// SourcePseudo marks a pseudo-locale generated from the default language.
	SourcePseudo Source = "pseudo"
)

// Language is a language code paired with its source tier.
type Language struct {
	Code string
	Src  Source
}

// AppLanguage returns a language served from the application bundle.
func AppLanguage(code string) Language {
	return Language{Code: code, Src: SourceApp}
}

func (l Language) String() string {
	return l.Code + "/" + string(l.Src)
}

func (l Language) cacheKey(resID string) string {
	return resID + l.Code + string(l.Src)
}
