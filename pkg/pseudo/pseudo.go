// Package pseudo provides runtime pseudo-locales used to test localizability
// without real translations.
//
// Two locales are available:
//
//   - fr-x-psaccent replaces ASCII letters with accented look-alikes and
//     doubles vowels to simulate longer translations.
//   - ar-x-psbidi wraps words in right-to-left override marks and replaces
//     letters with flipped look-alikes to exercise RTL layouts.
//
// Printf-like tokens, {{ placeables }}, HTML entities and tags are never
// transformed.
package pseudo

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	Accented = "fr-x-psaccent"
	Bidi     = "ar-x-psbidi"
)

const (
	rlo = '\u202e'
	pdf = '\u202c'
)

var excludedRe = regexp.MustCompile(`(%[EO]?\w|\{\s*.+?\s*\}|&[#\w]+;|<\s*.+?\s*>)`)

// Locale is a pseudo-locale.
type Locale struct {
	code    string
	name    string
	charMap []rune
	mod     func(string) string
}

var locales = map[string]*Locale{
	Accented: newLocale(Accented, "Runtime Accented",
		"ȦƁƇḒḖƑƓĦĪĴĶĿḾȠǾƤɊŘŞŦŬṼẆẊẎẐ[\\]^_`ȧƀƈḓḗƒɠħīĵķŀḿƞǿƥɋřşŧŭṽẇẋẏẑ",
		doubleVowels),
	Bidi: newLocale(Bidi, "Runtime Bidi",
		"∀ԐↃpƎɟפHIſӼ˥WNOԀÒᴚS⊥∩ɅＭXʎZ[\\]ᵥ_,ɐqɔpǝɟƃɥıɾʞʅɯuodbɹsʇnʌʍxʎz",
		overrideWords),
}

func newLocale(code, name, charMap string, mod func(string) string) *Locale {
	l := &Locale{code: code, charMap: []rune(charMap), mod: mod}
	l.name = l.transform(name)
	return l
}

// Get returns the pseudo-locale registered under code.
func Get(code string) (*Locale, bool) {
	l, ok := locales[code]
	return l, ok
}

// IsPseudo reports whether code names a pseudo-locale.
func IsPseudo(code string) bool {
	_, ok := locales[code]
	return ok
}

// Codes returns the codes of all pseudo-locales.
func Codes() []string {
	return []string{Accented, Bidi}
}

// Code returns the language code of the locale.
func (l *Locale) Code() string { return l.code }

// Name returns the display name of the locale, itself pseudo-localized.
func (l *Locale) Name() string { return l.name }

// Transform pseudo-localizes s, leaving excluded tokens intact.
func (l *Locale) Transform(s string) string {
	if s == "" {
		return s
	}

	var sb strings.Builder
	last := 0
	for _, m := range excludedRe.FindAllStringIndex(s, -1) {
		sb.WriteString(l.transform(s[last:m[0]]))
		sb.WriteString(s[m[0]:m[1]])
		last = m[1]
	}
	sb.WriteString(l.transform(s[last:]))
	return sb.String()
}

func (l *Locale) transform(s string) string {
	if s == "" {
		return s
	}
	return l.replaceChars(l.mod(s))
}

func (l *Locale) replaceChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if isASCIILetter(r) {
			sb.WriteRune(l.charMap[r-'A'])
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func doubleVowels(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		sb.WriteRune(r)
		if strings.ContainsRune("aeiouAEIOU", r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// overrideWords wraps every run of ASCII letters in RLO ... PDF.
func overrideWords(s string) string {
	var sb strings.Builder
	inWord := false
	for _, r := range s {
		letter := isASCIILetter(r)
		if letter && !inWord {
			sb.WriteRune(rlo)
		} else if !letter && inWord {
			sb.WriteRune(pdf)
		}
		inWord = letter
		sb.WriteRune(r)
	}
	if inWord {
		sb.WriteRune(pdf)
	}
	return sb.String()
}

func isASCIILetter(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}
