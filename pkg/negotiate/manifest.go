package negotiate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest describes the languages an application ships with.
type Manifest struct {
	DefaultLanguage string `yaml:"default_language"`
	// AppVersion is matched against LangPack.Target of downloaded packs.
	AppVersion string `yaml:"app_version"`
	// AvailableLanguages maps each bundled language code to its revision.
	AvailableLanguages map[string]int `yaml:"available_languages"`
}

// LangPack is a downloadable language pack built for one app version.
type LangPack struct {
	Target   string `yaml:"target"`
	Revision int    `yaml:"revision"`
}

// ExtraLanguages maps a language code to the packs installed for it.
type ExtraLanguages map[string][]LangPack

// ParseManifest decodes a YAML manifest:
//
//	default_language: en-US
//	app_version: "2.5"
//	available_languages:
//	  en-US: 3
//	  fr: 2
//
// The default language is added to the available languages, with revision
// zero, when it is not listed there.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Join(ErrFailedToParseManifest, err)
	}
	return m, m.normalize(0)
}

// ParseMeta builds a manifest from the compact form used in HTML meta tags.
// availableLangs is a comma separated list of "code:revision" pairs;
// defaultLang is a single "code:revision" pair and is added to the available
// languages when missing.
//
//	ParseMeta("en-US:3", "en-US:3, fr:2, de:1", "2.5")
func ParseMeta(defaultLang, availableLangs, appVersion string) (Manifest, error) {
	m := Manifest{
		AppVersion:         strings.TrimSpace(appVersion),
		AvailableLanguages: make(map[string]int),
	}

	if strings.TrimSpace(availableLangs) != "" {
		for part := range strings.SplitSeq(availableLangs, ",") {
			code, rev, err := parseLangRevision(part)
			if err != nil {
				return Manifest{}, err
			}
			m.AvailableLanguages[code] = rev
		}
	}

	code, rev, err := parseLangRevision(defaultLang)
	if err != nil {
		return Manifest{}, err
	}
	m.DefaultLanguage = code
	return m, m.normalize(rev)
}

// ExtraLanguagesFromYAML decodes installed language packs:
//
//	de:
//	  - target: "2.5"
//	    revision: 4
func ExtraLanguagesFromYAML(data []byte) (ExtraLanguages, error) {
	var extra ExtraLanguages
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, errors.Join(ErrFailedToParseManifest, err)
	}
	return extra, nil
}

func (m *Manifest) normalize(defaultRev int) error {
	m.DefaultLanguage = strings.TrimSpace(m.DefaultLanguage)
	if m.DefaultLanguage == "" {
		return ErrMissingDefaultLang
	}
	if m.AvailableLanguages == nil {
		m.AvailableLanguages = make(map[string]int)
	}
	if _, ok := m.AvailableLanguages[m.DefaultLanguage]; !ok {
		m.AvailableLanguages[m.DefaultLanguage] = defaultRev
	}
	return nil
}

// parseLangRevision parses "code:revision". A missing revision is zero.
func parseLangRevision(s string) (string, int, error) {
	code, rev, found := strings.Cut(strings.TrimSpace(s), ":")
	code = strings.TrimSpace(code)
	if code == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidLangRevision, s)
	}
	if !found {
		return code, 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(rev))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidLangRevision, s)
	}
	return code, n, nil
}
