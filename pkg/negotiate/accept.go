package negotiate

import "golang.org/x/text/language"

// maxAcceptLanguageLength caps the header size processed.
const maxAcceptLanguageLength = 4096

// RequestedFromAcceptLanguage turns an Accept-Language header into a requested
// language order, highest quality first. Each tag is followed by its base
// language when the base is not listed on its own, so "fr-CA" can still match
// a bundled "fr". Malformed headers yield nil.
func RequestedFromAcceptLanguage(header string) []string {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	listed := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		listed[tag.String()] = struct{}{}
	}

	requested := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	add := func(code string) {
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		requested = append(requested, code)
	}

	for _, tag := range tags {
		if tag == language.Und {
			continue
		}
		code := tag.String()
		add(code)

		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		if b := base.String(); b != code {
			if _, ok := listed[b]; !ok {
				add(b)
			}
		}
	}
	return requested
}
