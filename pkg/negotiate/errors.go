package negotiate

import "errors"

var (
	ErrFailedToParseManifest = errors.New("failed to parse manifest")
	ErrMissingDefaultLang    = errors.New("manifest has no default language")
	ErrInvalidLangRevision   = errors.New("invalid language revision entry")
)
