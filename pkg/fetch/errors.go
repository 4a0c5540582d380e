package fetch

import "errors"

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrFailedToRead       = errors.New("failed to read resource")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrNoFetcher          = errors.New("no fetcher for source")
	ErrAccessDenied       = errors.New("access denied")
)
