package l10n

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies errors passed to error handlers.
type ErrorKind string

const (
	KindParse     ErrorKind = "parsererror"
	KindDuplicate ErrorKind = "duplicateerror"
	KindFetch     ErrorKind = "fetcherror"
	KindConfig    ErrorKind = "configurationerror"
	KindResolve   ErrorKind = "resolveerror"
	KindNotFound  ErrorKind = "notfounderror"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrNotFoundInAnyLanguage = fmt.Errorf("%w in any language", ErrNotFound)
	ErrContextDestroyed      = errors.New("context has been destroyed")
	ErrNilFetcher            = errors.New("fetcher is nil")
	ErrEmptyDefaultLanguage  = errors.New("default language is empty")
	ErrUnknownPseudoLocale   = errors.New("unknown pseudo-locale")
)

// Error describes a recoverable failure of the engine. Resource is set for
// parse, fetch and configuration errors; IDs for resolution and not-found
// errors. Attribute ids are written as "id::attr".
type Error struct {
	Kind     ErrorKind
	Resource string
	IDs      []string
	Lang     Language
	Err      error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	if len(e.IDs) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(strings.Join(e.IDs, ", ")))
	}
	if e.Resource != "" {
		sb.WriteString(" in resource ")
		sb.WriteString(strconv.Quote(e.Resource))
	}
	if e.Lang.Code != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Lang.String())
		sb.WriteString(")")
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ID returns the first id the error refers to.
func (e *Error) ID() string {
	if len(e.IDs) == 0 {
		return ""
	}
	return e.IDs[0]
}
