package parser

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/l20n/pkg/ast"
)

// MaxPlaceables is the maximum number of placeables in one string literal.
const MaxPlaceables = 100

// Syntax identifies a resource grammar.
type Syntax string

const (
	SyntaxProperties Syntax = "properties"
	SyntaxL20n       Syntax = "l20n"
)

// SyntaxFor infers the grammar of a resource from its file extension.
// The extension may carry a {locale} placeholder in the path before it.
func SyntaxFor(resourceID string) (Syntax, error) {
	ext := getFileExtension(resourceID)

	switch strings.ToLower(ext) {
	case "properties":
		return SyntaxProperties, nil
	case "l20n":
		return SyntaxL20n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSyntax, resourceID)
	}
}

// Parse parses src using the given grammar.
func Parse(syntax Syntax, src string, sink ErrorSink) (*ast.Resource, error) {
	switch syntax {
	case SyntaxProperties:
		return ParseProperties(src, sink)
	case SyntaxL20n:
		return ParseL20n(src, sink)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSyntax, syntax)
	}
}

// getFileExtension extracts the extension from a resource path
func getFileExtension(path string) string {
	if idx := strings.LastIndex(path, "."); idx != -1 {
		return path[idx+1:]
	}
	return ""
}
