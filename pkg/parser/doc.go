// Package parser turns localization resources into ast.Resource values.
//
// Two syntaxes are supported, picked from the resource id's extension by
// SyntaxFor:
//
//   - .properties: `key = value` lines with `#` comments, `\` continuations,
//     `key.attr` attributes, `key[branch]` hash members and `{[ plural(n) ]}`
//     index declarations.
//   - .l20n: `<id "value" attr: "value">` entities with hash literals, a
//     `*` default member, index lists and `/* */` comments.
//
// Both report problems as *ParseError with a Kind of KindParse or
// KindDuplicate. With an ErrorSink every error is passed to the sink and the
// offending entry is skipped, so one broken line never hides the rest of the
// file. Without a sink the first error is returned.
//
//	res, err := parser.Parse(parser.SyntaxL20n, src, func(e *parser.ParseError) {
//	    log.Warn("parse error", logger.Error(e))
//	})
//
// A string may hold at most MaxPlaceables `{{ }}` placeables.
package parser
