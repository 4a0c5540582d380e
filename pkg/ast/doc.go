// Package ast defines the in-memory shape of parsed localization resources.
//
// Both resource grammars (properties and l20n) produce the same tree: a
// Resource is an ordered set of entities, each entity carries a Value, an
// optional list of attribute entities and an optional selector Index.
//
// Values and expressions are closed sum types. Value is one of Str, Pattern
// or Hash; Expr is one of Ident, Var, Global, Prop or Call. Consumers are
// expected to switch exhaustively over them:
//
//	switch v := e.Value.(type) {
//	case ast.Str:
//		// literal
//	case ast.Pattern:
//		// interpolation sequence
//	case *ast.Hash:
//		// selector branches
//	}
//
// Trees are treated as immutable once parsed. MapResource and MapEntity build
// structurally identical copies with every string leaf rewritten, which is how
// pseudo-locales are derived from the default language.
package ast
