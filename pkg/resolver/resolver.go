// Package resolver turns parsed entities into display strings.
//
// Resolution is fault tolerant at the placeable level: a placeable that
// cannot be resolved renders as its source form, e.g. "{{ user }}", wrapped
// in directional isolation marks, and the rest of the entity is still
// produced.
// Only failures of the entity value itself (a selector that cannot be
// evaluated, a hash without a matching or default branch) fail the entity.
package resolver

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/l20n/pkg/ast"
	"github.com/dmitrymomot/l20n/pkg/plural"
)

// MaxPlaceableLength is the maximum length, in characters, of a string
// substituted into a placeable.
const MaxPlaceableLength = 2500

// Directional isolation marks wrapped around substituted text.
const (
	FSI = "\u2068"
	PDI = "\u2069"
)

const pluralMacro = "plural"

// Args are the runtime arguments of a resolution. Values must be strings or
// numbers of any Go numeric kind.
type Args map[string]any

// Resolver resolves entities of a single language.
type Resolver struct {
	// Lang is the language code used for plural rules and number formatting.
	Lang string
	// Lookup returns the entity referenced by id, or nil.
	Lookup func(id string) *ast.Entity
	// Report receives the first placeable error of each Resolve call.
	Report func(error)
}

// Resolve formats the value of e. Every call uses its own cycle guard, so
// concurrent calls never interfere.
func (r *Resolver) Resolve(args Args, e *ast.Entity) (string, error) {
	s := &scope{r: r, args: args, chain: make(map[*ast.Entity]struct{})}
	out, err := s.format(e)
	if s.placeableErr != nil && r.Report != nil {
		r.Report(s.placeableErr)
	}
	return out, err
}

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindMacro
)

type resolved struct {
	kind valueKind
	text string
	num  float64
	rule plural.Rule
}

// scope is the state of one top-level Resolve call.
type scope struct {
	r            *Resolver
	args         Args
	chain        map[*ast.Entity]struct{}
	printer      *message.Printer
	placeableErr error
}

func (s *scope) format(e *ast.Entity) (string, error) {
	if _, ok := s.chain[e]; ok {
		return "", fmt.Errorf("%w: %s", ErrCyclicReference, e.ID)
	}
	s.chain[e] = struct{}{}
	defer delete(s.chain, e)

	return s.value(e.Value, e.Index)
}

func (s *scope) value(v ast.Value, index []ast.Expr) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case ast.Str:
		return string(x), nil
	case ast.Pattern:
		return s.interpolate(x), nil
	case *ast.Hash:
		var rest []ast.Expr
		if len(index) > 0 {
			rest = index[1:]
			key, err := s.selector(index[0], x)
			if err != nil {
				return "", err
			}
			if item, ok := x.Get(key); ok {
				return s.value(item, rest)
			}
		}

		def := x.Default
		if def == "" {
			def = string(plural.Other)
		}
		if item, ok := x.Get(def); ok {
			return s.value(item, rest)
		}
		return "", ErrUnresolvableValue
	default:
		return "", fmt.Errorf("%w: %T", ErrUnresolvableValue, v)
	}
}

func (s *scope) interpolate(p ast.Pattern) string {
	var out []byte
	for _, el := range p {
		switch x := el.(type) {
		case ast.Str:
			out = append(out, x...)
		case ast.Placeable:
			out = append(out, s.placeable(x.Expr)...)
		}
	}
	return string(out)
}

func (s *scope) placeable(expr ast.Expr) string {
	name := ast.Name(expr)
	if _, global := expr.(ast.Global); global || name == "" {
		s.fail(fmt.Errorf("%w: %s", ErrUnsupportedExpression, expr))
		return FSI + "{{ " + expr.String() + " }}" + PDI
	}
	fallback := FSI + "{{ " + name + " }}" + PDI

	v, err := s.identifier(name)
	if err != nil {
		s.fail(err)
		return fallback
	}

	switch v.kind {
	case kindNumber:
		return s.formatNumber(v.num)
	case kindString:
		if n := utf8.RuneCountInString(v.text); n > MaxPlaceableLength {
			s.fail(fmt.Errorf("%w: %s (%d, max allowed is %d)", ErrPlaceableTooLong, name, n, MaxPlaceableLength))
			return fallback
		}
		return FSI + v.text + PDI
	default:
		return fallback
	}
}

func (s *scope) fail(err error) {
	if s.placeableErr == nil {
		s.placeableErr = err
	}
}

// identifier resolves a name against macros, args and entities, in that order.
func (s *scope) identifier(name string) (resolved, error) {
	if name == pluralMacro {
		return resolved{kind: kindMacro, rule: plural.RuleFor(s.r.Lang)}, nil
	}

	if v, ok := s.args[name]; ok {
		if str, ok := v.(string); ok {
			return resolved{kind: kindString, text: str}, nil
		}
		if n, ok := toFloat(v); ok && !math.IsNaN(n) {
			return resolved{kind: kindNumber, num: n}, nil
		}
		return resolved{}, fmt.Errorf("%w: %s", ErrInvalidArg, name)
	}

	if name == "__proto__" {
		return resolved{}, fmt.Errorf("%w: %s", ErrIllegalID, name)
	}

	if s.r.Lookup != nil {
		if e := s.r.Lookup(name); e != nil {
			text, err := s.format(e)
			if err != nil {
				return resolved{}, err
			}
			return resolved{kind: kindString, text: text}, nil
		}
	}

	return resolved{}, fmt.Errorf("%w: %s", ErrUnknownReference, name)
}

func (s *scope) selector(expr ast.Expr, h *ast.Hash) (string, error) {
	name, arg := selectorParts(expr)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExpression, expr)
	}

	v, err := s.identifier(name)
	if err != nil {
		return "", err
	}
	switch v.kind {
	case kindString:
		return v.text, nil
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), nil
	}

	if arg == nil {
		return string(plural.Other), nil
	}
	argName := ast.Name(arg)
	if argName == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExpression, arg)
	}
	av, err := s.identifier(argName)
	if err != nil {
		return "", err
	}
	if av.kind != kindNumber {
		return string(plural.Other), nil
	}

	n := av.num
	switch {
	case n == 0 && h.Has(string(plural.Zero)):
		return string(plural.Zero), nil
	case n == 1 && h.Has(string(plural.One)):
		return string(plural.One), nil
	case n == 2 && h.Has(string(plural.Two)):
		return string(plural.Two), nil
	}
	return string(v.rule(n)), nil
}

// selectorParts extracts the selector name and its argument from an index
// expression. Both plural($n) and @cldr.plural(n) select the plural macro.
func selectorParts(expr ast.Expr) (string, ast.Expr) {
	switch x := expr.(type) {
	case ast.Ident:
		return x.Name, nil
	case ast.Var:
		return x.Name, nil
	case *ast.Call:
		var arg ast.Expr
		if len(x.Args) > 0 {
			arg = x.Args[0]
		}
		switch c := x.Callee.(type) {
		case ast.Ident:
			return c.Name, arg
		case *ast.Prop:
			if g, ok := c.Obj.(ast.Global); ok && g.Name == "cldr" && c.Name == pluralMacro {
				return pluralMacro, arg
			}
		}
	}
	return "", nil
}

func (s *scope) formatNumber(n float64) string {
	if s.printer == nil {
		s.printer = message.NewPrinter(language.Make(s.r.Lang))
	}
	return s.printer.Sprint(number.Decimal(n, number.NoSeparator(), number.MaxFractionDigits(3)))
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
