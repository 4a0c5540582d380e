package ast

import (
	"strings"
)

// Expr is a placeable or selector expression: Ident, Var, Global, *Prop or *Call.
type Expr interface {
	isExpr()
	String() string
}

// Ident references an entity, macro or argument by name.
type Ident struct {
	Name string
}

// Var references a caller supplied argument ($name).
type Var struct {
	Name string
}

// Global references a runtime global (@name).
type Global struct {
	Name string
}

// Prop is a property access. Computed props use Key, plain ones use Name.
type Prop struct {
	Obj      Expr
	Name     string
	Key      Expr
	Computed bool
}

// Call is a call expression.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (Ident) isExpr()  {}
func (Var) isExpr()    {}
func (Global) isExpr() {}
func (*Prop) isExpr()  {}
func (*Call) isExpr()  {}

func (e Ident) String() string  { return e.Name }
func (e Var) String() string    { return "$" + e.Name }
func (e Global) String() string { return "@" + e.Name }

func (e *Prop) String() string {
	if e.Computed {
		return e.Obj.String() + "[" + e.Key.String() + "]"
	}
	return e.Obj.String() + "." + e.Name
}

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Name returns the bare name of a primary expression, or "" for
// property access and calls.
func Name(e Expr) string {
	switch x := e.(type) {
	case Ident:
		return x.Name
	case Var:
		return x.Name
	case Global:
		return x.Name
	default:
		return ""
	}
}
