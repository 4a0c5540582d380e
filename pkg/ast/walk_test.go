package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/ast"
)

func TestMapEntity(t *testing.T) {
	t.Parallel()

	index := []ast.Expr{&ast.Call{Callee: ast.Ident{Name: "plural"}, Args: []ast.Expr{ast.Var{Name: "n"}}}}
	e := &ast.Entity{
		ID: "items",
		Value: &ast.Hash{
			Default: "other",
			Items: []ast.HashItem{
				{Key: "one", Value: ast.Str("one item")},
				{Key: "other", Value: ast.Pattern{ast.Placeable{Expr: ast.Var{Name: "n"}}, ast.Str(" items")}},
			},
		},
		Index: index,
		Attrs: []*ast.Entity{ast.NewString("title", "title")},
	}

	out := ast.MapEntity(e, strings.ToUpper)

	t.Run("string leaves are transformed", func(t *testing.T) {
		t.Parallel()
		h, ok := out.Value.(*ast.Hash)
		require.True(t, ok)
		one, ok := h.Get("one")
		require.True(t, ok)
		assert.Equal(t, ast.Str("ONE ITEM"), one)

		other, ok := h.Get("other")
		require.True(t, ok)
		p, ok := other.(ast.Pattern)
		require.True(t, ok)
		assert.Equal(t, ast.Placeable{Expr: ast.Var{Name: "n"}}, p[0])
		assert.Equal(t, ast.Str(" ITEMS"), p[1])
		assert.Equal(t, "other", h.Default)
	})

	t.Run("keys, index and attribute names are kept", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "items", out.ID)
		assert.Equal(t, index, out.Index)
		attr, ok := out.Attr("title")
		require.True(t, ok)
		assert.Equal(t, ast.Str("TITLE"), attr.Value)
	})

	t.Run("original is untouched", func(t *testing.T) {
		t.Parallel()
		h := e.Value.(*ast.Hash)
		one, _ := h.Get("one")
		assert.Equal(t, ast.Str("one item"), one)
		assert.Equal(t, ast.Str("title"), e.Attrs[0].Value)
	})
}

func TestResourceOrder(t *testing.T) {
	t.Parallel()

	r := ast.NewResource()
	r.Set(ast.NewString("b", "1"))
	r.Set(ast.NewString("a", "2"))
	r.Set(ast.NewString("b", "3"))

	assert.Equal(t, []string{"b", "a"}, r.IDs())
	assert.Equal(t, 2, r.Len())
	e, ok := r.Get("b")
	require.True(t, ok)
	assert.Equal(t, ast.Str("3"), e.Value)
	assert.True(t, e.IsSimple())

	mapped := ast.MapResource(r, func(s string) string { return s + "!" })
	assert.Equal(t, []string{"b", "a"}, mapped.IDs())
	e, _ = mapped.Get("a")
	assert.Equal(t, ast.Str("2!"), e.Value)
}

func TestExprString(t *testing.T) {
	t.Parallel()

	expr := &ast.Call{
		Callee: &ast.Prop{Obj: ast.Global{Name: "cldr"}, Name: "plural"},
		Args:   []ast.Expr{ast.Var{Name: "n"}, ast.Ident{Name: "x"}},
	}
	assert.Equal(t, "@cldr.plural($n, x)", expr.String())
	assert.Equal(t, "", ast.Name(expr))
	assert.Equal(t, "n", ast.Name(ast.Var{Name: "n"}))

	computed := &ast.Prop{Obj: ast.Ident{Name: "a"}, Key: ast.Var{Name: "k"}, Computed: true}
	assert.Equal(t, "a[$k]", computed.String())
}
