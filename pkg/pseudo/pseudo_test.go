package pseudo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l20n/pkg/pseudo"
)

func TestAccented(t *testing.T) {
	t.Parallel()

	l, ok := pseudo.Get(pseudo.Accented)
	require.True(t, ok)
	assert.Equal(t, pseudo.Accented, l.Code())

	assert.Equal(t, "Ħḗḗŀŀǿǿ", l.Transform("Hello"))
	assert.Equal(t, "ȧȧ {{ n }}", l.Transform("a {{ n }}"))
	assert.Equal(t, "%S ȧȧ <b>&amp;", l.Transform("%S a <b>&amp;"))
	assert.Equal(t, "42!", l.Transform("42!"))
	assert.Empty(t, l.Transform(""))

	assert.NotEqual(t, "Runtime Accented", l.Name())
	assert.Equal(t, l.Transform("Runtime Accented"), l.Name())
}

func TestBidi(t *testing.T) {
	t.Parallel()

	l, ok := pseudo.Get(pseudo.Bidi)
	require.True(t, ok)

	assert.Equal(t, "\u202eɐq\u202c 1", l.Transform("ab 1"))
	assert.Equal(t, "\u202eɐ\u202c <i>", l.Transform("a <i>"))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{pseudo.Accented, pseudo.Bidi}, pseudo.Codes())
	assert.True(t, pseudo.IsPseudo("ar-x-psbidi"))
	assert.False(t, pseudo.IsPseudo("fr"))

	_, ok := pseudo.Get("en-US")
	assert.False(t, ok)
}
