package chandas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// "rAma" -- A is long (guru), following a is short but word-final with no
// conjunct or anusvara/visarga after it, so laghu.
func TestSchemeRama(t *testing.T) {
	require.Equal(t, []Weight{Guru, Laghu}, Scheme("rAma"))
}

// "gacCati" -- a before the cC conjunct is guru, a before a single
// consonant then a vowel is laghu, i word-final is laghu.
func TestSchemeGacchati(t *testing.T) {
	require.Equal(t, []Weight{Guru, Laghu, Laghu}, Scheme("gacCati"))
}

// anusvara makes a preceding short vowel guru even with nothing else
// following.
func TestSchemeAnusvaraIsGuru(t *testing.T) {
	require.Equal(t, []Weight{Guru}, Scheme("aM"))
}

func TestToAksharasRama(t *testing.T) {
	aksharas := ToAksharas("rAma")
	require.Len(t, aksharas, 2)
	require.Equal(t, "rA", aksharas[0].Text)
	require.Equal(t, Guru, aksharas[0].Weight)
	require.Equal(t, "ma", aksharas[1].Text)
	require.Equal(t, Laghu, aksharas[1].Weight)
}
