package lipi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIASTToSLP1(t *testing.T) {
	require.Equal(t, "rAma", IASTScheme.ToSLP1("rāma"))
	require.Equal(t, "Bavati", IASTScheme.ToSLP1("bhavati"))
	require.Equal(t, "kfzRa", IASTScheme.ToSLP1("kṛṣṇa"))
}

func TestSLP1ToIAST(t *testing.T) {
	require.Equal(t, "rāma", IASTScheme.FromSLP1("rAma"))
	require.Equal(t, "bhavati", IASTScheme.FromSLP1("Bavati"))
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"rAma", "Bavati", "kfzRa", "devaH"} {
		require.Equal(t, text, IASTScheme.ToSLP1(IASTScheme.FromSLP1(text)))
	}
}

func TestUnknownRunePassesThrough(t *testing.T) {
	require.Equal(t, "rAma 123!", IASTScheme.ToSLP1("rāma 123!"))
}
