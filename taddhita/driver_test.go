package taddhita

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/pratipadika"
)

func buildArgs(t *testing.T, stem string, td Taddhita) *Args {
	t.Helper()
	args, err := NewBuilder().
		Pratipadika(pratipadika.From(stem)).
		Taddhita(td).
		Build()
	require.NoError(t, err)
	return args
}

func TestDeriveGunatvaTva(t *testing.T) {
	p, err := Derive(buildArgs(t, "guRa", Tva))
	require.NoError(t, err)
	require.Equal(t, "guRatva", p.Text())
}

// tal obligatorily takes the feminine TAp affix (4.1.4's "ajAdyataz wAp"
// family): the resulting savarna-dirgha merge of tal's own final a with
// TAp's A is what turns "guRa"+"ta"+"A" into "guRatA", not "guRataA".
func TestDeriveGunataTal(t *testing.T) {
	p, err := Derive(buildArgs(t, "guRa", Tal))
	require.NoError(t, err)
	require.Equal(t, "guRatA", p.Text())
}

func TestBuilderRejectsMissingFields(t *testing.T) {
	_, err := NewBuilder().Taddhita(Tva).Build()
	require.Error(t, err)

	_, err = NewBuilder().Pratipadika(pratipadika.From("guRa")).Build()
	require.Error(t, err)
}

func TestDeriveUnknownTaddhitaAborts(t *testing.T) {
	_, err := Derive(&Args{pratipadika: pratipadika.From("guRa"), taddhita: Taddhita(99)})
	require.Error(t, err)
}
