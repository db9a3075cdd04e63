package subanta

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/pratipadika"
)

func build(t *testing.T, stem string, linga Linga, vibhakti Vibhakti, vacana Vacana) *Args {
	t.Helper()
	args, err := NewBuilder().
		Pratipadika(pratipadika.From(stem)).
		Linga(linga).
		Vibhakti(vibhakti).
		Vacana(vacana).
		Build()
	require.NoError(t, err)
	return args
}

// The deva-stem scenarios below never contain a natva trigger (no r or z
// anywhere in the stem), so they exercise the default/a-stem-adesha tables
// and general ac-sandhi without also having to account for 8.4.1/8.4.2.

func TestDeriveDevahPrathamaEka(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Prathama, Eka))
	require.NoError(t, err)
	require.Equal(t, "devaH", p.Text())
}

func TestDeriveDevauPrathamaDvi(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Prathama, Dvi))
	require.NoError(t, err)
	require.Equal(t, "devO", p.Text())
}

func TestDeriveDevahPrathamaBahu(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Prathama, Bahu))
	require.NoError(t, err)
	require.Equal(t, "devAH", p.Text())
}

func TestDeriveDevamDvitiyaEka(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Dvitiya, Eka))
	require.NoError(t, err)
	require.Equal(t, "devam", p.Text())
}

func TestDeriveDevayaCaturthiEka(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Caturthi, Eka))
	require.NoError(t, err)
	require.Equal(t, "devAya", p.Text())
}

func TestDeriveDevatPanchamiEka(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Panchami, Eka))
	require.NoError(t, err)
	require.Equal(t, "devAt", p.Text())
}

func TestDeriveDevasyaSasthiEka(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Sasthi, Eka))
	require.NoError(t, err)
	require.Equal(t, "devasya", p.Text())
}

func TestDeriveDeveSaptamiEka(t *testing.T) {
	p, err := Derive(build(t, "deva", Pum, Saptami, Eka))
	require.NoError(t, err)
	require.Equal(t, "deve", p.Text())
}

// rAma's leading r is the classical textbook trigger for natva: the
// instrumental singular is rAmeRa (rāmeṇa), not rAmena, since the dental n
// that guna-sandhi produces sees only permitted vowels and a pu-consonant
// (m) between it and the initial r. This exercises ApplyNatva end to end.
func TestDeriveRameneNatvaTrtiyaEka(t *testing.T) {
	p, err := Derive(build(t, "rAma", Pum, Trtiya, Eka))
	require.NoError(t, err)
	require.Equal(t, "rAmeRa", p.Text())
}

func TestDeriveRamaihTrtiyaBahu(t *testing.T) {
	p, err := Derive(build(t, "rAma", Pum, Trtiya, Bahu))
	require.NoError(t, err)
	require.Equal(t, "rAmEH", p.Text())
}

func TestBuilderRejectsMissingFields(t *testing.T) {
	_, err := NewBuilder().Linga(Pum).Vibhakti(Prathama).Vacana(Eka).Build()
	require.Error(t, err)

	_, err = NewBuilder().Pratipadika(pratipadika.From("deva")).Build()
	require.Error(t, err)
}

func TestLookupSupEndingMissingCombinationIsNotFound(t *testing.T) {
	_, ok := lookupSupEnding(supKey{0, 0})
	require.False(t, ok)
}
