package tinanta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
)

func build(t *testing.T, d *dhatu.Dhatu, prayoga Prayoga, purusha Purusha, vacana Vacana, lakara Lakara) *Args {
	t.Helper()
	args, err := NewBuilder().
		Dhatu(d).
		Prayoga(prayoga).
		Purusha(purusha).
		Vacana(vacana).
		Lakara(lakara).
		Build()
	require.NoError(t, err)
	return args
}

func TestDeriveBhavatiLatKartariPrathamaEka(t *testing.T) {
	args := build(t, dhatu.New("BU", dhatu.Bhvadi), Kartari, Prathama, Eka, Lat)
	p, err := Derive(args)
	require.NoError(t, err)
	assert.Equal(t, "Bavati", p.Text())
}

func TestDeriveAkshnotiLatKartariPrathamaEka(t *testing.T) {
	args := build(t, dhatu.New("akzU~", dhatu.Svadi), Kartari, Prathama, Eka, Lat)
	p, err := Derive(args)
	require.NoError(t, err)
	assert.Equal(t, "akzRoti", p.Text())
}

func TestDeriveKrinatiLatKartariPrathamaEka(t *testing.T) {
	args := build(t, dhatu.New("qukrIY", dhatu.Kryadi), Kartari, Prathama, Eka, Lat)
	p, err := Derive(args)
	require.NoError(t, err)
	assert.Equal(t, "krIRAti", p.Text())
}

func TestDeriveJiyatAshirLinKartariPrathamaEka(t *testing.T) {
	args := build(t, dhatu.New("jyA\\", dhatu.Kryadi), Kartari, Prathama, Eka, AshirLin)
	p, err := Derive(args)
	require.NoError(t, err)
	assert.Equal(t, "jIyAt", p.Text())
}

func TestDeriveBabhuvaLitKartariPrathamaEka(t *testing.T) {
	args := build(t, dhatu.New("BU", dhatu.Bhvadi), Kartari, Prathama, Eka, Lit)
	p, err := Derive(args)
	require.NoError(t, err)
	assert.Equal(t, "baBUva", p.Text())
}

func TestDerivePaspardhyateYanKarmaniPrathamaEka(t *testing.T) {
	d := dhatu.New("sparDa~\\", dhatu.Bhvadi).WithSanadi(dhatu.Yan)
	args := build(t, d, Karmani, Prathama, Eka, Lat)
	p, err := Derive(args)
	require.NoError(t, err)
	assert.Equal(t, "pAsparDyate", p.Text())
}

func TestDeriveAllExploresSviOptionalSamprasarana(t *testing.T) {
	d := dhatu.New("Svi", dhatu.Bhvadi).WithSanadi(dhatu.Yan)
	args := build(t, d, Kartari, Prathama, Eka, Lat)
	prakriyas, err := DeriveAll(args)
	require.NoError(t, err)
	require.Len(t, prakriyas, 2)

	texts := map[string]bool{}
	for _, p := range prakriyas {
		texts[p.Text()] = true
	}
	assert.Len(t, texts, 2, "accept and decline branches of 6.1.30 should yield distinct surface forms")
}

func TestBuilderRejectsMissingFields(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)
}

func TestLookupTinEndingMissingCombinationIsNotFound(t *testing.T) {
	_, ok := lookupTinEnding(tinKey{Lut, Parasmaipada, Uttama, Bahu})
	assert.False(t, ok)
}

func TestLakaraSarvadhatukaClassification(t *testing.T) {
	assert.True(t, Lat.IsSarvadhatuka())
	assert.True(t, Lot.IsSarvadhatuka())
	assert.True(t, Lan.IsSarvadhatuka())
	assert.True(t, VidhiLin.IsSarvadhatuka())
	assert.False(t, Lit.IsSarvadhatuka())
	assert.False(t, AshirLin.IsSarvadhatuka())
}
