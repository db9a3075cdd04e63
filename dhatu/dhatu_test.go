package dhatu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

func TestNewCreatesPlainDhatu(t *testing.T) {
	d := New("BU", Bhvadi)
	assert.Equal(t, "BU", d.Upadesha())
	assert.True(t, d.HasGana(Bhvadi))
	assert.False(t, d.IsNamadhatu())
	_, ok := d.Antargana()
	assert.False(t, ok)
}

func TestWithPrefixesAndSanadiDoNotMutateOriginal(t *testing.T) {
	base := New("qukf\\Y", Tanadi)
	withPrefix := base.WithPrefixes("pra")
	withSan := base.WithSanadi(San)

	assert.Empty(t, base.Prefixes())
	assert.Equal(t, []string{"pra"}, withPrefix.Prefixes())
	assert.Empty(t, base.Sanadi())
	assert.Equal(t, []Sanadi{San}, withSan.Sanadi())
}

func TestNewNamadhatuComposesUpadeshaAndStaysDistinctFromSanadi(t *testing.T) {
	d := NewNamadhatu("putra", Kyac)
	assert.True(t, d.IsNamadhatu())
	assert.Equal(t, "putrakyac", d.Upadesha())

	stem, suffix, ok := d.NamadhatuParts()
	require.True(t, ok)
	assert.Equal(t, "putra", stem)
	assert.Equal(t, Kyac, suffix)

	// A namadhatu suffix never appears in Sanadi()'s own list.
	assert.Empty(t, d.Sanadi())
}

func TestGanaFromIntRoundTrips(t *testing.T) {
	g, err := GanaFromInt(9)
	require.NoError(t, err)
	assert.Equal(t, Kryadi, g)
	assert.Equal(t, "Kryadi", g.String())

	_, err = GanaFromInt(11)
	require.Error(t, err)
	var parseErr *prakriya.ParseEnumError
	require.ErrorAs(t, err, &parseErr)
}

func TestBuilderRequiresUpadeshaAndGana(t *testing.T) {
	_, err := NewBuilder().Gana(Bhvadi).Build()
	require.Error(t, err)
	var missing *prakriya.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "upadesha", missing.Field)

	_, err = NewBuilder().Upadesha("BU").Build()
	require.Error(t, err)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "gana", missing.Field)
}

func TestBuilderBuildsFullDhatu(t *testing.T) {
	d, err := NewBuilder().
		Upadesha("juqa~").
		Gana(Tudadi).
		Antargana(Kutadi).
		Prefixes("sam").
		Sanadi(Nic).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "juqa~", d.Upadesha())
	ag, ok := d.Antargana()
	require.True(t, ok)
	assert.Equal(t, Kutadi, ag)
	assert.Equal(t, []string{"sam"}, d.Prefixes())
	assert.Equal(t, []Sanadi{Nic}, d.Sanadi())
}
