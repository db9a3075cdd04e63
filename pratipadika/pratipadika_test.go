package pratipadika

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

func TestFromPlainText(t *testing.T) {
	deva := From("deva")
	assert.Equal(t, "deva", deva.Text())
	assert.False(t, deva.IsDhatu())
}

func TestBuilderWithIsDhatu(t *testing.T) {
	senani, err := NewBuilder().Text("senAnI").IsDhatu(true).Build()
	require.NoError(t, err)
	assert.Equal(t, "senAnI", senani.Text())
	assert.True(t, senani.IsDhatu())
}

func TestBuilderRequiresText(t *testing.T) {
	_, err := NewBuilder().IsDhatu(true).Build()
	require.Error(t, err)
	var missing *prakriya.MissingRequiredFieldError
	require.ErrorAs(t, err, &missing)
}

func TestFromTermsAcceptsKrtTaddhitaSamasaOrNyap(t *testing.T) {
	krtTerm := prakriya.NewTerm("kartf")
	krtTerm.AddTag(prakriya.TagKrt)
	p, ok := FromTerms([]*prakriya.Term{krtTerm})
	require.True(t, ok)
	assert.Equal(t, "kartf", p.Text())

	for _, tag := range []prakriya.Tag{prakriya.TagTaddhita, prakriya.TagSamasa, prakriya.TagStriNyap} {
		term := prakriya.NewTerm("guRatA")
		term.AddTag(tag)
		_, ok := FromTerms([]*prakriya.Term{term})
		assert.True(t, ok)
	}
}

func TestFromTermsRejectsBareDhatuOrPratyaya(t *testing.T) {
	dhatuTerm := prakriya.NewTerm("BU")
	dhatuTerm.AddTag(prakriya.TagDhatu)
	_, ok := FromTerms([]*prakriya.Term{dhatuTerm})
	assert.False(t, ok)

	pratyayaTerm := prakriya.NewTerm("ti")
	pratyayaTerm.AddTag(prakriya.TagPratyaya)
	_, ok = FromTerms([]*prakriya.Term{pratyayaTerm})
	assert.False(t, ok)
}

func TestNeedsNyap(t *testing.T) {
	p, err := NewBuilder().Text("senA").IsNyap(true).Build()
	require.NoError(t, err)
	assert.True(t, p.NeedsNyap())
}
