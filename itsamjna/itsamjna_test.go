package itsamjna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

func TestSetupDhatuPlainRootKeepsFinalVowel(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("BU")
	require.NoError(t, SetupDhatu(term))
	assert.Equal(t, "BU", term.Text)
	assert.False(t, term.HasTag(prakriya.TagUDit))
}

func TestSetupDhatuStripsLeadingDigraphAndTrailingYit(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("qukfY")
	require.NoError(t, SetupDhatu(term))
	assert.Equal(t, "kf", term.Text)
	assert.True(t, term.HasTag(prakriya.TagYit))
}

func TestSetupDhatuStripsAccentThenLeadingAndTrailingMarkers(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("qukrI\\Y")
	require.NoError(t, SetupDhatu(term))
	assert.Equal(t, "krI", term.Text)
	assert.True(t, term.HasTag(prakriya.TagYit))
	assert.True(t, term.HasTag(prakriya.TagAnudatta))
}

func TestSetupDhatuStripsNasalizedTrailingVowel(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("sparDa~\\")
	require.NoError(t, SetupDhatu(term))
	assert.Equal(t, "sparD", term.Text)
	assert.True(t, term.HasTag(prakriya.TagAdit))
	assert.True(t, term.HasTag(prakriya.TagAnudatta))
}

func TestSetupDhatuStripsTrailingNasalizedUdit(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("akzU~")
	require.NoError(t, SetupDhatu(term))
	assert.Equal(t, "akz", term.Text)
	assert.True(t, term.HasTag(prakriya.TagUDit))
}

func TestSetupPratyayaStripsLeadingSitAndTrailingPit(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("Sap")
	require.NoError(t, SetupPratyaya(term))
	assert.Equal(t, "a", term.Text)
	assert.True(t, term.HasTag(prakriya.TagSit))
	assert.True(t, term.HasTag(prakriya.TagPit))
}

func TestSetupPratyayaWithNoMarkersIsUnchanged(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("ti")
	require.NoError(t, SetupPratyaya(term))
	assert.Equal(t, "ti", term.Text)
	assert.Empty(t, term.Tags())
}

func TestSetupRejectsUnknownAnubandhaLetter(t *testing.T) {
	term := prakriya.NewUpadeshaTerm("gab")
	err := Setup(term, false)
	require.Error(t, err)
	var unknownErr *prakriya.UnknownItError
	require.ErrorAs(t, err, &unknownErr)
}

func TestAssignGhuTagsKnownGhuDhatus(t *testing.T) {
	term := prakriya.NewTerm("DA")
	AssignGhu(term)
	assert.True(t, term.HasTag(prakriya.TagGhu))

	other := prakriya.NewTerm("BU")
	AssignGhu(other)
	assert.False(t, other.HasTag(prakriya.TagGhu))
}

func TestAssignBhaRequiresNonYVowelSuffix(t *testing.T) {
	term := prakriya.NewTerm("rAjan")
	AssignBha(term, "A")
	assert.True(t, term.HasTag(prakriya.TagBha))

	other := prakriya.NewTerm("rAjan")
	AssignBha(other, "yA")
	assert.False(t, other.HasTag(prakriya.TagBha))
}
