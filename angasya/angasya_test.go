package angasya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

func newSingleTermTape(text string) (*prakriya.Prakriya, int) {
	p := prakriya.New(prakriya.DefaultConfig())
	p.Push(prakriya.NewTerm(text))
	return p, 0
}

func TestTryGunaStrengthensFinalIkVowel(t *testing.T) {
	p, i := newSingleTermTape("BU")
	ok := TryGuna(p, i, "7.3.84")
	require.True(t, ok)
	assert.Equal(t, "Bo", p.Get(i).Text)
	assert.True(t, p.Get(i).HasTag(prakriya.TagFlagGuna))
}

func TestTryGunaRespectsNoGunaFlag(t *testing.T) {
	p, i := newSingleTermTape("BU")
	p.Get(i).AddTag(prakriya.TagFlagNoGuna)
	ok := TryGuna(p, i, "7.3.84")
	assert.False(t, ok)
	assert.Equal(t, "BU", p.Get(i).Text)
}

func TestTryGunaNoOpOnNonIkFinalVowel(t *testing.T) {
	p, i := newSingleTermTape("kft")
	ok := TryGuna(p, i, "7.3.84")
	assert.False(t, ok)
}

func TestTryVrddhiStrengthensFinalVowel(t *testing.T) {
	p, i := newSingleTermTape("ci")
	ok := TryVrddhi(p, i, "7.2.115")
	require.True(t, ok)
	assert.Equal(t, "cE", p.Get(i).Text)
}

func TestApplySamprasaranaConvertsLeadingSemivowel(t *testing.T) {
	// v -> u; the following short a is not the A this rule merges with, so
	// it is left in place.
	p, i := newSingleTermTape("vac")
	p.Get(i).AddTag(prakriya.TagFlagSamprasarana)
	ok := ApplySamprasarana(p, i, "6.1.15")
	require.True(t, ok)
	assert.Equal(t, "uac", p.Get(i).Text)
}

func TestApplySamprasaranaMergesWithFollowingVowel(t *testing.T) {
	p, i := newSingleTermTape("jyA")
	p.Get(i).AddTag(prakriya.TagFlagSamprasarana)
	ok := ApplySamprasarana(p, i, "6.1.108")
	require.True(t, ok)
	assert.Equal(t, "jI", p.Get(i).Text)
}

func TestApplySamprasaranaNoOpWithoutFlag(t *testing.T) {
	p, i := newSingleTermTape("vac")
	ok := ApplySamprasarana(p, i, "6.1.15")
	assert.False(t, ok)
	assert.Equal(t, "vac", p.Get(i).Text)
}

func TestApplyDvitvaInsertsShortenedUnaspiratedAbhyasa(t *testing.T) {
	p := prakriya.New(prakriya.DefaultConfig())
	p.Push(prakriya.NewTerm("BU"))
	abhyasaIndex := ApplyDvitva(p, 0, "6.1.1")
	assert.Equal(t, "bu", p.Get(abhyasaIndex).Text)
	assert.True(t, p.Get(abhyasaIndex).HasTag(prakriya.TagAbhyasa))
	assert.Equal(t, "BU", p.Get(abhyasaIndex+1).Text)
	assert.Equal(t, "buBU", p.Text())
}

func TestApplyDvitvaOnConsonantClusterKeepsOnlyFirstConsonant(t *testing.T) {
	p := prakriya.New(prakriya.DefaultConfig())
	p.Push(prakriya.NewTerm("kranT"))
	abhyasaIndex := ApplyDvitva(p, 0, "6.1.1")
	assert.Equal(t, "ka", p.Get(abhyasaIndex).Text)
}
