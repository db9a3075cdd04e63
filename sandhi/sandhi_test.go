package sandhi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

func newTape(texts ...string) *prakriya.Prakriya {
	p := prakriya.New(prakriya.DefaultConfig())
	for _, t := range texts {
		p.Push(prakriya.NewTerm(t))
	}
	return p
}

func TestEcoAyavAyavahProducesBavatiFromBoAti(t *testing.T) {
	p := newTape("Bo", "a", "ti")
	ApplyAcSandhi(p)
	assert.Equal(t, "Bavati", p.Text())
}

func TestSavarnaDirghaMergesLikeVowels(t *testing.T) {
	p := newTape("rAma", "asya")
	ApplyAcSandhi(p)
	assert.Equal(t, "rAmAsya", p.Text())
}

func TestGunaSandhiMergesAPlusIkVowel(t *testing.T) {
	p := newTape("upa", "iti")
	ApplyAcSandhi(p)
	assert.Equal(t, "upeti", p.Text())
}

func TestVrddhiSandhiMergesAPlusEcVowel(t *testing.T) {
	p := newTape("ca", "eva")
	ApplyAcSandhi(p)
	assert.Equal(t, "cEva", p.Text())
}

func TestYanAdeshaConvertsIkVowelToSemivowel(t *testing.T) {
	p := newTape("daDi", "atra")
	ApplyAcSandhi(p)
	assert.Equal(t, "daDyatra", p.Text())
}

func TestApplyNatvaImmediateAdjacency(t *testing.T) {
	// akz + no (snu-vikarana guna) + ti: z immediately precedes n.
	p := newTape("akz", "no", "ti")
	ApplyNatva(p)
	assert.Equal(t, "akzRoti", p.Text())
}

func TestApplyNatvaAcrossInterveningVowel(t *testing.T) {
	// krI + nA + ti: the r of "kr" is separated from n by the vowel I.
	p := newTape("krI", "nA", "ti")
	ApplyNatva(p)
	assert.Equal(t, "krIRAti", p.Text())
}

func TestApplyNatvaBlockedByInterveningConsonant(t *testing.T) {
	// A disqualifying consonant (here, d) between r and n blocks retroflexion.
	p := newTape("rad", "ana")
	before := p.Text()
	ApplyNatva(p)
	assert.Equal(t, before, p.Text())
}

func TestApplyNatvaNoTriggerLeavesDentalNUnchanged(t *testing.T) {
	p := newTape("gacCana", "ti")
	ApplyNatva(p)
	assert.Equal(t, "gacCanati", p.Text())
}
