package prakriya

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAppendsHistory(t *testing.T) {
	p := New(DefaultConfig())
	p.Push(NewTerm("BU"))
	p.Push(NewTerm("a"))

	p.Run("1.3.2", func(p *Prakriya) {
		p.Get(1).Text = "ti"
	})

	require.Len(t, p.History(), 1)
	assert.Equal(t, "1.3.2", p.History()[0].Rule)
	assert.Equal(t, "BUti", p.Text())
}

func TestRunOptionalRecordsDecisionAndAppliesOnAccept(t *testing.T) {
	p := New(DefaultConfig())
	p.Push(NewTerm("gam"))

	accepted := p.RunOptional("2.4.80", func(p *Prakriya) {
		p.Get(0).Text = "ga"
	})

	assert.True(t, accepted, "default decision should be Accept")
	assert.Equal(t, "ga", p.Text())
	require.Len(t, p.RuleChoices(), 1)
	assert.Equal(t, RuleChoice{Rule: "2.4.80", Decision: Accept}, p.RuleChoices()[0])
}

func TestRunOptionalHonorsPinnedDecline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RuleChoices = []RuleChoice{{Rule: "2.4.80", Decision: Decline}}
	p := New(cfg)
	p.Push(NewTerm("gam"))

	accepted := p.RunOptional("2.4.80", func(p *Prakriya) {
		p.Get(0).Text = "ga"
	})

	assert.False(t, accepted)
	assert.Equal(t, "gam", p.Text(), "declined rule must not mutate the tape")
}

func TestRunOptionalIsIdempotentAcrossPinnedReplay(t *testing.T) {
	// Replaying the exact same rule_decisions must reproduce identical
	// output text and rule choices (spec.md §8 property 4).
	p1 := New(DefaultConfig())
	p1.Push(NewTerm("i"))
	p1.RunOptional("6.4.82", func(p *Prakriya) { p.Get(0).Text = "y" })
	p1.RunOptional("7.3.101", func(p *Prakriya) { p.Get(0).Text += "A" })

	cfg2 := DefaultConfig()
	cfg2.RuleChoices = p1.RuleChoices()
	p2 := New(cfg2)
	p2.Push(NewTerm("i"))
	p2.RunOptional("6.4.82", func(p *Prakriya) { p.Get(0).Text = "y" })
	p2.RunOptional("7.3.101", func(p *Prakriya) { p.Get(0).Text += "A" })

	assert.Equal(t, p1.Text(), p2.Text())
	assert.Equal(t, p1.RuleChoices(), p2.RuleChoices())
}

func TestStepLogsWithoutMutating(t *testing.T) {
	p := New(DefaultConfig())
	p.Push(NewTerm("kf"))
	before := p.Text()

	p.Step("1.1.1")

	assert.Equal(t, before, p.Text())
	require.Len(t, p.History(), 1)
	assert.Equal(t, "1.1.1", p.History()[0].Rule)
}

func TestLogStepsDisabledSuppressesHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogSteps = false
	p := New(cfg)
	p.Push(NewTerm("kf"))

	p.Run("1.1.1", func(p *Prakriya) { p.Get(0).Text = "kar" })

	assert.Empty(t, p.History())
	assert.Equal(t, "kar", p.Text())
}

func TestFindFirstAndLastWhere(t *testing.T) {
	p := New(DefaultConfig())
	dhatu := NewTerm("BU")
	dhatu.AddTag(TagDhatu)
	pratyaya := NewTerm("ti")
	pratyaya.AddTag(TagTin)
	p.Push(dhatu)
	p.Push(pratyaya)

	i := p.FindFirstWhere(func(t *Term) bool { return t.HasTag(TagDhatu) })
	assert.Equal(t, 0, i)

	j := p.FindLastWhere(func(t *Term) bool { return t.HasTag(TagTin) })
	assert.Equal(t, 1, j)

	k := p.FindFirstWhere(func(t *Term) bool { return t.HasTag(TagKrt) })
	assert.Equal(t, -1, k)
}

func TestInsertBeforeAfter(t *testing.T) {
	p := New(DefaultConfig())
	p.Push(NewTerm("gam"))
	p.Push(NewTerm("ti"))

	p.InsertBefore(1, NewTerm("Sa"))
	assert.Equal(t, "gamSati", p.Text())

	p.InsertAfter(2, NewTerm("m"))
	assert.Equal(t, "gamSatim", p.Text())
}

func TestAbortCarriesChoices(t *testing.T) {
	p := New(DefaultConfig())
	p.RunOptional("3.1.1", func(p *Prakriya) {})

	err := p.Abort("zero terms after seeding")
	var abortErr *AbortError
	require.ErrorAs(t, err, &abortErr)
	assert.Len(t, abortErr.Choices, 1)
	assert.Equal(t, "3.1.1", abortErr.Choices[0].Rule)
}
