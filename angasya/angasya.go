// Package angasya implements the stem-alternation (anga-karya) rule
// family the tiṅanta/subanta/krdanta drivers invoke on the stem term
// immediately before a pratyaya is finally settled: guṇa/vṛddhi
// strengthening, samprasāraṇa (semivowel-to-vowel substitution), and
// dvitva (reduplication) for liṭ/san/yaṅ formations.
//
// Every operation here respects the lifecycle flags a driver may have
// already set on the anga term (FlagNoGuna, FlagNoVrddhi, FlagGunaApavada,
// ...) so that an earlier apavada (exception) rule can block a later
// general rule without angasya needing to know why.
package angasya

import (
	"strings"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/sound"
)

// IsGunaBlocked reports whether t carries a flag that forbids guna.
func IsGunaBlocked(t *prakriya.Term) bool {
	return t.HasAnyTag(prakriya.TagFlagNoGuna, prakriya.TagFlagGunaApavada)
}

// IsVrddhiBlocked reports whether t carries a flag that forbids vrddhi.
func IsVrddhiBlocked(t *prakriya.Term) bool {
	return t.HasTag(prakriya.TagFlagNoVrddhi)
}

// TryGuna applies guna to the final vowel of the term at index if it is an
// ik vowel and the term is not flagged against guna, logging under ruleID.
// It reports whether the substitution happened.
func TryGuna(p *prakriya.Prakriya, index int, ruleID string) bool {
	t := p.Get(index)
	if t == nil || IsGunaBlocked(t) {
		return false
	}
	last, size := sound.LastSound(t.Text)
	if !sound.IsIk(last) {
		return false
	}
	guna, ok := sound.GunaString(last)
	if !ok {
		return false
	}
	p.Run(ruleID, func(p *prakriya.Prakriya) {
		term := p.Get(index)
		term.Text = term.Text[:len(term.Text)-size] + guna
		term.AddTag(prakriya.TagFlagGuna)
	})
	return true
}

// TryVrddhi applies vrddhi to the final vowel of the term at index if it is
// an ik or ec vowel and the term is not flagged against vrddhi.
func TryVrddhi(p *prakriya.Prakriya, index int, ruleID string) bool {
	t := p.Get(index)
	if t == nil || IsVrddhiBlocked(t) {
		return false
	}
	last, size := sound.LastSound(t.Text)
	if !sound.IsIk(last) && !sound.IsEc(last) {
		return false
	}
	vrddhi, ok := sound.VrddhiString(last)
	if !ok {
		return false
	}
	p.Run(ruleID, func(p *prakriya.Prakriya) {
		term := p.Get(index)
		term.Text = term.Text[:len(term.Text)-size] + vrddhi
		term.AddTag(prakriya.TagFlagVrddhi)
	})
	return true
}

// ApplySarvadhatukaGuna applies guna (7.3.84 sArvadhAtukArdhadhAtukayoH) to
// the term at index, deciding by the immediately following term at
// followingIndex; when there is no term there, guna is tried without any
// block. Per 1.2.4 (sArvadhAtukam apit) a sarvadhatuka/ardhadhatuka
// pratyaya that itself carries no pit marker behaves as Nit and so, per
// 1.1.5 (kNiti ca), blocks guna/vrddhi on what precedes it instead of
// allowing it; this is flagged onto the term (FlagNoGuna) under
// blockRuleID rather than silently skipped, so the block shows up in the
// derivation history same as any other rule firing. Reports whether guna
// was actually applied.
func ApplySarvadhatukaGuna(p *prakriya.Prakriya, index, followingIndex int, blockRuleID, gunaRuleID string) bool {
	following := p.Get(followingIndex)
	if following == nil {
		return TryGuna(p, index, gunaRuleID)
	}
	if !following.HasTag(prakriya.TagPit) {
		p.Run(blockRuleID, func(p *prakriya.Prakriya) {
			p.Get(index).AddTag(prakriya.TagFlagNoGuna)
		})
		return false
	}
	return TryGuna(p, index, gunaRuleID)
}

// firstSemivowelIndex returns the byte offset of the first yan semivowel
// (y/v/r/l) in text, or -1 if none is present.
func firstSemivowelIndex(text string) int {
	for i, r := range text {
		if sound.IsYan(r) {
			return i
		}
	}
	return -1
}

// ApplySamprasarana converts the first semivowel in the term at index into
// its corresponding vowel (6.1.15 ff.), gated on the term carrying
// FlagSamprasarana. When the resulting vowel is immediately followed by A
// (long a) -- the -yA/-vA root pattern seen in roots like jyA, vyA, hvA --
// the two merge into the matching long ik vowel per the samprasarana-
// specific dirgha sandhi of 6.1.108, which (unlike general savarna-dirgha)
// applies even though i/u and A are not savarna. Any other following vowel
// is left untouched. Reports whether anything changed.
func ApplySamprasarana(p *prakriya.Prakriya, index int, ruleID string) bool {
	t := p.Get(index)
	if t == nil || !t.HasTag(prakriya.TagFlagSamprasarana) {
		return false
	}
	idx := firstSemivowelIndex(t.Text)
	if idx < 0 {
		return false
	}
	semivowel, size := sound.FirstSound(t.Text[idx:])
	vowel, ok := sound.SamprasaranaOf(semivowel)
	if !ok {
		return false
	}
	p.Run(ruleID, func(p *prakriya.Prakriya) {
		term := p.Get(index)
		before := term.Text[:idx]
		after := term.Text[idx+size:]
		replacement := string(vowel)

		nextVowel, nextSize := sound.FirstSound(after)
		if nextVowel == sound.AA {
			replacement = longFormOfIk(vowel)
			after = after[nextSize:]
		}
		term.Text = before + replacement + after
	})
	return true
}

// longFormOfIk returns the long counterpart of a short ik vowel.
func longFormOfIk(v sound.Sound) string {
	switch v {
	case sound.I, sound.II:
		return "I"
	case sound.U, sound.UU:
		return "U"
	case sound.F, sound.FF:
		return "F"
	case sound.X, sound.XX:
		return "X"
	default:
		return string(v)
	}
}

// aspirateDemotion maps an aspirated stop to its unaspirated counterpart,
// used by dvitva's abhyasa-consonant simplification.
var aspirateDemotion = map[rune]rune{
	sound.KH: sound.K, sound.GH: sound.G,
	sound.CH: sound.C, sound.JH: sound.J,
	sound.TTH: sound.TT, sound.DDH: sound.DD,
	sound.TH: sound.T, sound.DH: sound.D,
	sound.PH: sound.P, sound.BH: sound.B,
}

// shortVowelOf maps a long vowel or diphthong to the vowel its abhyasa
// copy takes (7.4.59-60): long vowels shorten; diphthongs reduce to their
// corresponding ik vowel (e/E -> i, o/O -> u).
var shortVowelOf = map[rune]rune{
	sound.AA: sound.A, sound.II: sound.I, sound.UU: sound.U, sound.FF: sound.F,
	sound.E: sound.I, sound.AI: sound.I, sound.O: sound.U, sound.AU: sound.U,
}

func shortenAbhyasaVowel(v rune) rune {
	if s, ok := shortVowelOf[v]; ok {
		return s
	}
	return v
}

// firstSyllable splits text into its leading consonant cluster, its first
// vowel, and everything after that vowel.
func firstSyllable(text string) (consonants string, vowel rune, rest string) {
	var b strings.Builder
	runes := []rune(text)
	i := 0
	for ; i < len(runes); i++ {
		if sound.IsVowel(runes[i]) {
			vowel = runes[i]
			rest = string(runes[i+1:])
			return b.String(), vowel, rest
		}
		b.WriteRune(runes[i])
	}
	return b.String(), 0, ""
}

// ApplyDvitva reduplicates the term at dhatuIndex (6.1.1 ekAco dve
// prathamasya), inserting a new abhyasa term before it. Per 7.4.60
// (halAdiH Sesah) the abhyasa keeps only the first consonant of the
// original cluster; per 7.4.59-60 its vowel shortens (or, for a
// diphthong, reduces to the corresponding ik vowel); aspirated
// consonants demote to their unaspirated counterpart. Returns the index
// of the newly inserted abhyasa term.
func ApplyDvitva(p *prakriya.Prakriya, dhatuIndex int, ruleID string) int {
	newIndex := dhatuIndex
	p.Run(ruleID, func(p *prakriya.Prakriya) {
		dhatu := p.Get(dhatuIndex)
		consonants, vowel, _ := firstSyllable(dhatu.Text)

		abhyasaConsonant := ""
		if len(consonants) > 0 {
			first := []rune(consonants)[0]
			if demoted, ok := aspirateDemotion[first]; ok {
				first = demoted
			}
			abhyasaConsonant = string(first)
		}
		abhyasaVowel := string(shortenAbhyasaVowel(vowel))

		abhyasa := prakriya.NewTerm(abhyasaConsonant + abhyasaVowel)
		abhyasa.AddTag(prakriya.TagAbhyasa)
		p.InsertBefore(dhatuIndex, abhyasa)
	})
	return newIndex
}
