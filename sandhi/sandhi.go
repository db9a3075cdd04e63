// Package sandhi implements the phonological-merger rule families the
// tiṅanta/subanta drivers call at fixed pipeline points: ac-sandhi (vowel
// junction across term boundaries, 6.1.x) and the two ṇatva rules of the
// tripādī (asiddha) block that convert dental n to retroflex ṇ.
//
// ac-sandhi operates on adjacent non-empty term boundaries via
// prakriya.CharView.ForNonEmptyTerms, never inside a single term's already
// settled text. ṇatva scans the flattened tape because its trigger (a
// preceding r or ṣ) and target can be separated by an intervening vowel or
// ku/pu consonant that ac-sandhi has already resolved by the time the
// tripādī block runs.
package sandhi

import (
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/sound"
)

// longFormOf maps a short vowel to its long savarna partner, used by
// SavarnaDirgha (6.1.101 akaH savarNe dIrghaH).
var longFormOf = map[sound.Sound]string{
	sound.A: "A", sound.AA: "A",
	sound.I: "I", sound.II: "I",
	sound.U: "U", sound.UU: "U",
	sound.F: "F", sound.FF: "F",
}

// isAOrAA reports whether r is a (hrasva) or A (dirgha).
func isAOrAA(r sound.Sound) bool { return r == sound.A || r == sound.AA }

// ApplyAcSandhi runs the ac-sandhi rule family once over every adjacent
// non-empty term boundary on p's tape, in the classical specific-before-
// general order: savarna-dirgha, guna-sandhi, vrddhi-sandhi, yan-adesha,
// then eco'yavAyAvaH. Each rule only fires at a boundary whose sounds it
// actually governs, so a single ordered pass is sufficient for the
// two-and-three-term tapes this engine's drivers build.
func ApplyAcSandhi(p *prakriya.Prakriya) {
	cv := prakriya.NewCharView(p)

	cv.ForNonEmptyTerms(savarnaDirghaFilter, savarnaDirghaOp)
	cv.ForNonEmptyTerms(gunaSandhiFilter, gunaSandhiOp)
	cv.ForNonEmptyTerms(vrddhiSandhiFilter, vrddhiSandhiOp)
	cv.ForNonEmptyTerms(yanAdeshaFilter, yanAdeshaOp)
	cv.ForNonEmptyTerms(ecoAyavAyavahFilter, ecoAyavAyavahOp)
}

func lastAndFirst(x, y *prakriya.Term) (sound.Sound, int, sound.Sound, int) {
	xr, xsize := sound.LastSound(x.Text)
	yr, ysize := sound.FirstSound(y.Text)
	return xr, xsize, yr, ysize
}

// savarnaDirghaFilter/Op implement 6.1.101: a savarna (homorganic) vowel
// pair at a term boundary merges into its long form.
func savarnaDirghaFilter(x, y *prakriya.Term) bool {
	xr, _, yr, _ := lastAndFirst(x, y)
	if !sound.IsVowel(xr) || !sound.IsVowel(yr) {
		return false
	}
	return sound.IsSavarna(xr, yr)
}

func savarnaDirghaOp(p *prakriya.Prakriya, i, j int) {
	p.Run("6.1.101", func(p *prakriya.Prakriya) {
		x, y := p.Get(i), p.Get(j)
		xr, xsize, _, ysize := lastAndFirst(x, y)
		long := longFormOf[xr]
		x.Text = x.Text[:len(x.Text)-xsize]
		y.Text = long + y.Text[ysize:]
	})
}

// gunaSandhiFilter/Op implement 6.1.87: a preceding a/A merges with a
// following ik vowel (i/I/u/U/f/F/x/X) into guna.
func gunaSandhiFilter(x, y *prakriya.Term) bool {
	xr, _, yr, _ := lastAndFirst(x, y)
	return isAOrAA(xr) && sound.IsIk(yr)
}

func gunaSandhiOp(p *prakriya.Prakriya, i, j int) {
	p.Run("6.1.87", func(p *prakriya.Prakriya) {
		x, y := p.Get(i), p.Get(j)
		_, xsize, yr, ysize := lastAndFirst(x, y)
		guna, _ := sound.GunaString(yr)
		x.Text = x.Text[:len(x.Text)-xsize]
		y.Text = guna + y.Text[ysize:]
	})
}

// vrddhiSandhiFilter/Op implement 6.1.88: a preceding a/A merges with a
// following ec vowel (e/ai/o/au) into vrddhi.
func vrddhiSandhiFilter(x, y *prakriya.Term) bool {
	xr, _, yr, _ := lastAndFirst(x, y)
	return isAOrAA(xr) && sound.IsEc(yr)
}

func vrddhiSandhiOp(p *prakriya.Prakriya, i, j int) {
	p.Run("6.1.88", func(p *prakriya.Prakriya) {
		x, y := p.Get(i), p.Get(j)
		_, xsize, yr, ysize := lastAndFirst(x, y)
		vrddhi, _ := sound.VrddhiString(yr)
		x.Text = x.Text[:len(x.Text)-xsize]
		y.Text = vrddhi + y.Text[ysize:]
	})
}

// yanAdeshaFilter/Op implement 6.1.77 (iko yaNaci): an ik vowel followed
// by a dissimilar vowel becomes the corresponding semivowel. y is
// untouched; only x's final vowel changes.
func yanAdeshaFilter(x, y *prakriya.Term) bool {
	xr, _, yr, _ := lastAndFirst(x, y)
	if !sound.IsIk(xr) || !sound.IsVowel(yr) {
		return false
	}
	return !sound.IsSavarna(xr, yr)
}

func yanAdeshaOp(p *prakriya.Prakriya, i, _ int) {
	p.Run("6.1.77", func(p *prakriya.Prakriya) {
		x := p.Get(i)
		xr, xsize := sound.LastSound(x.Text)
		semivowel, _ := sound.SemivowelOf(xr)
		x.Text = x.Text[:len(x.Text)-xsize] + string(semivowel)
	})
}

// ecoAyavAyavahFilter/Op implement 6.1.78 (eco'yavAyAvaH): an ec vowel
// (e/ai/o/au) followed by any vowel becomes ay/Ay/av/Av. y is untouched.
func ecoAyavAyavahFilter(x, y *prakriya.Term) bool {
	xr, _, yr, _ := lastAndFirst(x, y)
	return sound.IsEc(xr) && sound.IsVowel(yr)
}

var ecSubstitute = map[sound.Sound]string{
	sound.E: "ay", sound.AI: "Ay", sound.O: "av", sound.AU: "Av",
}

func ecoAyavAyavahOp(p *prakriya.Prakriya, i, _ int) {
	p.Run("6.1.78", func(p *prakriya.Prakriya) {
		x := p.Get(i)
		xr, xsize := sound.LastSound(x.Text)
		x.Text = x.Text[:len(x.Text)-xsize] + ecSubstitute[xr]
	})
}

// kuConsonants and puConsonants are the two sound groups 8.4.2 permits to
// intervene between a natva trigger (r/z) and its target n without
// blocking the rule.
var kuConsonants = map[byte]bool{'k': true, 'K': true, 'g': true, 'G': true, 'N': true}
var puConsonants = map[byte]bool{'p': true, 'P': true, 'b': true, 'B': true, 'm': true}

func isVowelByte(b byte) bool {
	return sound.IsVowel(rune(b))
}

// ApplyNatva implements 8.4.1 (raSAByAM no RaH samAnapade) and its
// extension 8.4.2 (aTa kupvoH): a dental n becomes retroflex R (our
// encoding for ṇ) when, scanning backward from it, the nearest preceding
// sound that is neither a vowel nor a ku/pu consonant is r or z (ṣ in this
// alphabet). Any other intervening consonant, or reaching the start of the
// text, blocks the rule. Each site is logged under its own rule id: 8.4.1
// when the trigger is the immediately preceding sound, 8.4.2 when a vowel
// or ku/pu consonant was crossed to reach it.
func ApplyNatva(p *prakriya.Prakriya) {
	bytesOut := []byte(p.Text())

	for i := 0; i < len(bytesOut); i++ {
		if bytesOut[i] != 'n' {
			continue
		}
		crossed, ok := triggersNatva(bytesOut, i)
		if !ok {
			continue
		}
		bytesOut[i] = 'R'

		ruleID := "8.4.1"
		if crossed {
			ruleID = "8.4.2"
		}
		snapshot := string(bytesOut)
		p.Run(ruleID, func(p *prakriya.Prakriya) {
			writeBack(p, snapshot)
		})
	}
}

// triggersNatva walks backward from index i (exclusive) looking for an r or
// z trigger across only permitted intervening sounds. It reports whether
// natva fires at all, and whether any sound was actually crossed to reach
// the trigger (false when the trigger is the immediately preceding sound).
func triggersNatva(text []byte, i int) (crossed, ok bool) {
	for j := i - 1; j >= 0; j-- {
		b := text[j]
		switch {
		case b == 'r' || b == 'z':
			return j != i-1, true
		case isVowelByte(b) || kuConsonants[b] || puConsonants[b]:
			crossed = true
			continue
		default:
			return false, false
		}
	}
	return false, false
}

// ApplyVisarga implements the pada-final half of 8.3.15 (kharavasAnayor
// visarjanIyaH): a dental s standing at the very end of the whole
// derivation (avasAna, before a pause) becomes visarga. The companion
// r-to-visarga half of that sutra (8.2.66 ff.) is not handled -- no
// driver built on this package yet produces a pada-final r.
func ApplyVisarga(p *prakriya.Prakriya) {
	text := p.Text()
	if len(text) == 0 || text[len(text)-1] != 's' {
		return
	}
	p.Run("8.3.15", func(p *prakriya.Prakriya) {
		writeBack(p, text[:len(text)-1]+"H")
	})
}

// writeBack distributes a full rewritten flattened string back across the
// tape's terms, preserving each term's original byte length. Used only by
// rules (like ApplyNatva) that compute their result over the flattened
// text but must still respect term boundaries for history/tag purposes.
func writeBack(p *prakriya.Prakriya, newText string) {
	pos := 0
	for _, t := range p.Terms() {
		n := len(t.Text)
		if n == 0 {
			continue
		}
		t.Text = newText[pos : pos+n]
		pos += n
	}
}
