// Package chandas classifies a line of verse into its akshara (syllable)
// weights, the guru/laghu scheme a metrical identifier consumes. It is an
// external collaborator per spec.md §2 ("a metrical classifier that
// consumes syllable weights"), not part of the derivation engine itself --
// the engine produces surface text; this package only reads it.
package chandas

import "github.com/ambuda-org/vidyut-prakriya-go/sound"

// Weight is a syllable's metrical weight: laghu (light) or guru (heavy).
type Weight int

const (
	Laghu Weight = iota
	Guru
)

func (w Weight) String() string {
	if w == Guru {
		return "G"
	}
	return "L"
}

// Akshara is one syllable: its vowel-bearing nucleus text and its weight.
type Akshara struct {
	Text   string
	Weight Weight
}

// isSpecial reports whether r is anusvara or visarga, each of which makes
// a preceding short vowel guru regardless of what follows (a coda, not a
// true mora of its own).
func isSpecial(r sound.Sound) bool { return r == sound.M_ || r == sound.H_ }

// Scheme reports the guru/laghu weight of every vowel in text, in order,
// following the classical rule: a syllable is guru if its vowel is long,
// or if its vowel is short but followed by two consonants (a conjunct) or
// by anusvara/visarga; otherwise it is laghu.
func Scheme(text string) []Weight {
	runes := []rune(text)
	var out []Weight
	for i, r := range runes {
		if sound.IsLongVowel(r) {
			out = append(out, Guru)
			continue
		}
		if !sound.IsShortVowel(r) {
			continue
		}
		if i+2 < len(runes) && sound.IsConsonant(runes[i+1]) && sound.IsConsonant(runes[i+2]) {
			out = append(out, Guru)
		} else if i+1 < len(runes) && isSpecial(runes[i+1]) {
			out = append(out, Guru)
		} else {
			out = append(out, Laghu)
		}
	}
	return out
}

// ToAksharas splits text into syllables, one per vowel nucleus plus its
// leading consonant cluster, each tagged with Scheme's weight for that
// vowel.
func ToAksharas(text string) []Akshara {
	runes := []rune(text)
	weights := Scheme(text)

	var out []Akshara
	start := 0
	vowelIdx := 0
	for i, r := range runes {
		if !sound.IsVowel(r) {
			continue
		}
		end := i + 1
		// Trailing anusvara/visarga belongs to this syllable's coda.
		if end < len(runes) && isSpecial(runes[end]) {
			end++
		}
		out = append(out, Akshara{Text: string(runes[start:end]), Weight: weights[vowelIdx]})
		start = end
		vowelIdx++
	}
	return out
}
