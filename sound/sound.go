// Package sound defines the closed phonetic alphabet that the derivation
// engine operates on (an SLP1-like transliteration of Sanskrit) and exposes
// constant-time predicates over it: vowel/consonant classification, the
// Paninian pratyahara classes (ac, hal, iK, yaN, ...), and savarna
// (homorganic) equivalence.
//
// Every predicate here is a lookup against a precomputed table built once
// at package init from literal data; there is no runtime mutation.
package sound

import "unicode/utf8"

// Sound is a single phoneme in the internal alphabet, represented as the
// rune used by its SLP1-like encoding.
type Sound = rune

// Class is a named Paninian pratyahara or other closed sound grouping.
type Class string

// The pratyaharas and other classes this engine gates rules on.
const (
	Ac    Class = "ac"    // all vowels
	Hal   Class = "hal"   // all consonants
	IK    Class = "ik"    // i, u, f, x (short/long) -- samprasarana targets
	Ec    Class = "ec"    // e, o, E, ai/O -- diphthongs that undergo guna/vrddhi source
	Yan   Class = "yan"   // y, v, r, l -- semivowels that samprasarana replaces
	Jhal  Class = "jhal"  // obstruents (all stops, sibilants, h)
	Khay  Class = "khay"  // voiceless unaspirated + voiceless aspirated stops
	HaL   Class = "hal_"  // alias retained for call sites that spell it this way
	Vowel Class = "vowel"
	Short Class = "short-vowel"
	Long  Class = "long-vowel"
	Pluta Class = "pluta-vowel"
)

// The full SLP1-like inventory used by this engine.
const (
	A  Sound = 'a'
	AA Sound = 'A'
	I  Sound = 'i'
	II Sound = 'I'
	U  Sound = 'u'
	UU Sound = 'U'
	F  Sound = 'f' // vocalic r (short)
	FF Sound = 'F' // vocalic r (long)
	X  Sound = 'x' // vocalic l (short)
	XX Sound = 'X' // vocalic l (long)
	E  Sound = 'e'
	AI Sound = 'E' // ai
	O  Sound = 'o'
	AU Sound = 'O' // au

	K  Sound = 'k'
	KH Sound = 'K'
	G  Sound = 'g'
	GH Sound = 'G'
	NG Sound = 'N'

	C  Sound = 'c'
	CH Sound = 'C'
	J  Sound = 'j'
	JH Sound = 'J'
	NY Sound = 'Y'

	TT  Sound = 'w'
	TTH Sound = 'W'
	DD  Sound = 'q'
	DDH Sound = 'Q'
	NN  Sound = 'R'

	T  Sound = 't'
	TH Sound = 'T'
	D  Sound = 'd'
	DH Sound = 'D'
	N  Sound = 'n'

	P  Sound = 'p'
	PH Sound = 'P'
	B  Sound = 'b'
	BH Sound = 'B'
	M  Sound = 'm'

	Y  Sound = 'y'
	R  Sound = 'r'
	L  Sound = 'l'
	V  Sound = 'v'

	SH  Sound = 'z' // retroflex sibilant ṣ
	SSH Sound = 'S' // palatal sibilant ś
	S   Sound = 's'
	H   Sound = 'h'

	M_ Sound = 'M' // anusvara
	H_ Sound = 'H' // visarga
	AVAGRAHA Sound = '\''
)

var vowelSet = map[Sound]bool{
	A: true, AA: true, I: true, II: true, U: true, UU: true,
	F: true, FF: true, X: true, XX: true, E: true, AI: true, O: true, AU: true,
}

var shortVowelSet = map[Sound]bool{A: true, I: true, U: true, F: true, X: true}
var longVowelSet = map[Sound]bool{AA: true, II: true, UU: true, FF: true, XX: true, E: true, AI: true, O: true, AU: true}

// ikSet holds the four vowels that participate in samprasarana and guna/vrddhi
// as the "weak grade" (i, I, u, U, f, F, x, X) -- used by IK class membership.
var ikSet = map[Sound]bool{I: true, II: true, U: true, UU: true, F: true, FF: true, X: true, XX: true}

var ecSet = map[Sound]bool{E: true, AI: true, O: true, AU: true}

var yanSet = map[Sound]bool{Y: true, V: true, R: true, L: true}

// semivowelToVowel maps each yan consonant to the vowel samprasarana
// substitutes for it (6.1.15 - 6.1.19 and surrounding rules): y->i, v->u,
// r->f, l->x.
var semivowelToVowel = map[Sound]Sound{Y: I, V: U, R: F, L: X}

// vowelToSemivowel is the inverse mapping, used by guna/vrddhi consonantal
// contexts (ik -> yan before a following vowel).
var vowelToSemivowel = map[Sound]Sound{I: Y, II: Y, U: V, UU: V, F: R, FF: R, X: L, XX: L}

// gunaOf maps each ik vowel (and a, which is unaffected) to its guna form.
// F (vocalic r) and X (vocalic l) produce two-character sequences and are
// handled separately by GunaString.
var gunaOf = map[Sound]Sound{
	I: E, II: E, U: O, UU: O,
	A: A, AA: AA, E: E, AI: AI, O: O, AU: AU,
}

// vrddhiOf maps each ik/guna vowel to its vrddhi form.
var vrddhiOf = map[Sound]Sound{
	I: AI, II: AI, U: AU, UU: AU,
	A: AA, AA: AA, E: AI, O: AU, AI: AI, AU: AU,
}

var consonantSet = buildConsonantSet()

func buildConsonantSet() map[Sound]bool {
	cons := []Sound{
		K, KH, G, GH, NG,
		C, CH, J, JH, NY,
		TT, TTH, DD, DDH, NN,
		T, TH, D, DH, N,
		P, PH, B, BH, M,
		Y, R, L, V,
		SH, SSH, S, H,
		M_, H_,
	}
	out := make(map[Sound]bool, len(cons))
	for _, c := range cons {
		out[c] = true
	}
	return out
}

// jhalSet is the set of obstruents (hal minus semivowels and nasals):
// used by rules like 8.2.39 (jhalAM jaS jhazi) and 8.4.53 (jhalAM jaz jhazi).
var jhalSet = buildJhalSet()

func buildJhalSet() map[Sound]bool {
	cons := []Sound{
		K, KH, G, GH,
		C, CH, J, JH,
		TT, TTH, DD, DDH,
		T, TH, D, DH,
		P, PH, B, BH,
		SH, SSH, S, H,
	}
	out := make(map[Sound]bool, len(cons))
	for _, c := range cons {
		out[c] = true
	}
	return out
}

// savarnaClass groups sounds that are considered homorganic (savarna) for
// the purposes of 1.1.9 (tulyAsyaprayatnaM savarNam). Each inner slice is
// one equivalence class; short and long vowels of the same quality share a
// class, as do the five places of stop articulation.
var savarnaClasses = [][]Sound{
	{A, AA},
	{I, II, Y},
	{U, UU, V},
	{F, FF, R},
	{X, XX, L},
	{K, KH, G, GH, NG},
	{C, CH, J, JH, NY},
	{TT, TTH, DD, DDH, NN},
	{T, TH, D, DH, N},
	{P, PH, B, BH, M},
}

var savarnaIndex = buildSavarnaIndex()

func buildSavarnaIndex() map[Sound]int {
	idx := make(map[Sound]int)
	for i, cls := range savarnaClasses {
		for _, s := range cls {
			idx[s] = i
		}
	}
	return idx
}

// IsVowel reports whether s is a member of the ac pratyahara.
func IsVowel(s Sound) bool { return vowelSet[s] }

// IsConsonant reports whether s is a member of the hal pratyahara.
func IsConsonant(s Sound) bool { return consonantSet[s] }

// IsShortVowel reports whether s is a short (hrasva) vowel.
func IsShortVowel(s Sound) bool { return shortVowelSet[s] }

// IsLongVowel reports whether s is a long (dirgha) vowel, including the
// diphthongs e/ai/o/au which pattern as long for sandhi purposes.
func IsLongVowel(s Sound) bool { return longVowelSet[s] }

// IsIk reports whether s belongs to the iK pratyahara (i u f x, short or
// long): the class that undergoes guna, vrddhi, and samprasarana.
func IsIk(s Sound) bool { return ikSet[s] }

// IsEc reports whether s belongs to the ec pratyahara (e ai o au).
func IsEc(s Sound) bool { return ecSet[s] }

// IsYan reports whether s is a semivowel (y v r l).
func IsYan(s Sound) bool { return yanSet[s] }

// IsJhal reports whether s is an obstruent (jhal pratyahara).
func IsJhal(s Sound) bool { return jhalSet[s] }

// SamprasaranaOf returns the vowel that samprasarana (6.1.13 ff.)
// substitutes for the semivowel s, and true if s is a valid samprasarana
// trigger. y->i, v->u, r->f, l->x.
func SamprasaranaOf(s Sound) (Sound, bool) {
	v, ok := semivowelToVowel[s]
	return v, ok
}

// SemivowelOf returns the semivowel an ik vowel becomes before another
// vowel (used by yan-adesha and guna/vrddhi contexts).
func SemivowelOf(s Sound) (Sound, bool) {
	v, ok := vowelToSemivowel[s]
	return v, ok
}

// GunaString returns the guna (first-grade) substitute for vowel s as a
// string. F and X produce the two-character sequences "ar"/"al".
func GunaString(s Sound) (string, bool) {
	switch s {
	case F:
		return "ar", true
	case X:
		return "al", true
	}
	v, ok := gunaOf[s]
	if !ok {
		return "", false
	}
	return string(v), true
}

// VrddhiString returns the vrddhi (second-grade) substitute for vowel s.
func VrddhiString(s Sound) (string, bool) {
	switch s {
	case F:
		return "Ar", true
	case X:
		return "Al", true
	}
	v, ok := vrddhiOf[s]
	if !ok {
		return "", false
	}
	return string(v), true
}

// SavarnaOf returns an opaque class id such that two sounds are savarna
// (homorganic per 1.1.9) iff SavarnaOf returns the same id (and neither
// returns ok=false).
func SavarnaOf(s Sound) (int, bool) {
	id, ok := savarnaIndex[s]
	return id, ok
}

// IsSavarna reports whether a and b are savarna to each other.
func IsSavarna(a, b Sound) bool {
	ca, aok := SavarnaOf(a)
	cb, bok := SavarnaOf(b)
	return aok && bok && ca == cb
}

// IsIn reports whether s belongs to the named pratyahara/class.
func IsIn(s Sound, class Class) bool {
	switch class {
	case Ac, Vowel:
		return IsVowel(s)
	case Hal, HaL:
		return IsConsonant(s)
	case IK:
		return IsIk(s)
	case Ec:
		return IsEc(s)
	case Yan:
		return IsYan(s)
	case Jhal:
		return IsJhal(s)
	case Short:
		return IsShortVowel(s)
	case Long:
		return IsLongVowel(s)
	default:
		return false
	}
}

// Iterate returns every sound belonging to the named class, in a stable
// (ascii code point) order.
func Iterate(class Class) []Sound {
	var all []Sound
	switch class {
	case Ac, Vowel:
		all = setToSortedSlice(vowelSet)
	case Hal, HaL:
		all = setToSortedSlice(consonantSet)
	case IK:
		all = setToSortedSlice(ikSet)
	case Ec:
		all = setToSortedSlice(ecSet)
	case Yan:
		all = setToSortedSlice(yanSet)
	case Jhal:
		all = setToSortedSlice(jhalSet)
	}
	return all
}

func setToSortedSlice(m map[Sound]bool) []Sound {
	out := make([]Sound, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	// Insertion sort is fine: these sets never exceed ~50 elements.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// FirstSound returns the first sound (rune) of s and the byte width it
// occupies, or (0, 0) if s is empty. The alphabet is single-rune per sound
// except where Sound values are produced synthetically (e.g. GunaString),
// so this is a thin wrapper over utf8 decoding for text still in the
// one-rune-per-phoneme form.
func FirstSound(s string) (Sound, int) {
	if s == "" {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, size
}

// LastSound returns the last sound (rune) of s, or (0, 0) if s is empty.
func LastSound(s string) (Sound, int) {
	if s == "" {
		return 0, 0
	}
	r, size := utf8.DecodeLastRuneInString(s)
	return r, size
}
