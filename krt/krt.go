// Package krt implements the kṛdanta (primary nominal-derivative) argument
// type and a deliberately scoped slice of the kṛt-pratyaya driver: the
// three aniṭ (augment-free) suffixes kta, ktavatu, and ktvā, all of which
// are kit and so need no iṭ-āgama or vikaraṇa-insertion machinery. The
// full kṛt enum spec.md §6 describes runs to roughly 120 values spanning
// participles that reuse the tiṅanta vikaraṇa table (Śatṛ, ŚAnac) and
// infinitive/agentive suffixes gated by the seṭ/aniṭ root classification
// (tavya, tumun, tṛc); both of those families are future work, noted in
// the grounding ledger rather than stubbed out here.
package krt

import "github.com/ambuda-org/vidyut-prakriya-go/prakriya"

// Krt is one of the closed set of krt-pratyayas this package derives.
type Krt int

const (
	Kta Krt = iota + 1
	Ktavatu
	KtvA
)

// krtSpec records a krt-pratyaya's already it-stripped surface text and
// whether it carries the Kit tag (1.1.5's guna/vrddhi blocker). Like
// tinanta's tin-ending table and subanta's sup-ending table, these are
// recorded pre-resolved rather than round-tripped through itsamjna, since
// the leading 'k' it-marker these three pratyayas share is outside
// itsamjna's current pratyayaLeadingConsonants set.
type krtSpec struct {
	text string
	kit  bool
}

var krtSpecs = map[Krt]krtSpec{
	Kta:     {text: "ta", kit: true},
	Ktavatu: {text: "tavat", kit: true},
	KtvA:    {text: "tvA", kit: true},
}

func (k Krt) String() string {
	switch k {
	case Kta:
		return "kta"
	case Ktavatu:
		return "ktavatu"
	case KtvA:
		return "ktvA"
	default:
		return "Krt(?)"
	}
}

// KrdantaArgs is the typed kṛdanta argument set: dhātu + kṛt-pratyaya, per
// spec.md §6.
type KrdantaArgs struct {
	krt Krt
}

// Krt returns the krt-pratyaya to use in the derivation.
func (a *KrdantaArgs) Krt() Krt { return a.krt }

// Builder is the chained-setter construction path for KrdantaArgs.
type Builder struct {
	krt Krt
}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Krt(k Krt) *Builder {
	b.krt = k
	return b
}

// Build validates the required krt field and returns KrdantaArgs.
func (b *Builder) Build() (*KrdantaArgs, error) {
	if b.krt == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "krt"}
	}
	return &KrdantaArgs{krt: b.krt}, nil
}
