// Package dhatu provides the typed verb-root argument type (Dhatu) that
// drivers in package tinanta consume, mirroring spec.md §4.1's "Dhatu
// (verb root)" and the upstream args::dhatu module this is ported from.
//
// A Dhatu is built either directly (New, for a root already in its
// aupadeshka/upadesha form plus its gana) or via Builder for the full set
// of optional fields (antargana, sanadi, prefixes). A nama-dhatu -- a verb
// root derived from a nominal stem via a suffix like kyac or kamyac, per
// spec.md §4.4's "initial sanadi stacking" -- is constructed separately via
// NewNamadhatu, since its upadesha is computed from a pratipadika rather
// than stated directly.
package dhatu

import (
	"strconv"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

// Gana is one of the ten traditional verb classes (dhatupatha ganas),
// which determine the vikarana (stem suffix) used before sarvadhatuka
// endings.
type Gana int

const (
	Bhvadi Gana = iota + 1
	Adadi
	Juhotyadi
	Divadi
	Svadi
	Tudadi
	Rudhadi
	Tanadi
	Kryadi
	Curadi
)

var ganaNames = map[Gana]string{
	Bhvadi: "Bhvadi", Adadi: "Adadi", Juhotyadi: "Juhotyadi", Divadi: "Divadi",
	Svadi: "Svadi", Tudadi: "Tudadi", Rudhadi: "Rudhadi", Tanadi: "Tanadi",
	Kryadi: "Kryadi", Curadi: "Curadi",
}

func (g Gana) String() string {
	if s, ok := ganaNames[g]; ok {
		return s
	}
	return "Gana(?)"
}

// GanaFromInt parses a 1-10 gana index as traditionally numbered in the
// dhatupatha.
func GanaFromInt(value int) (Gana, error) {
	if value < 1 || value > 10 {
		return 0, &prakriya.ParseEnumError{Enum: "Gana", Text: strconv.Itoa(value)}
	}
	return Gana(value), nil
}

// Antargana is a declared sub-class within a gana, needed to disambiguate
// dhatus that repeat across a gana's entries with different behavior (e.g.
// "juqa~" appears both inside and outside the kutadi antargana of tudadi).
type Antargana string

const (
	Kutadi   Antargana = "kutadi"
	Akusmiya Antargana = "akusmiya"
)

// Sanadi is one of the three common sanadi pratyayas that attach directly
// to a dhatu (rather than to a nama-dhatu stem) per 3.1.7-3.1.30.
type Sanadi string

const (
	San    Sanadi = "san"     // desiderative, 3.1.7: buBUzati
	Yan    Sanadi = "yaN"     // intensive, 3.1.22: boBUyate
	YanLuk Sanadi = "yaN-luk" // intensive with elision, 2.4.74: boBavIti
	Nic    Sanadi = "Ric"     // causal, 3.1.26: BAvayati
)

// NamadhatuSuffix is a pratyaya that turns a pratipadika into a nama-dhatu
// (a verb root derived from a nominal stem), per 3.1.8-3.1.12 and spec.md
// §4.4. Kept distinct from Sanadi: a nama-dhatu's suffix attaches to a
// pratipadika, not to an existing dhatu, so the two lists never mix on one
// Dhatu value.
type NamadhatuSuffix string

const (
	Kyac   NamadhatuSuffix = "kyac"  // putrakamyati-type: "wants X"
	Kamyac NamadhatuSuffix = "kAmyac"
	Kyan   NamadhatuSuffix = "kyaN" // putrIyati-type: "treats as X"
	Kvip   NamadhatuSuffix = "kvip"
)

// Dhatu is the verb root argument for a derivation.
type Dhatu struct {
	upadesha  string
	gana      Gana
	antargana Antargana // "" means unset
	sanadi    []Sanadi
	prefixes  []string

	// isNamadhatu is true when this Dhatu was constructed by NewNamadhatu;
	// namadhatuStem and namadhatuSuffix then record the pratipadika stem
	// and suffix it derives from for rules that need to see past the
	// computed upadesha.
	namadhatuStem   string
	namadhatuSuffix NamadhatuSuffix
	isNamadhatu     bool
}

// New creates a Dhatu already in its upadesha form with the given gana.
// For antargana, sanadi, or prefixes, use Builder instead.
func New(upadesha string, gana Gana) *Dhatu {
	return &Dhatu{upadesha: upadesha, gana: gana}
}

// NewNamadhatu builds a nama-dhatu: a dhatu derived from a nominal stem via
// one of the namadhatu suffixes. The resulting upadesha is the stem with
// the suffix's own upadesha form appended (the it-markers the suffix
// itself carries are stripped later by package itsamjna, same as any other
// pratyaya).
func NewNamadhatu(pratipadikaStem string, suffix NamadhatuSuffix) *Dhatu {
	return &Dhatu{
		upadesha:        pratipadikaStem + string(suffix),
		gana:            Curadi, // nama-dhatus conjugate as curadi (3.1.25's "Nicca" pattern generalizes to kyac/kAmyac too)
		namadhatuStem:   pratipadikaStem,
		namadhatuSuffix: suffix,
		isNamadhatu:     true,
	}
}

// Upadesha returns the dhatu's stated aupadeshika form.
func (d *Dhatu) Upadesha() string { return d.upadesha }

// Gana returns the dhatu's verb class.
func (d *Dhatu) Gana() Gana { return d.gana }

// Antargana returns the dhatu's declared sub-class, and false if none was
// set.
func (d *Dhatu) Antargana() (Antargana, bool) { return d.antargana, d.antargana != "" }

// Sanadi returns the sanadi pratyayas to stack onto this dhatu, in order.
func (d *Dhatu) Sanadi() []Sanadi { return d.sanadi }

// Prefixes returns the upasarga/gati prefixes to attach before the dhatu.
func (d *Dhatu) Prefixes() []string { return d.prefixes }

// HasGana reports whether the dhatu belongs to gana.
func (d *Dhatu) HasGana(gana Gana) bool { return d.gana == gana }

// IsNamadhatu reports whether this dhatu was derived from a pratipadika via
// NewNamadhatu.
func (d *Dhatu) IsNamadhatu() bool { return d.isNamadhatu }

// NamadhatuParts returns the pratipadika stem and suffix this nama-dhatu
// was derived from, and false if this dhatu is not a nama-dhatu.
func (d *Dhatu) NamadhatuParts() (string, NamadhatuSuffix, bool) {
	return d.namadhatuStem, d.namadhatuSuffix, d.isNamadhatu
}

// WithPrefixes returns a copy of d with its prefixes replaced.
func (d *Dhatu) WithPrefixes(values ...string) *Dhatu {
	cp := *d
	cp.prefixes = append([]string(nil), values...)
	return &cp
}

// WithSanadi returns a copy of d with its sanadi pratyayas replaced.
func (d *Dhatu) WithSanadi(values ...Sanadi) *Dhatu {
	cp := *d
	cp.sanadi = append([]Sanadi(nil), values...)
	return &cp
}

// WithAntargana returns a copy of d with its antargana set.
func (d *Dhatu) WithAntargana(a Antargana) *Dhatu {
	cp := *d
	cp.antargana = a
	return &cp
}

// NewBuilder returns a new Builder for constructing a Dhatu field by field.
func NewBuilder() *Builder { return &Builder{} }

// Builder is the chained-setter construction path for Dhatu, for callers
// that want to set antargana/sanadi/prefixes without New's two-argument
// shortcut.
type Builder struct {
	upadesha  *string
	gana      *Gana
	antargana Antargana
	sanadi    []Sanadi
	prefixes  []string
}

// Upadesha sets the dhatu's aupadeshika form.
func (b *Builder) Upadesha(text string) *Builder {
	b.upadesha = &text
	return b
}

// Gana sets the dhatu's verb class.
func (b *Builder) Gana(g Gana) *Builder {
	b.gana = &g
	return b
}

// Antargana sets the dhatu's declared sub-class.
func (b *Builder) Antargana(a Antargana) *Builder {
	b.antargana = a
	return b
}

// Sanadi sets the sanadi pratyayas to stack onto the dhatu.
func (b *Builder) Sanadi(values ...Sanadi) *Builder {
	b.sanadi = append([]Sanadi(nil), values...)
	return b
}

// Prefixes sets the upasarga/gati prefixes to attach before the dhatu.
func (b *Builder) Prefixes(values ...string) *Builder {
	b.prefixes = append([]string(nil), values...)
	return b
}

// Build validates the required fields and returns the Dhatu, or a
// *prakriya.MissingRequiredFieldError if upadesha or gana was never set.
func (b *Builder) Build() (*Dhatu, error) {
	if b.upadesha == nil {
		return nil, &prakriya.MissingRequiredFieldError{Field: "upadesha"}
	}
	if b.gana == nil {
		return nil, &prakriya.MissingRequiredFieldError{Field: "gana"}
	}
	return &Dhatu{
		upadesha:  *b.upadesha,
		gana:      *b.gana,
		antargana: b.antargana,
		sanadi:    b.sanadi,
		prefixes:  b.prefixes,
	}, nil
}

