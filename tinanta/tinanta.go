// Package tinanta implements the finite-verb (tiṅanta) argument type and
// derivation driver (C5), the pipeline spec.md §4.5 describes in twelve
// canonical phases: seed dhātu, sanādi, lakāra insertion, tiṅ-ending
// replacement, vikaraṇa insertion, the liṭ/āśīrliṅ siddhi block, the
// ārdhadhātuka block, reduplication, the sārvadhātuka various-dhātu pass,
// aṅgasya rules, sandhi, and finally the tripādī asiddha block.
package tinanta

import (
	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

// Lakara is one of the ten (traditionally) tense/mood slots a tinanta
// derivation is built for.
type Lakara int

const (
	Lat Lakara = iota + 1
	Lit
	Lut
	Lrt
	Lot
	Lan
	VidhiLin
	AshirLin
	Lun
	Lrn
	Let
)

var lakaraNames = map[Lakara]string{
	Lat: "laT", Lit: "liT", Lut: "luT", Lrt: "lfT", Lot: "loT", Lan: "laN",
	VidhiLin: "vidhi-liN", AshirLin: "ASIr-liN", Lun: "luN", Lrn: "lfN", Let: "leT",
}

func (l Lakara) String() string {
	if s, ok := lakaraNames[l]; ok {
		return s
	}
	return "Lakara(?)"
}

// IsSarvadhatuka reports whether l belongs to the sarvadhatuka class of
// lakaras (laT, loT, laN, vidhi-liN), as opposed to the ardhadhatuka class
// (liT, luT, lfT, ASIr-liN, luN, lfN, leT).
func (l Lakara) IsSarvadhatuka() bool {
	switch l {
	case Lat, Lot, Lan, VidhiLin:
		return true
	default:
		return false
	}
}

// ReduplicatesByDefault reports whether l's own tense/mood formation
// inherently reduplicates the dhatu (liT always does, regardless of
// gana or sanadi).
func (l Lakara) ReduplicatesByDefault() bool { return l == Lit }

// Purusha is grammatical person.
type Purusha int

const (
	Prathama Purusha = iota + 1
	Madhyama
	Uttama
)

// Vacana is grammatical number.
type Vacana int

const (
	Eka Vacana = iota + 1
	Dvi
	Bahu
)

// Prayoga is voice.
type Prayoga int

const (
	Kartari Prayoga = iota + 1
	Karmani
	Bhave
)

// Pada is an explicit parasmaipada/atmanepada override. When unset on Args,
// the driver picks parasmaipada for kartari and atmanepada for karmani/bhave
// -- the common default, not a universal rule (many roots are lexically
// atmanepada-only or ubhayapadin; callers needing that precision should set
// Pada explicitly).
type Pada int

const (
	PadaUnset Pada = iota
	Parasmaipada
	Atmanepada
)

// Args is the typed tinanta argument set: dhatu, prayoga, purusha, vacana,
// lakara, and an optional pada override, per spec.md §6.
type Args struct {
	dhatu   *dhatu.Dhatu
	prayoga Prayoga
	purusha Purusha
	vacana  Vacana
	lakara  Lakara
	pada    Pada
}

// Builder is the chained-setter construction path for Args.
type Builder struct {
	dhatu   *dhatu.Dhatu
	prayoga Prayoga
	purusha Purusha
	vacana  Vacana
	lakara  Lakara
	pada    Pada
}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder { return &Builder{} }

// Dhatu sets the verb root argument.
func (b *Builder) Dhatu(d *dhatu.Dhatu) *Builder {
	b.dhatu = d
	return b
}

// Prayoga sets the voice.
func (b *Builder) Prayoga(p Prayoga) *Builder {
	b.prayoga = p
	return b
}

// Purusha sets the grammatical person.
func (b *Builder) Purusha(p Purusha) *Builder {
	b.purusha = p
	return b
}

// Vacana sets the grammatical number.
func (b *Builder) Vacana(v Vacana) *Builder {
	b.vacana = v
	return b
}

// Lakara sets the tense/mood.
func (b *Builder) Lakara(l Lakara) *Builder {
	b.lakara = l
	return b
}

// Pada sets an explicit parasmaipada/atmanepada override.
func (b *Builder) Pada(p Pada) *Builder {
	b.pada = p
	return b
}

// Build validates the required fields and returns Args.
func (b *Builder) Build() (*Args, error) {
	if b.dhatu == nil {
		return nil, &prakriya.MissingRequiredFieldError{Field: "dhatu"}
	}
	if b.prayoga == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "prayoga"}
	}
	if b.purusha == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "purusha"}
	}
	if b.vacana == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "vacana"}
	}
	if b.lakara == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "lakara"}
	}
	return &Args{
		dhatu: b.dhatu, prayoga: b.prayoga, purusha: b.purusha,
		vacana: b.vacana, lakara: b.lakara, pada: b.pada,
	}, nil
}

// resolvedPada returns the pada this derivation uses: the explicit
// override if set, else the prayoga-based default.
func (a *Args) resolvedPada() Pada {
	if a.pada != PadaUnset {
		return a.pada
	}
	if a.prayoga == Kartari {
		return Parasmaipada
	}
	return Atmanepada
}
