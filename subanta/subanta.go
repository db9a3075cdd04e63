// Package subanta implements the declined-nominal (subanta) argument type
// and derivation driver (C5), the pipeline spec.md §4.5 describes as:
// seed pratipadika, insert sup by vibhakti x vacana x linga, saṁjña,
// sandhi, tripādī.
package subanta

import (
	"github.com/ambuda-org/vidyut-prakriya-go/pratipadika"
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

// Linga is grammatical gender.
type Linga int

const (
	Pum Linga = iota + 1
	Stri
	Napumsaka
)

// Vibhakti is one of the seven cases, plus sambodhana (vocative), which
// shares prathama's endings but is tracked separately per spec.md §6.
type Vibhakti int

const (
	Prathama Vibhakti = iota + 1
	Dvitiya
	Trtiya
	Caturthi
	Panchami
	Sasthi
	Saptami
	Sambodhana
)

// Vacana is grammatical number.
type Vacana int

const (
	Eka Vacana = iota + 1
	Dvi
	Bahu
)

// Args is the typed subanta argument set: pratipadika, linga, vacana,
// vibhakti, per spec.md §6. The pratipadika itself is package pratipadika's
// shared nominal-stem type, which also feeds package krt/taddhita output
// into this driver.
type Args struct {
	pratipadika *pratipadika.Pratipadika
	linga       Linga
	vacana      Vacana
	vibhakti    Vibhakti
}

// Builder is the chained-setter construction path for Args.
type Builder struct {
	pratipadika *pratipadika.Pratipadika
	linga       Linga
	vacana      Vacana
	vibhakti    Vibhakti
}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Pratipadika(p *pratipadika.Pratipadika) *Builder {
	b.pratipadika = p
	return b
}

func (b *Builder) Linga(l Linga) *Builder {
	b.linga = l
	return b
}

func (b *Builder) Vacana(v Vacana) *Builder {
	b.vacana = v
	return b
}

func (b *Builder) Vibhakti(v Vibhakti) *Builder {
	b.vibhakti = v
	return b
}

// Build validates the required fields and returns Args.
func (b *Builder) Build() (*Args, error) {
	if b.pratipadika == nil {
		return nil, &prakriya.MissingRequiredFieldError{Field: "pratipadika"}
	}
	if b.linga == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "linga"}
	}
	if b.vacana == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "vacana"}
	}
	if b.vibhakti == 0 {
		return nil, &prakriya.MissingRequiredFieldError{Field: "vibhakti"}
	}
	return &Args{
		pratipadika: b.pratipadika, linga: b.linga, vacana: b.vacana, vibhakti: b.vibhakti,
	}, nil
}

// lingaTag returns the prakriya-level tag recording linga.
func lingaTag(l Linga) prakriya.Tag {
	switch l {
	case Stri:
		return prakriya.TagStri
	case Napumsaka:
		return prakriya.TagNapumsaka
	default:
		return prakriya.TagPum
	}
}

// vibhaktiTag returns the prakriya-level tag recording vibhakti. Sambodhana
// shares prathama's V1 tag, plus its own Sambodhana tag.
func vibhaktiTag(v Vibhakti) prakriya.Tag {
	switch v {
	case Dvitiya:
		return prakriya.TagV2
	case Trtiya:
		return prakriya.TagV3
	case Caturthi:
		return prakriya.TagV4
	case Panchami:
		return prakriya.TagV5
	case Sasthi:
		return prakriya.TagV6
	case Saptami:
		return prakriya.TagV7
	default:
		return prakriya.TagV1
	}
}

// vacanaTag returns the prakriya-level tag recording vacana.
func vacanaTag(v Vacana) prakriya.Tag {
	switch v {
	case Dvi:
		return prakriya.TagDvivacana
	case Bahu:
		return prakriya.TagBahuvacana
	default:
		return prakriya.TagEkavacana
	}
}
