// Package pratipadika provides the nominal-stem argument type
// (Pratipadika) that package subanta consumes to build subantas, mirroring
// spec.md §4.1's "Pratipadika (nominal stem)".
//
// Per 1.2.45-1.2.46, a pratipadika is either a meaningful term that is
// neither a dhatu nor a pratyaya, or a term whose last element is a krt,
// taddhita, or samasa formation. FromTerms enforces that definition when
// assembling a pratipadika out of an already-derived term sequence (e.g.
// the output of a krt or taddhita driver feeding into sup); From and
// Builder instead construct a pratipadika directly from stated text, for
// callers who already know they have a valid nominal stem.
package pratipadika

import (
	"strings"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

// Pratipadika is the nominal-stem argument for a subanta derivation: one or
// more terms whose concatenated text is the stem sup-pratyayas attach to.
type Pratipadika struct {
	terms []*prakriya.Term
}

// From creates a pratipadika directly from its stated upadesha text.
func From(text string) *Pratipadika {
	return &Pratipadika{terms: []*prakriya.Term{prakriya.NewUpadeshaTerm(text)}}
}

// FromTerms assembles a pratipadika from an already-derived term sequence
// (e.g. the output of package krt or package taddhita). It returns false
// if the last term does not satisfy 1.2.45-1.2.46's definition of a
// pratipadika.
func FromTerms(terms []*prakriya.Term) (*Pratipadika, bool) {
	if len(terms) == 0 {
		return nil, false
	}
	last := terms[len(terms)-1]
	isValid := last.HasAnyTag(
		prakriya.TagPratipadika,
		prakriya.TagKrt,
		prakriya.TagTaddhita,
		prakriya.TagSamasa,
		prakriya.TagStriNyap,
	)
	if !isValid {
		return nil, false
	}
	return &Pratipadika{terms: terms}, true
}

// Terms returns the terms composing this pratipadika.
func (p *Pratipadika) Terms() []*prakriya.Term { return p.terms }

// Text returns the concatenated text of every term in this pratipadika.
func (p *Pratipadika) Text() string {
	var b strings.Builder
	for _, t := range p.terms {
		b.WriteString(t.Text)
	}
	return b.String()
}

// NeedsNyap reports whether this pratipadika's last term requires a NI or
// Ap feminine-stem pratyaya before sup-pratyayas attach.
func (p *Pratipadika) NeedsNyap() bool {
	if len(p.terms) == 0 {
		return false
	}
	return p.terms[len(p.terms)-1].HasTag(prakriya.TagStriNyap)
}

// IsDhatu reports whether this pratipadika's last term is itself a dhatu
// (e.g. a krdanta built directly on the bare root).
func (p *Pratipadika) IsDhatu() bool {
	if len(p.terms) == 0 {
		return false
	}
	return p.terms[len(p.terms)-1].HasTag(prakriya.TagDhatu)
}

// Builder is the chained-setter construction path for Pratipadika.
type Builder struct {
	text       *string
	isNyap     bool
	isDhatu    bool
	isUdit     bool
	isPratyaya bool
}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder { return &Builder{} }

// Text sets the pratipadika's stated text.
func (b *Builder) Text(value string) *Builder {
	b.text = &value
	return b
}

// IsNyap sets whether this pratipadika should be treated as needing a
// NI/Ap feminine-stem pratyaya.
func (b *Builder) IsNyap(val bool) *Builder {
	b.isNyap = val
	return b
}

// IsDhatu sets whether this pratipadika should be treated as ending in a
// dhatu.
func (b *Builder) IsDhatu(val bool) *Builder {
	b.isDhatu = val
	return b
}

// IsUdit sets whether this pratipadika should be treated as carrying the
// udit it-marker (relevant to a handful of taddhita/krt rules that gate on
// it directly).
func (b *Builder) IsUdit(val bool) *Builder {
	b.isUdit = val
	return b
}

// IsPratyaya sets whether this pratipadika should be treated as a
// pratyaya in its own right.
func (b *Builder) IsPratyaya(val bool) *Builder {
	b.isPratyaya = val
	return b
}

// Build validates that text was set and returns the Pratipadika, tagging
// its single term according to the flags set on the builder.
func (b *Builder) Build() (*Pratipadika, error) {
	if b.text == nil {
		return nil, &prakriya.MissingRequiredFieldError{Field: "text"}
	}
	term := prakriya.NewUpadeshaTerm(*b.text)
	if b.isNyap {
		term.AddTag(prakriya.TagStriNyap)
		term.AddTag(prakriya.TagStri)
	}
	if b.isDhatu {
		term.AddTag(prakriya.TagDhatu)
		term.AddTag(prakriya.TagPratyaya)
	}
	if b.isUdit {
		term.AddTag(prakriya.TagUDit)
	}
	if b.isPratyaya {
		term.AddTag(prakriya.TagPratyaya)
	}
	return &Pratipadika{terms: []*prakriya.Term{term}}, nil
}
