package krt

import (
	"errors"

	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
	"github.com/ambuda-org/vidyut-prakriya-go/enumerate"
	"github.com/ambuda-org/vidyut-prakriya-go/itsamjna"
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/pratipadika"
	"github.com/ambuda-org/vidyut-prakriya-go/sandhi"
)

// DeriveAll runs the kṛdanta pipeline (spec.md §4.5) for d/args over every
// reachable optional-rule decision path (spec.md §6), via package
// enumerate's combinatorial search.
func DeriveAll(d *dhatu.Dhatu, args *KrdantaArgs) ([]*prakriya.Prakriya, error) {
	stack := enumerate.New(true, false, false, false, nil)
	stack.FindAll(func(p *prakriya.Prakriya) error {
		return deriveOn(p, d, args)
	})

	prakriyas := stack.Prakriyas()
	if len(prakriyas) == 0 {
		if err := stack.Aborts(); err != nil {
			return nil, err
		}
		return nil, errors.New("krt: no derivation path completed")
	}
	return prakriyas, nil
}

// Derive returns the first (all-defaults-accepted) path DeriveAll finds.
func Derive(d *dhatu.Dhatu, args *KrdantaArgs) (*prakriya.Prakriya, error) {
	prakriyas, err := DeriveAll(d, args)
	if err != nil {
		return nil, err
	}
	return prakriyas[0], nil
}

// deriveOn seeds dhātu, inserts the kṛt-pratyaya, applies saṁjñā (the Kit
// tag, which blocks guṇa under 1.1.5 so no various-dhātu pass runs for this
// package's aniṭ suffixes), ac-sandhi, finish, onto p.
func deriveOn(p *prakriya.Prakriya, d *dhatu.Dhatu, args *KrdantaArgs) error {
	dhatuTerm := prakriya.NewUpadeshaTerm(d.Upadesha())
	if err := itsamjna.SetupDhatu(dhatuTerm); err != nil {
		return err
	}
	dhatuTerm.AddTag(prakriya.TagDhatu)
	dhatuTerm.Gana = int(d.Gana())
	p.Push(dhatuTerm)

	spec, ok := krtSpecs[args.krt]
	if !ok {
		return p.Abort("no krt-pratyaya spec known for this value")
	}

	krtTerm := prakriya.NewTerm(spec.text)
	krtTerm.AddTag(prakriya.TagPratyaya)
	krtTerm.AddTag(prakriya.TagKrt)
	if spec.kit {
		krtTerm.AddTag(prakriya.TagKit)
	}
	p.Push(krtTerm)

	sandhi.ApplyAcSandhi(p)
	sandhi.ApplyNatva(p)

	return nil
}

// ToPratipadika wraps p's finished tape as a krdanta-derived pratipadika,
// ready to feed package subanta (spec.md §6: "Pratipadika: text or list of
// sub-terms, for krdanta / taddhita-derived stems"). It returns false if
// the final term carries none of the tags pratipadika.FromTerms accepts
// (Pratipadika, Krt, Taddhita, Samasa, StriNyap); Derive always tags it
// Krt, but a caller could in principle pass in an unrelated Prakriya.
func ToPratipadika(p *prakriya.Prakriya) (*pratipadika.Pratipadika, bool) {
	return pratipadika.FromTerms(p.Terms())
}
