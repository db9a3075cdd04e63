package taddhita

import (
	"errors"

	"github.com/ambuda-org/vidyut-prakriya-go/enumerate"
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/sandhi"
)

// DeriveAll runs the taddhitanta pipeline (spec.md §4.5) over every
// reachable optional-rule decision path (spec.md §6), via package
// enumerate's combinatorial search.
func DeriveAll(args *Args) ([]*prakriya.Prakriya, error) {
	stack := enumerate.New(true, false, false, false, nil)
	stack.FindAll(func(p *prakriya.Prakriya) error {
		return deriveOn(p, args)
	})

	prakriyas := stack.Prakriyas()
	if len(prakriyas) == 0 {
		if err := stack.Aborts(); err != nil {
			return nil, err
		}
		return nil, errors.New("taddhita: no derivation path completed")
	}
	return prakriyas, nil
}

// Derive returns the first (all-defaults-accepted) path DeriveAll finds.
func Derive(args *Args) (*prakriya.Prakriya, error) {
	prakriyas, err := DeriveAll(args)
	if err != nil {
		return nil, err
	}
	return prakriyas[0], nil
}

// deriveOn seeds pratipadika, inserts the taddhita pratyaya (plus the
// obligatory feminine TAp affix for tal), ac-sandhi, finish, onto p.
func deriveOn(p *prakriya.Prakriya, args *Args) error {
	terms := args.pratipadika.Terms()
	for _, t := range terms {
		// Terms() returns the pratipadika's own backing slice; clone so no
		// decision path can mutate state another path still needs.
		p.Push(t.Clone())
	}
	stem := p.Get(len(terms) - 1)
	stem.AddTag(prakriya.TagPratipadika)

	spec, ok := taddhitaSpecs[args.taddhita]
	if !ok {
		return p.Abort("no taddhita-pratyaya spec known for this value")
	}

	taddhitaTerm := prakriya.NewTerm(spec.text)
	taddhitaTerm.AddTag(prakriya.TagPratyaya)
	taddhitaTerm.AddTag(prakriya.TagTaddhita)
	p.Push(taddhitaTerm)

	if spec.needsAp {
		p.Run("4.1.4", func(p *prakriya.Prakriya) {
			ap := prakriya.NewTerm("A")
			ap.AddTag(prakriya.TagStriNyap)
			ap.AddTag(prakriya.TagStri)
			p.Push(ap)
		})
	}

	sandhi.ApplyAcSandhi(p)
	sandhi.ApplyNatva(p)

	return nil
}
