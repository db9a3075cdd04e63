package subanta

import (
	"errors"
	"strings"

	"github.com/ambuda-org/vidyut-prakriya-go/enumerate"
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/sandhi"
)

// DeriveAll runs the subanta pipeline (spec.md §4.5) over every reachable
// optional-rule decision path (spec.md §6), via package enumerate's
// combinatorial search.
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
		return nil, errors.New("subanta: no derivation path completed")
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

// deriveOn seeds pratipadika, inserts sup by vibhakti x vacana (linga is
// only recorded as a tag on the stem), applies the a-stem sup-adesha rules this package derives, ac-sandhi, and
// visarga finalization, onto p.
func deriveOn(p *prakriya.Prakriya, args *Args) error {
	terms := args.pratipadika.Terms()
	for _, t := range terms {
		// Terms() returns the pratipadika's own backing slice; clone so a
		// mutation on one decision path (e.g. 7.3.102's stem lengthening
		// below) can never leak into another path's starting state.
		p.Push(t.Clone())
	}
	stemIndex := len(terms) - 1
	stem := p.Get(stemIndex)
	stem.AddTag(prakriya.TagPratipadika)
	stem.AddTag(lingaTag(args.linga))

	key := supKey{args.vibhakti, args.vacana}
	text, ok := lookupSupEnding(key)
	if !ok {
		return p.Abort("no sup ending known for this vibhakti/vacana combination")
	}

	isAStem := strings.HasSuffix(stem.Text, "a") && !strings.HasSuffix(stem.Text, "A")
	if isAStem {
		if override, ok := aStemOverrides[key]; ok {
			p.Step(aStemOverrideRule[key])
			text = override
		}
	}

	sup := prakriya.NewTerm(text)
	sup.AddTag(prakriya.TagSup)
	sup.AddTag(vibhaktiTag(args.vibhakti))
	sup.AddTag(vacanaTag(args.vacana))
	if args.vibhakti == Sambodhana {
		sup.AddTag(prakriya.TagSambodhana)
	}
	p.Push(sup)
	supIndex := stemIndex + 1

	if isAStem && aStemLengthensBefore[key] {
		p.Run("7.3.102", func(p *prakriya.Prakriya) {
			t := p.Get(stemIndex)
			t.Text = t.Text[:len(t.Text)-1] + "A"
		})
	}

	// 6.1.107 ami pUrvaH: before the accusative-singular am, an a/A-final
	// stem keeps its own vowel and only the sup's leading a drops, rather
	// than the two undergoing the general savarna-dirgha merge that would
	// otherwise produce a long A.
	if args.vibhakti == Dvitiya && args.vacana == Eka {
		st := p.Get(stemIndex)
		su := p.Get(supIndex)
		if su.Text == "am" && (strings.HasSuffix(st.Text, "a") || strings.HasSuffix(st.Text, "A")) {
			p.Run("6.1.107", func(p *prakriya.Prakriya) {
				p.Get(supIndex).Text = "m"
			})
		}
	}

	sandhi.ApplyAcSandhi(p)
	sandhi.ApplyNatva(p)
	sandhi.ApplyVisarga(p)

	return nil
}
