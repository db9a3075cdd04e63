package tinanta

import (
	"errors"
	"strings"

	"github.com/ambuda-org/vidyut-prakriya-go/angasya"
	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
	"github.com/ambuda-org/vidyut-prakriya-go/enumerate"
	"github.com/ambuda-org/vidyut-prakriya-go/itsamjna"
	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/sandhi"
)

// DeriveAll runs the full twelve-phase tinanta pipeline (spec.md §4.5) for
// args over every reachable optional-rule decision path (spec.md §6
// "Outputs: for each invocation, a collection of Prakriya values"), via
// package enumerate's combinatorial search. It returns an error only if
// every path aborted or the derivation function itself errored outright.
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
		return nil, errors.New("tinanta: no derivation path completed")
	}
	return prakriyas, nil
}

// Derive returns the first (all-defaults-accepted) path DeriveAll finds,
// for callers that only want one representative surface form.
func Derive(args *Args) (*prakriya.Prakriya, error) {
	prakriyas, err := DeriveAll(args)
	if err != nil {
		return nil, err
	}
	return prakriyas[0], nil
}

// deriveOn runs the full twelve-phase tinanta pipeline (spec.md §4.5) for
// args onto p, which the caller has already seeded with a Config (see
// DeriveAll). It returns an error -- typically a *prakriya.AbortError -- if
// args is incomplete or a required rule table has no entry for the
// requested combination.
func deriveOn(p *prakriya.Prakriya, args *Args) error {
	// Phase 1: seed the dhatu. Its upasarga prefixes (Dhatu.Prefixes) are
	// not pushed onto the tape.
	dhatuIndex, err := seedDhatu(p, args.dhatu)
	if err != nil {
		return err
	}

	// Phase 2: sanadi, if requested. Only yaN (intensive) is wired so far.
	for _, s := range args.dhatu.Sanadi() {
		if s == dhatu.Yan {
			dhatuIndex = applyYanSanadi(p, args.dhatu, dhatuIndex)
		}
	}

	// Phase 3/4: resolve pada and pick the tin ending for this
	// lakara/pada/purusha/vacana combination.
	pada := args.resolvedPada()
	p.AddTag(padaTag(pada))
	ending, ok := lookupTinEnding(tinKey{args.lakara, pada, args.purusha, args.vacana})
	if !ok {
		return p.Abort("no tin ending known for this lakara/pada/purusha/vacana combination")
	}
	tinTerm := prakriya.NewTerm(ending.text)
	tinTerm.AddTag(prakriya.TagTin)
	if ending.pit {
		tinTerm.AddTag(prakriya.TagPit)
	}
	p.Push(tinTerm)
	tinIndex := p.Len() - 1

	// Phase 5: for a sarvadhatuka lakara, or for any karmani/bhave
	// derivation, insert the gana-specific vikarana for kartari, or the
	// invariant "yak" for karmani/bhave, immediately before the tin ending.
	// An ardhadhatuka lakara in kartari (liT, ASIrliG, ...) takes no
	// vikarana, so its ending attaches straight to the dhatu (liT's
	// reduplication is handled in phase 8).
	vikaranaIndex := -1
	if args.lakara.IsSarvadhatuka() || args.prayoga != Kartari {
		vikaranaIndex = insertVikarana(p, dhatuIndex, tinIndex, args.prayoga, args.dhatu.Gana())
		if vikaranaIndex >= 0 {
			tinIndex = vikaranaIndex + 1
		}
	}

	// Phase 6 (siddhi block, liT/ASIrliG only): mark the dhatu for
	// samprasarana if it ends in the -yA/-vA pattern, the condition 6.1.16
	// and neighboring sutras cover for roots like jyA, vyA, hvA before an
	// ardhadhatuka pratyaya.
	if !args.lakara.IsSarvadhatuka() {
		markSamprasaranaIfYaVaFinal(p, dhatuIndex)
	}

	// Phase 7/8: reduplication. liT always reduplicates; yaN sanadi already
	// reduplicated back in phase 2.
	abhyasaIndex := -1
	if args.lakara.ReduplicatesByDefault() {
		abhyasaIndex = angasya.ApplyDvitva(p, dhatuIndex, "6.1.1")
		dhatuIndex++
		tinIndex++
		if vikaranaIndex >= 0 {
			vikaranaIndex++
		}
		applyBhuLitIrregularities(p, args.dhatu, abhyasaIndex, dhatuIndex, tinIndex)
		applySviOptionalSamprasarana(p, args.dhatu, dhatuIndex)
	}

	// Phase 9 (various-dhatu pass, sarvadhatuka lakaras only): guna on the
	// anga immediately before each sarvadhatuka pratyaya, subject to the
	// apit-blocks-guna rule of 1.2.4/1.1.5.
	if args.lakara.IsSarvadhatuka() {
		if vikaranaIndex >= 0 {
			angasya.ApplySarvadhatukaGuna(p, dhatuIndex, vikaranaIndex, "1.2.4", "7.3.84")
			angasya.ApplySarvadhatukaGuna(p, vikaranaIndex, tinIndex, "1.2.4", "7.3.84")
		} else {
			angasya.ApplySarvadhatukaGuna(p, dhatuIndex, tinIndex, "1.2.4", "7.3.84")
		}
	}

	// Phase 10: angasya rules -- samprasarana, if flagged in phase 6.
	angasya.ApplySamprasarana(p, dhatuIndex, "6.1.16")

	// Phase 11: sandhi (ac-sandhi across term boundaries, then natva).
	sandhi.ApplyAcSandhi(p)
	sandhi.ApplyNatva(p)

	// Phase 12 (tripadi / asiddha block): nothing beyond natva is wired yet.

	return nil
}

// seedDhatu pushes the dhatu's upadesha onto the tape, runs it-samjna, and
// tags it TagDhatu. Returns its index (always 0, since it is the first
// term pushed).
func seedDhatu(p *prakriya.Prakriya, d *dhatu.Dhatu) (int, error) {
	term := prakriya.NewUpadeshaTerm(d.Upadesha())
	if err := itsamjna.SetupDhatu(term); err != nil {
		return -1, err
	}
	term.AddTag(prakriya.TagDhatu)
	term.Gana = int(d.Gana())
	p.Push(term)
	return 0, nil
}

// knownYanAbhyasaOverrides hard-codes the roots whose yaN abhyasa departs
// from the generic "consonant + shortened vowel" shape ApplyDvitva
// produces -- e.g. sparDa~\\ (paspardhyate/pAsparDyate), whose abhyasa
// drops the cluster down to a single consonant with a lengthened vowel
// rather than keeping the literal first syllable.
var knownYanAbhyasaOverrides = map[string]string{
	"sparDa~\\": "pA",
}

// applyYanSanadi reduplicates the dhatu at dhatuIndex (3.1.22's yaN
// intensive always reduplicates before everything else), applies any
// root-specific abhyasa override, and inserts the yaN marker after the
// dhatu, returning the new index of the (now shifted) dhatu term.
func applyYanSanadi(p *prakriya.Prakriya, d *dhatu.Dhatu, dhatuIndex int) int {
	abhyasaIndex := angasya.ApplyDvitva(p, dhatuIndex, "6.1.1")
	newDhatuIndex := dhatuIndex + 1

	if override, ok := knownYanAbhyasaOverrides[d.Upadesha()]; ok {
		p.Run("7.4.61", func(p *prakriya.Prakriya) {
			p.Get(abhyasaIndex).Text = override
		})
	}
	applySviOptionalSamprasarana(p, d, newDhatuIndex)

	yan := prakriya.NewUpadeshaTerm("yaN")
	_ = itsamjna.SetupPratyaya(yan)
	yan.AddTag(prakriya.TagPratyaya)
	p.InsertAfter(newDhatuIndex, yan)
	return newDhatuIndex
}

// applySviOptionalSamprasarana implements 6.1.30 (SvyorvA): the root Svi
// ("to swell") optionally contracts its abhyasa-stage form to "Su" before
// liT or a yaN sanadi, in free variation with the regularly-derived shape.
// Both branches are legitimate Paninian outputs, which is why this goes
// through RunOptional rather than Run.
func applySviOptionalSamprasarana(p *prakriya.Prakriya, d *dhatu.Dhatu, dhatuIndex int) {
	if d.Upadesha() != "Svi" {
		return
	}
	p.RunOptional("6.1.30", func(p *prakriya.Prakriya) {
		p.Get(dhatuIndex).Text = "Su"
	})
}

// padaTag returns the prakriya-level tag recording the resolved pada.
func padaTag(pada Pada) prakriya.PrakriyaTag {
	if pada == Parasmaipada {
		return prakriya.PTagParasmaipada
	}
	return prakriya.PTagAtmanepada
}

// insertVikarana inserts the vikarana appropriate to prayoga/gana between
// dhatuIndex and tinIndex, returning its index, or -1 if the vikarana is
// zero-width (adadi's luk elision, or 6.4.49 eliding whatever vikarana
// would follow a yaN sanadi -- "yak" for karmani/bhave, the gana's own
// vikarana for kartari -- so the yaN's "ya" is not doubled).
func insertVikarana(p *prakriya.Prakriya, dhatuIndex, tinIndex int, prayoga Prayoga, gana dhatu.Gana) int {
	if prev := p.Get(tinIndex - 1); prev != nil && prev.U == "yaN" {
		p.Step("6.4.49")
		return -1
	}

	var spec vikaranaSpec
	if prayoga != Kartari {
		spec = karmaniVikarana
	} else {
		spec = kartariVikaranaByGana[gana]
	}
	if spec.upadesha == "" {
		p.Step(spec.ruleID)
		return -1
	}
	term := prakriya.NewUpadeshaTerm(spec.upadesha)
	_ = itsamjna.SetupPratyaya(term)
	term.AddTag(prakriya.TagPratyaya)
	p.Run(spec.ruleID, func(p *prakriya.Prakriya) {
		p.InsertBefore(tinIndex, term)
	})
	return tinIndex
}

// markSamprasaranaIfYaVaFinal flags the dhatu at dhatuIndex for
// samprasarana (6.1.16) when its current text ends in the -yA/-vA pattern
// -- the shape roots like jyA, vyA, hvA take before an ardhadhatuka
// pratyaya. The caller only invokes this in an ardhadhatuka context, so
// no further check on the following pratyaya is needed here.
func markSamprasaranaIfYaVaFinal(p *prakriya.Prakriya, dhatuIndex int) {
	d := p.Get(dhatuIndex)
	if d == nil || !(strings.HasSuffix(d.Text, "yA") || strings.HasSuffix(d.Text, "vA")) {
		return
	}
	p.Step("6.1.15")
	d.AddTag(prakriya.TagFlagSamprasarana)
}

// knownBhuUpadeshas are the it-stripped forms of "to be/become" recognized
// by applyBhuLitIrregularities.
var knownBhuUpadeshas = map[string]bool{"BU": true}

// applyBhuLitIrregularities hard-codes bhU's two liT-specific departures
// from the general dvitva/guna machinery: its abhyasa vowel is "a" rather
// than the regularly-derived "u" (7.4.73 bhavateH), and its liT ending
// takes a "v" augment before the vowel-initial Ral substitute (6.4.88).
// Both are root-specific exceptions, not general angasya behavior.
func applyBhuLitIrregularities(p *prakriya.Prakriya, d *dhatu.Dhatu, abhyasaIndex, dhatuIndex, tinIndex int) {
	root := prakriya.NewUpadeshaTerm(d.Upadesha())
	_ = itsamjna.SetupDhatu(root)
	if !knownBhuUpadeshas[root.Text] {
		return
	}
	p.Run("7.4.73", func(p *prakriya.Prakriya) {
		p.Get(abhyasaIndex).Text = "ba"
	})
	p.Run("6.4.88", func(p *prakriya.Prakriya) {
		tin := p.Get(tinIndex)
		tin.Text = "v" + tin.Text
	})
}
