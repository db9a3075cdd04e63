// Package prakriya implements the core term-tape data model (C2) and rule
// engine (C3) of the derivation system: the Term type, the Prakriya tape
// that holds an ordered sequence of terms plus its audit history, and the
// Run/RunOptional/Step methods that every rule must funnel its mutations
// through so that the history and rule_decisions logs stay complete.
//
// Rules themselves are not reified as data in this package -- per
// spec.md §4.3 and §9, a rule is a named call site in a driver package
// (tinanta, subanta, krdanta, taddhita) that calls back into a Prakriya's
// Run/RunOptional/Step methods with a rule_id. This package only supplies
// the tape these call sites operate on and the bookkeeping they get for
// free by going through it.
package prakriya

import "strings"

// HistoryEntry is one (rule_id, snapshot) pair appended to a Prakriya's
// history every time a rule fires (or a Step-only rule is logged).
type HistoryEntry struct {
	Rule string
	Text string
	// Terms is a snapshot of each term's text at the time the rule fired,
	// useful for tests that assert on an intermediate term's shape
	// without reconstructing it from the concatenated Text.
	Terms []string
}

// Prakriya is the ordered tape of terms produced by a single derivation,
// plus its audit trail. It corresponds to spec.md §3's "Prakriya (tape)".
type Prakriya struct {
	terms   []*Term
	history []HistoryEntry
	choices []RuleChoice

	tags map[PrakriyaTag]bool

	// Artha is the current semantic/contextual slot used by krt and
	// taddhita rule blocks to gate meaning-conditioned rules.
	Artha string

	Config Config

	// pendingChoices are Config.RuleChoices not yet consumed by
	// RunOptional, consumed in order as the matching rule_id is seen.
	pendingChoices []RuleChoice
}

// New creates an empty Prakriya with the given configuration.
func New(cfg Config) *Prakriya {
	p := &Prakriya{
		Config: cfg,
		tags:   make(map[PrakriyaTag]bool),
	}
	p.pendingChoices = append(p.pendingChoices, cfg.RuleChoices...)
	return p
}

// Terms returns the live term slice. Callers may read term contents but
// should mutate only through Push/InsertBefore/InsertAfter/Remove or by
// mutating a *Term obtained from Get, inside a Run/RunOptional/Step
// closure.
func (p *Prakriya) Terms() []*Term { return p.terms }

// Len returns the number of terms on the tape.
func (p *Prakriya) Len() int { return len(p.terms) }

// Get returns the term at index i, or nil if out of range.
func (p *Prakriya) Get(i int) *Term {
	if i < 0 || i >= len(p.terms) {
		return nil
	}
	return p.terms[i]
}

// Last returns the final term on the tape, or nil if the tape is empty.
func (p *Prakriya) Last() *Term {
	if len(p.terms) == 0 {
		return nil
	}
	return p.terms[len(p.terms)-1]
}

// Push appends term to the end of the tape.
func (p *Prakriya) Push(term *Term) {
	p.terms = append(p.terms, term)
}

// InsertBefore inserts term immediately before index i.
func (p *Prakriya) InsertBefore(i int, term *Term) {
	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = term
}

// InsertAfter inserts term immediately after index i.
func (p *Prakriya) InsertAfter(i int, term *Term) {
	p.InsertBefore(i+1, term)
}

// Remove deletes the term at index i outright (as opposed to eliding it,
// which is done by setting Text = "" and keeping the locus). Use only for
// the explicit removal rules spec.md §3 describes (samasa collapse, final
// cleanup).
func (p *Prakriya) Remove(i int) {
	if i < 0 || i >= len(p.terms) {
		return
	}
	p.terms = append(p.terms[:i], p.terms[i+1:]...)
}

// FindFirstWhere returns the index of the first term satisfying pred, or
// -1 if none does.
func (p *Prakriya) FindFirstWhere(pred func(*Term) bool) int {
	for i, t := range p.terms {
		if pred(t) {
			return i
		}
	}
	return -1
}

// FindLastWhere returns the index of the last term satisfying pred, or -1
// if none does.
func (p *Prakriya) FindLastWhere(pred func(*Term) bool) int {
	for i := len(p.terms) - 1; i >= 0; i-- {
		if pred(p.terms[i]) {
			return i
		}
	}
	return -1
}

// FindNextWhere returns the index, strictly greater than i, of the next
// term satisfying pred, or -1 if none does. Used by sandhi rules looking
// for the next non-empty term.
func (p *Prakriya) FindNextWhere(i int, pred func(*Term) bool) int {
	for j := i + 1; j < len(p.terms); j++ {
		if pred(p.terms[j]) {
			return j
		}
	}
	return -1
}

// Text returns the concatenation of every term's current text -- the
// surface string of the derivation at its current point.
func (p *Prakriya) Text() string {
	var b strings.Builder
	for _, t := range p.terms {
		b.WriteString(t.Text)
	}
	return b.String()
}

// History returns the ordered (rule_id, snapshot) log.
func (p *Prakriya) History() []HistoryEntry { return p.history }

// RuleChoices returns every optional-rule decision made so far, in the
// order encountered.
func (p *Prakriya) RuleChoices() []RuleChoice { return p.choices }

// HasTag reports whether the prakriya itself carries tag (voice, person,
// number, samasa-kind, ...).
func (p *Prakriya) HasTag(tag PrakriyaTag) bool { return p.tags[tag] }

// AddTag adds a prakriya-level tag.
func (p *Prakriya) AddTag(tag PrakriyaTag) {
	if p.tags == nil {
		p.tags = make(map[PrakriyaTag]bool)
	}
	p.tags[tag] = true
}

// snapshot records the current tape state under rule into history, if
// logging is enabled.
func (p *Prakriya) snapshot(rule string) {
	if !p.Config.LogSteps {
		return
	}
	termTexts := make([]string, len(p.terms))
	for i, t := range p.terms {
		termTexts[i] = t.Text
	}
	p.history = append(p.history, HistoryEntry{Rule: rule, Text: p.Text(), Terms: termTexts})
}

// Run applies fn to the tape under the name rule, then appends a history
// snapshot if logging is enabled. fn must either perform the change it
// advertises or the caller must have guarded the call with a predicate;
// Run never silently no-ops on fn's behalf.
func (p *Prakriya) Run(rule string, fn func(*Prakriya)) {
	fn(p)
	p.snapshot(rule)
}

// Step logs rule firing without any mutation -- used for rules that are
// purely informational (e.g. recording that a condition held) or whose
// effect was already realized by an earlier Run.
func (p *Prakriya) Step(rule string) {
	p.snapshot(rule)
}

// RunOptional applies fn under rule only if the optional rule is accepted.
// The decision comes from two places, in priority order:
//
//  1. A pinned Config.RuleChoice for this exact rule, consumed in the
//     order given (supports replaying one specific branch).
//  2. Otherwise, a new decision is recorded as Accept and fn runs.
//
// It returns whether the rule was accepted. Every call appends exactly one
// entry to RuleChoices(), satisfying spec.md §3's invariant that
// rule_decisions grows by one per optional-rule encounter.
func (p *Prakriya) RunOptional(rule string, fn func(*Prakriya)) bool {
	decision := p.nextDecision(rule)
	p.choices = append(p.choices, RuleChoice{Rule: rule, Decision: decision})
	if decision == Accept {
		fn(p)
	}
	p.snapshot(rule)
	return decision == Accept
}

// nextDecision consumes the earliest pending pinned choice whose rule_id
// matches rule, wherever it sits in the queue; otherwise it
// defaults to Accept, mirroring the upstream enumerator's "no decision
// yet -> Accept and proceed" behavior (spec.md §4.6).
func (p *Prakriya) nextDecision(rule string) Decision {
	for i, pc := range p.pendingChoices {
		if pc.Rule == rule {
			p.pendingChoices = append(p.pendingChoices[:i], p.pendingChoices[i+1:]...)
			return pc.Decision
		}
	}
	return Accept
}

// Abort signals that the current derivation branch cannot proceed. Drivers
// should return the error from Abort immediately; the enumerator (package
// enumerate) catches *AbortError and treats the branch as yielding no
// output rather than surfacing it as a caller-visible error, unless every
// branch aborts.
func (p *Prakriya) Abort(reason string) error {
	return Abort(p.choices, reason)
}
