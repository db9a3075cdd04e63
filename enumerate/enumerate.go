// Package enumerate implements the optional-rule enumerator (C6): given a
// derivation function that may encounter any number of optional rules, it
// finds every distinct Prakriya the function can produce by exploring every
// combination of accept/decline decisions, without backtracking over a
// single mutable Prakriya.
//
// The strategy is DFS over decision paths, not DFS over the tape itself.
// A "path" is an ordered list of pinned prakriya.RuleChoice values; running
// the derivation function with those choices pinned (via
// prakriya.Config.RuleChoices) reproduces a specific branch deterministically,
// satisfying spec.md §8 property 4 (identical rule_decisions replay to an
// identical result). After a path completes (successfully or by aborting),
// new sibling paths are pushed for every optional rule decided past the
// pinned prefix, each with its last decision flipped -- this is what
// guarantees every combination is eventually tried exactly once.
package enumerate

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
)

// DeriveFunc builds a derivation on an empty Prakriya seeded with the given
// configuration. It mutates p in place and returns an error -- typically a
// *prakriya.AbortError -- if the branch cannot complete.
type DeriveFunc func(p *prakriya.Prakriya) error

// Stack explores every optional-derivation path for one derivation
// function, collecting the prakriyas that complete successfully.
type Stack struct {
	logSteps      bool
	isChandasi    bool
	useSvaras     bool
	nlpMode       bool
	defaultChoices []prakriya.RuleChoice

	prakriyas []*prakriya.Prakriya
	paths     [][]prakriya.RuleChoice
	aborts    *multierror.Error
}

// New creates an empty Stack. defaultChoices pins rule decisions that every
// returned prakriya must agree with; any branch that contradicts one is
// discarded without being explored further.
func New(logSteps, isChandasi, useSvaras, nlpMode bool, defaultChoices []prakriya.RuleChoice) *Stack {
	return &Stack{
		logSteps:       logSteps,
		isChandasi:     isChandasi,
		useSvaras:      useSvaras,
		nlpMode:        nlpMode,
		defaultChoices: defaultChoices,
	}
}

func (s *Stack) newPrakriya(path []prakriya.RuleChoice) *prakriya.Prakriya {
	ruleChoices := make([]prakriya.RuleChoice, 0, len(path)+len(s.defaultChoices))
	ruleChoices = append(ruleChoices, path...)
	ruleChoices = append(ruleChoices, s.defaultChoices...)

	cfg := prakriya.Config{
		LogSteps:    s.logSteps,
		Chandasi:    s.isChandasi,
		UseSvaras:   s.useSvaras,
		NLPMode:     s.nlpMode,
		RuleChoices: ruleChoices,
	}
	return prakriya.New(cfg)
}

// FindAll runs derive over every reachable decision path. Call Prakriyas
// after it returns for the completed derivations, and Aborts for a
// combined error of every branch that failed outright.
func (s *Stack) FindAll(derive DeriveFunc) {
	s.paths = append(s.paths, nil)

	for {
		path, ok := s.popPath()
		if !ok {
			break
		}

		if s.contradictsDefaults(path) {
			continue
		}

		p := s.newPrakriya(path)
		err := derive(p)
		if err == nil {
			s.addNewPaths(p.RuleChoices(), path)
			s.prakriyas = append(s.prakriyas, p)
			continue
		}

		var abortErr *prakriya.AbortError
		if isAbort(err, &abortErr) {
			s.addNewPaths(abortErr.Choices, path)
			continue
		}

		// Any non-abort error is a genuine defect in the derivation
		// function, not a dead branch; record it rather than silently
		// dropping the path.
		s.aborts = multierror.Append(s.aborts, fmt.Errorf("derivation error: %w", err))
	}
}

func isAbort(err error, target **prakriya.AbortError) bool {
	if ae, ok := err.(*prakriya.AbortError); ok {
		*target = ae
		return true
	}
	return false
}

// contradictsDefaults reports whether path disagrees with any pinned
// default choice for a rule both mention.
func (s *Stack) contradictsDefaults(path []prakriya.RuleChoice) bool {
	if len(s.defaultChoices) == 0 {
		return false
	}
	for _, def := range s.defaultChoices {
		for _, c := range path {
			if def.Rule == c.Rule && def.Decision != c.Decision {
				return true
			}
		}
	}
	return false
}

// addNewPaths pushes one sibling path for every rule choice made past the
// pinned prefix (initialChoices), each with its final decision flipped. See
// the package doc for why this converges on every combination exactly once
// instead of looping.
func (s *Stack) addNewPaths(choices, initialChoices []prakriya.RuleChoice) {
	offset := len(initialChoices)
	for i := offset; i < len(choices); i++ {
		path := make([]prakriya.RuleChoice, i+1)
		copy(path, choices[:i+1])

		last := len(path) - 1
		if path[last].Decision == prakriya.Accept {
			path[last].Decision = prakriya.Decline
		} else {
			path[last].Decision = prakriya.Accept
		}

		s.paths = append(s.paths, path)
	}
}

func (s *Stack) popPath() ([]prakriya.RuleChoice, bool) {
	n := len(s.paths)
	if n == 0 {
		return nil, false
	}
	path := s.paths[n-1]
	s.paths = s.paths[:n-1]
	return path, true
}

// Prakriyas returns every derivation that completed successfully. Calling
// FindAll again appends further results rather than resetting this slice.
func (s *Stack) Prakriyas() []*prakriya.Prakriya { return s.prakriyas }

// Aborts returns a combined error of every branch that failed with
// something other than prakriya.AbortError, or nil if every branch either
// completed or aborted cleanly.
func (s *Stack) Aborts() error {
	if s.aborts == nil {
		return nil
	}
	return s.aborts.ErrorOrNil()
}
