package prakriya

import "fmt"

// MissingRequiredFieldError is raised when a builder is asked to Build()
// without a mandatory argument set. Recovery: surface to caller.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("prakriya: missing required field %q", e.Field)
}

// UnknownItError is raised when an upadesha carries an indicatory letter
// outside the closed anubandha set. Recovery: surface to caller.
type UnknownItError struct {
	Letter rune
}

func (e *UnknownItError) Error() string {
	return fmt.Sprintf("prakriya: unknown it letter %q", e.Letter)
}

// ParseEnumError is raised when a text value fails to map to a known enum
// member (Gana, Lakara, Vibhakti, ...). Recovery: surface to caller.
type ParseEnumError struct {
	Enum string
	Text string
}

func (e *ParseEnumError) Error() string {
	return fmt.Sprintf("prakriya: %q is not a valid %s", e.Text, e.Enum)
}

// InvalidFileError is raised when a dhatupatha, kosha, or suffix-table data
// file cannot be parsed. Recovery: surface to caller.
type InvalidFileError struct {
	Path   string
	Reason string
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("prakriya: invalid data file %s: %s", e.Path, e.Reason)
}

// Decision is the outcome the engine or the enumerator has taken for one
// optional-rule encounter.
type Decision int

const (
	// Accept means the optional rule fired.
	Accept Decision = iota
	// Decline means the optional rule was considered but did not fire.
	Decline
)

func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "decline"
}

// RuleChoice records one optional-rule encounter: which rule, and whether
// it was accepted or declined.
type RuleChoice struct {
	Rule     string
	Decision Decision
}

// AbortError is raised by a driver when the tape has entered a state from
// which no further rule can sensibly proceed (e.g. zero terms after
// initialization). It carries the rule choices made so far so the
// enumerator can resume exploring sibling branches; per spec.md §7 this is
// branch-local and is never surfaced to the outer caller unless every
// branch aborts.
type AbortError struct {
	Choices []RuleChoice
	Reason  string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("prakriya: derivation aborted: %s", e.Reason)
}

// Abort constructs an AbortError carrying a copy of choices.
func Abort(choices []RuleChoice, reason string) error {
	cp := make([]RuleChoice, len(choices))
	copy(cp, choices)
	return &AbortError{Choices: cp, Reason: reason}
}
