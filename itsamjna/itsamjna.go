// Package itsamjna implements the it-samjna pass (C4): stripping
// indicatory (anubandha) markers from a term's upadesha form, converting
// each into the matching prakriya.Tag, and validating that what remains is
// within the phonetic alphabet.
//
// Leading markers. Dhatu upadesha forms sometimes carry a purely
// protective leading digraph -- qu, wu, or Yi (per 1.3.5 AdirYituqavaH) --
// added only so the bare root text is never itself an ambiguous or
// accidentally-elidable string. These carry no independent grammatical
// meaning and are stripped without adding a tag. Pratyaya upadesha forms
// instead sometimes carry a single leading consonant that *does* carry
// meaning (Sit marks sarvadhatuka-ness per 3.4.113, zit selects a NIz
// feminine stem per 4.1.41, and so on): these are stripped with the
// matching tag added.
//
// Trailing markers. Per 1.3.3 (halantyam), a consonant at the true end of
// an upadesha string is an it. Setup strips at most one such substantive
// trailing it (a consonant or a nasalized vowel); a consonant exposed
// behind it is kept as part of the term's text (e.g. a theoretical
// "...XY" sheds only Y). Per 1.3.2 (upadeshe ajanunasika it), a *vowel* at the end is an
// it only when explicitly marked nasalized -- in this engine's SLP1-like
// encoding that is written as the vowel followed by a literal '~'. An
// unmarked trailing vowel is the term's genuine final sound and is never
// stripped (this is what lets "BU" keep its U while "gamx~" sheds its
// x-marker and "sparDa~" sheds its a-marker).
//
// Accent marks. A literal '\' after a vowel marks anudatta and '^' marks
// svarita; both are stripped and recorded as a whole-term tag (this engine
// does not track per-vowel accent position, a simplification from the
// full svara system spec.md marks as future work via Config.UseSvaras).
package itsamjna

import (
	"strings"
	"unicode/utf8"

	"github.com/ambuda-org/vidyut-prakriya-go/prakriya"
	"github.com/ambuda-org/vidyut-prakriya-go/sound"
)

// dhatuLeadingDigraphs are the protective leading markers of 1.3.5,
// checked only when Setup is called with isDhatu = true.
var dhatuLeadingDigraphs = []string{"qu", "wu", "Yi"}

// pratyayaLeadingConsonants are single leading-consonant its recognized on
// pratyaya upadesha forms (1.3.6-1.3.8 and related sutras), checked only
// when isDhatu = false.
var pratyayaLeadingConsonants = map[rune]bool{
	'S': true, 'z': true, 'l': true, 'c': true, 'G': true, 'N': true,
}

// Setup strips it-markers from term.U, writes the stripped result to
// term.Text, and adds the corresponding prakriya.Tag for every marker
// found. isDhatu selects whether the leading-digraph (dhatu) or
// leading-single-consonant (pratyaya) convention applies.
//
// Setup must run before any rule outside this pass touches the term's
// Text, per spec.md §3's invariant that it-markers are removed from Text
// (but remembered as tags) before any other rule fires.
func Setup(term *prakriya.Term, isDhatu bool) error {
	text := term.U

	if isDhatu {
		for _, prefix := range dhatuLeadingDigraphs {
			if strings.HasPrefix(text, prefix) {
				text = text[len(prefix):]
				break
			}
		}
	} else if len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if pratyayaLeadingConsonants[r] {
			tag, err := prakriya.ParseIt(r)
			if err != nil {
				return err
			}
			term.AddTag(tag)
			text = text[size:]
		}
	}

	// A well-formed upadesha carries at most one substantive trailing it (a
	// single nasalized vowel, per 1.3.2, or a single consonant, per 1.3.3),
	// possibly flanked by accent marks, which can stack freely on either
	// side of it. Without this cap the loop would keep walking back through
	// the root's own genuine final consonants -- e.g. "akzU~" would shed
	// its real z along with the intended U marker.
	consumedSubstantive := false
	for len(text) > 0 {
		r, size := utf8.DecodeLastRuneInString(text)

		switch r {
		case '\\':
			term.AddTag(prakriya.TagAnudatta)
			text = text[:len(text)-size]
			continue
		case '^':
			term.AddTag(prakriya.TagSvarita)
			text = text[:len(text)-size]
			continue
		}

		if consumedSubstantive {
			break
		}

		if r == '~' {
			rest := text[:len(text)-size]
			vr, vsize := utf8.DecodeLastRuneInString(rest)
			if vsize == 0 || !sound.IsVowel(vr) {
				// Malformed upadesha: a bare anunasika marker with no
				// preceding vowel. Leave it in place rather than guess.
				return nil
			}
			tag, err := prakriya.ParseIt(vr)
			if err != nil {
				return err
			}
			term.AddTag(tag)
			text = rest[:len(rest)-vsize]
			consumedSubstantive = true
			continue
		}

		if sound.IsConsonant(r) {
			tag, err := prakriya.ParseIt(r)
			if err != nil {
				return err
			}
			term.AddTag(tag)
			text = text[:len(text)-size]
			consumedSubstantive = true
			continue
		}

		// A plain, non-nasalized trailing vowel is the term's real final
		// sound, not an it. Stop stripping.
		break
	}

	term.Text = text
	return validateAlphabet(term.Text)
}

// validateAlphabet checks that every sound in s belongs to the closed
// phonetic inventory. Accent marks and the anunasika tilde are expected to
// have already been stripped by Setup by the time this runs.
func validateAlphabet(s string) error {
	for _, r := range s {
		if sound.IsVowel(r) || sound.IsConsonant(r) {
			continue
		}
		return &prakriya.InvalidFileError{Path: "<upadesha>", Reason: "sound '" + string(r) + "' is outside the phonetic alphabet"}
	}
	return nil
}

// SetupDhatu is a convenience wrapper for Setup(term, true).
func SetupDhatu(term *prakriya.Term) error { return Setup(term, true) }

// SetupPratyaya is a convenience wrapper for Setup(term, false).
func SetupPratyaya(term *prakriya.Term) error { return Setup(term, false) }

// knownGhuDhatus lists the dhatus traditionally assigned ghu-samjna
// (1.1.20 daterghuH): a short closed list of roots ending in long A whose
// guna/vrddhi behavior differs from an ordinary anga.
var knownGhuDhatus = map[string]bool{"dA": true, "DA": true}

// AssignGhu tags term as Ghu if its current text is a recognized ghu
// dhatu.
func AssignGhu(term *prakriya.Term) {
	if knownGhuDhatus[term.Text] {
		term.AddTag(prakriya.TagGhu)
	}
}

// AssignBha tags term as Bha when it precedes a suffix beginning with a
// vowel other than y (1.4.18 yacibham), the samjna that several anga
// rules (e.g. num-agama placement) gate on.
func AssignBha(term *prakriya.Term, nextText string) {
	if nextText == "" {
		return
	}
	r, _ := utf8.DecodeRuneInString(nextText)
	if sound.IsVowel(r) && r != sound.Y {
		term.AddTag(prakriya.TagBha)
	}
}
