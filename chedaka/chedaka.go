// Package chedaka is the statistical segmenter that consumes a kosha to
// tokenize continuous Sanskrit text (spec.md §2: "a statistical segmenter
// / chedaka that consumes the kosha to tokenize running text"). Like
// package kosha, it sits outside the derivation engine: the engine only
// ever sees one already-isolated surface string per invocation, and it is
// this package's job to find where those strings start and end inside a
// longer passage.
//
// The greedy longest-match walk here yields tokens with byte offsets and
// uses a single matching strategy, since a real statistical
// (Viterbi/CRF-scored) segmenter is out of scope
// for this package -- ambiguous splits are resolved by always preferring
// the longest known kosha key, not by any learned weighting.
package chedaka

import "github.com/ambuda-org/vidyut-prakriya-go/kosha"

// TokenType classifies a chedaka token.
type TokenType int

const (
	// Known is a span that matched a kosha key.
	Known TokenType = iota
	// Unknown is a single-rune span with no kosha match, emitted so every
	// byte of the input is still accounted for in the token stream.
	Unknown
)

// Token is one segmented span, with its kosha entries if Type is Known.
type Token struct {
	Text    string
	Start   int
	End     int
	Type    TokenType
	Entries []kosha.PackedEntry
}

// Segment walks text left to right, at each position trying the longest
// prefix (up to k's longest key) that is a complete kosha key, and falling
// back to a single rune when nothing matches. Concatenating every
// returned Token.Text reconstructs text.
func Segment(text string, k *kosha.Kosha) []Token {
	runes := []rune(text)
	maxLen := k.MaxKeyLen()

	var out []Token
	bytePos := 0
	for i := 0; i < len(runes); {
		matched := false
		for n := maxLen; n >= 2; n-- {
			if i+n > len(runes) {
				continue
			}
			candidate := string(runes[i : i+n])
			if entries := k.GetAll(candidate); entries != nil {
				out = append(out, Token{
					Text: candidate, Start: bytePos, End: bytePos + len(candidate),
					Type: Known, Entries: entries,
				})
				bytePos += len(candidate)
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		r := string(runes[i])
		if entries := k.GetAll(r); entries != nil {
			out = append(out, Token{Text: r, Start: bytePos, End: bytePos + len(r), Type: Known, Entries: entries})
		} else {
			out = append(out, Token{Text: r, Start: bytePos, End: bytePos + len(r), Type: Unknown})
		}
		bytePos += len(r)
		i++
	}
	return out
}
