package chedaka

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/kosha"
)

func buildKosha(t *testing.T) *kosha.Kosha {
	t.Helper()
	return kosha.NewBuilder().
		Add("rAmaH", kosha.Pack(kosha.PosSubanta, 1, 1)).
		Add("Bavati", kosha.Pack(kosha.PosTinanta, 2, 1)).
		Build()
}

func TestSegmentKnownWords(t *testing.T) {
	k := buildKosha(t)
	tokens := Segment("rAmaHBavati", k)
	require.Len(t, tokens, 2)
	require.Equal(t, "rAmaH", tokens[0].Text)
	require.Equal(t, Known, tokens[0].Type)
	require.Equal(t, "Bavati", tokens[1].Text)
	require.Equal(t, Known, tokens[1].Type)
}

func TestSegmentReconstructsOriginalText(t *testing.T) {
	k := buildKosha(t)
	text := "rAmaHxBavati"
	tokens := Segment(text, k)

	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.Text
	}
	require.Equal(t, text, rebuilt)
}

func TestSegmentUnknownRuneFallsBackToSingleToken(t *testing.T) {
	k := buildKosha(t)
	tokens := Segment("x", k)
	require.Len(t, tokens, 1)
	require.Equal(t, Unknown, tokens[0].Type)
	require.Equal(t, "x", tokens[0].Text)
}

func TestSegmentEmptyKoshaYieldsAllUnknown(t *testing.T) {
	k := kosha.NewBuilder().Build()
	tokens := Segment("deva", k)
	for _, tok := range tokens {
		require.Equal(t, Unknown, tok.Type)
	}
	require.Len(t, tokens, 4)
}
