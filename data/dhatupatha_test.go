package data

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
)

func TestLoadDhatupathaResolvesKnownCodes(t *testing.T) {
	dp, err := LoadDhatupatha()
	require.NoError(t, err)

	bu, ok := dp.Get("01.0001")
	require.True(t, ok)
	require.Equal(t, "BU", bu.Upadesha())
	require.Equal(t, dhatu.Bhvadi, bu.Gana())

	gam, ok := dp.Get("06.0137")
	require.True(t, ok)
	require.Equal(t, "gama", gam.Upadesha())
	require.Equal(t, dhatu.Tudadi, gam.Gana())

	cura, ok := dp.Get("10.0001")
	require.True(t, ok)
	require.Equal(t, dhatu.Curadi, cura.Gana())
}

func TestLoadDhatupathaMissingCodeIsAbsent(t *testing.T) {
	dp, err := LoadDhatupatha()
	require.NoError(t, err)

	_, ok := dp.Get("99.9999")
	require.False(t, ok)
}

func TestParseDhatupathaRejectsMalformedCode(t *testing.T) {
	_, err := ParseDhatupatha("code\tupadesha\nnotacode\tBU\n")
	require.Error(t, err)
}

func TestParseDhatupathaRejectsUnknownGana(t *testing.T) {
	_, err := ParseDhatupatha("code\tupadesha\n99.0001\tBU\n")
	require.Error(t, err)
}

func TestParseDhatupathaSkipsBlankUpadesha(t *testing.T) {
	dp, err := ParseDhatupatha("code\tupadesha\n01.0001\t-\n01.0002\teDa\n")
	require.NoError(t, err)
	require.Len(t, dp.Entries(), 1)
	require.Equal(t, "eDa", dp.Entries()[0].Dhatu.Upadesha())
}
