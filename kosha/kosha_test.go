package kosha

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	e := Pack(PosTinanta, 42, 7)
	require.Equal(t, PosTinanta, e.PosTag())
	require.Equal(t, uint32(42), e.StemID())
	require.Equal(t, uint32(7), e.SlotID())
}

func buildSample(t *testing.T) *Kosha {
	t.Helper()
	return NewBuilder().
		Add("Bavati", Pack(PosTinanta, 1, 1)).
		Add("devaH", Pack(PosSubanta, 2, 1)).
		Add("devO", Pack(PosSubanta, 2, 2)).
		Add("devaH", Pack(PosSubantaPrefix, 2, 3)).
		Build()
}

func TestGetAllReturnsAllEntriesForKey(t *testing.T) {
	k := buildSample(t)
	entries := k.GetAll("devaH")
	require.Len(t, entries, 2)
	require.Equal(t, PosSubanta, entries[0].PosTag())
	require.Equal(t, PosSubantaPrefix, entries[1].PosTag())
}

func TestGetAllMissingKeyReturnsNil(t *testing.T) {
	k := buildSample(t)
	require.Nil(t, k.GetAll("nAsti"))
}

func TestContainsKeyAndPrefix(t *testing.T) {
	k := buildSample(t)
	require.True(t, k.ContainsKey("devaH"))
	require.False(t, k.ContainsKey("deva"))
	require.True(t, k.ContainsPrefix("dev"))
	require.False(t, k.ContainsPrefix("xyz"))
}

func TestStreamVisitsEveryEntryInSortedKeyOrder(t *testing.T) {
	k := buildSample(t)
	var keys []string
	k.Stream(func(e Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	// "devO" sorts before "devaH": byte 'O' (0x4F) precedes byte 'a' (0x61).
	require.Equal(t, []string{"Bavati", "devO", "devaH", "devaH"}, keys)
}

func TestStreamStopsEarly(t *testing.T) {
	k := buildSample(t)
	count := 0
	k.Stream(func(e Entry) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}
