package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalChapters(t *testing.T) {
	assert.Equal(t, 1189, TotalChapters())
}

func TestLookup(t *testing.T) {
	book, ok := Lookup("Genesis")
	require.True(t, ok)
	assert.Equal(t, "gn", book.Abbrev)
	assert.Equal(t, 50, book.Chapters)

	book, ok = Lookup("GN")
	require.True(t, ok)
	assert.Equal(t, "Genesis", book.Name)

	book, ok = Lookup("1 samuel")
	require.True(t, ok)
	assert.Equal(t, "1sa", book.Abbrev)

	_, ok = Lookup("Gandalf")
	assert.False(t, ok)
}

func TestSequentialOrder(t *testing.T) {
	order := SequentialOrder()
	require.Len(t, order, TotalChapters())
	assert.Equal(t, "gn-1", order[0])
	assert.Equal(t, "gn-50", order[49])
	assert.Equal(t, "ex-1", order[50])
	assert.Equal(t, "re-22", order[len(order)-1])
}

func TestChronologicalOrderSameMembership(t *testing.T) {
	sequential := SequentialOrder()
	chronological := ChronologicalOrder()
	require.Len(t, chronological, len(sequential))
	assert.NotEqual(t, sequential, chronological)

	seen := make(map[string]struct{}, len(chronological))
	for _, key := range chronological {
		seen[key] = struct{}{}
	}
	for _, key := range sequential {
		_, ok := seen[key]
		require.True(t, ok, "missing %s from chronological order", key)
	}

	// Job follows Genesis in the chronological table.
	assert.Equal(t, "job-1", chronological[50])
}

func TestCustomOrder(t *testing.T) {
	order, err := CustomOrder("mt")
	require.NoError(t, err)
	require.Len(t, order, TotalChapters())
	assert.Equal(t, "mt-1", order[0])
	// Wraps through the remainder of the canon and ends just before Matthew.
	assert.Equal(t, "mal-4", order[len(order)-1])

	_, err = CustomOrder("nope")
	assert.Error(t, err)
}
