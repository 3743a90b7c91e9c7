package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rank(n int) *int { return &n }

func TestSetRankValidation(t *testing.T) {
	item := Item{ID: 1, MunicipalityID: 7}

	for _, bad := range []int{0, 4, -1, 99} {
		_, err := SetRank(item, rank(bad), nil, Unasked)
		assert.ErrorIs(t, err, ErrInvalidRank)
	}

	// nil is valid: it means "clear"
	res, err := SetRank(item, nil, nil, Unasked)
	require.NoError(t, err)
	assert.Equal(t, Applied, res.Outcome)
}

func TestToggleToClear(t *testing.T) {
	item := Item{ID: 1, MunicipalityID: 7, Rank: rank(2)}

	res, err := SetRank(item, rank(2), []Item{item}, Unasked)
	require.NoError(t, err)

	require.Equal(t, Applied, res.Outcome)
	require.Len(t, res.Writes, 1)
	assert.Nil(t, res.Writes[0].Rank)
	assert.False(t, res.Writes[0].Featured)
}

func TestConflictFlow(t *testing.T) {
	x := Item{ID: 1, MunicipalityID: 7, Category: "kakanin", Rank: rank(1)}
	y := Item{ID: 2, MunicipalityID: 7, Category: "kakanin"}
	z := Item{ID: 3, MunicipalityID: 7, Category: "kakanin", Rank: rank(2)}
	scope := []Item{x, y, z}

	t.Run("unasked signals confirmation", func(t *testing.T) {
		res, err := SetRank(y, rank(1), scope, Unasked)
		require.NoError(t, err)
		require.Equal(t, NeedsConfirmation, res.Outcome)
		require.NotNil(t, res.Conflict)
		assert.Equal(t, x.ID, res.Conflict.ID)
		assert.Empty(t, res.Writes)
	})

	t.Run("declined is a no-op outcome, not an error", func(t *testing.T) {
		res, err := SetRank(y, rank(1), scope, Declined)
		require.NoError(t, err)
		assert.Equal(t, DeclinedNoop, res.Outcome)
		assert.Empty(t, res.Writes)
	})

	t.Run("approved clears the loser before setting the winner", func(t *testing.T) {
		res, err := SetRank(y, rank(1), scope, Approved)
		require.NoError(t, err)
		require.Equal(t, Applied, res.Outcome)
		require.Len(t, res.Writes, 2)

		assert.Equal(t, x.ID, res.Writes[0].ID)
		assert.Nil(t, res.Writes[0].Rank)
		assert.False(t, res.Writes[0].Featured)

		assert.Equal(t, y.ID, res.Writes[1].ID)
		require.NotNil(t, res.Writes[1].Rank)
		assert.Equal(t, 1, *res.Writes[1].Rank)
		assert.True(t, res.Writes[1].Featured)
	})

	t.Run("no conflict on a free slot", func(t *testing.T) {
		res, err := SetRank(y, rank(3), scope, Unasked)
		require.NoError(t, err)
		require.Equal(t, Applied, res.Outcome)
		require.Len(t, res.Writes, 1)
		assert.Equal(t, y.ID, res.Writes[0].ID)
	})
}

func TestScopeBoundaries(t *testing.T) {
	item := Item{ID: 1, MunicipalityID: 7, Category: "kakanin"}

	t.Run("same rank in another category is not a conflict", func(t *testing.T) {
		other := Item{ID: 2, MunicipalityID: 7, Category: "main", Rank: rank(1)}
		res, err := SetRank(item, rank(1), []Item{item, other}, Unasked)
		require.NoError(t, err)
		assert.Equal(t, Applied, res.Outcome)
	})

	t.Run("same rank in another municipality is not a conflict", func(t *testing.T) {
		other := Item{ID: 2, MunicipalityID: 8, Category: "kakanin", Rank: rank(1)}
		res, err := SetRank(item, rank(1), []Item{item, other}, Unasked)
		require.NoError(t, err)
		assert.Equal(t, Applied, res.Outcome)
	})

	t.Run("restaurant scopes ignore category entirely", func(t *testing.T) {
		self := Item{ID: 1, MunicipalityID: 7}
		other := Item{ID: 2, MunicipalityID: 7, Rank: rank(1)}
		res, err := SetRank(self, rank(1), []Item{self, other}, Unasked)
		require.NoError(t, err)
		assert.Equal(t, NeedsConfirmation, res.Outcome)
	})
}

// After any sequence of approved assignments over one scope, each slot
// has at most one holder.
func TestSlotUniquenessInvariant(t *testing.T) {
	scope := []Item{
		{ID: 1, MunicipalityID: 7, Category: "kakanin"},
		{ID: 2, MunicipalityID: 7, Category: "kakanin"},
		{ID: 3, MunicipalityID: 7, Category: "kakanin"},
		{ID: 4, MunicipalityID: 7, Category: "kakanin"},
	}

	apply := func(itemID uint, desired *int) {
		var self Item
		for _, s := range scope {
			if s.ID == itemID {
				self = s
			}
		}
		res, err := SetRank(self, desired, scope, Approved)
		require.NoError(t, err)
		require.Equal(t, Applied, res.Outcome)
		for _, w := range res.Writes {
			for i := range scope {
				if scope[i].ID == w.ID {
					scope[i].Rank = w.Rank
				}
			}
		}
	}

	apply(1, rank(1))
	apply(2, rank(2))
	apply(3, rank(1)) // displaces 1
	apply(4, rank(3))
	apply(2, rank(3)) // displaces 4, frees slot 2
	apply(1, rank(2))

	holders := map[int][]uint{}
	for _, s := range scope {
		if s.Rank != nil {
			holders[*s.Rank] = append(holders[*s.Rank], s.ID)
		}
	}
	for slot, ids := range holders {
		assert.Lenf(t, ids, 1, "slot %d has %v", slot, ids)
	}
	assert.Equal(t, []uint{3}, holders[1])
	assert.Equal(t, []uint{1}, holders[2])
	assert.Equal(t, []uint{2}, holders[3])
}
