package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

func TestNewCard(t *testing.T) {
	// When: a card is created from a 3x3 grid
	card := NewCard(entity.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, "Card 1", MarkOncePerCell)

	// Then: all counters start at zero and there is no win
	require.Equal(t, "Card 1", card.ID())
	require.Equal(t, 3, card.Size())
	assert.Equal(t, []int{0, 0, 0}, card.RowCounts())
	assert.Equal(t, []int{0, 0, 0}, card.ColumnCounts())
	assert.Empty(t, card.CheckWin())
}

func TestCard_Mark(t *testing.T) {
	t.Run("Number on the card", func(t *testing.T) {
		// Given: a 2x2 card
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkOncePerCell)

		// When: 1 is called
		card.Mark(1)

		// Then: the first row and first column are incremented
		assert.Equal(t, []int{1, 0}, card.RowCounts())
		assert.Equal(t, []int{1, 0}, card.ColumnCounts())
	})

	t.Run("Number not on the card", func(t *testing.T) {
		// Given: a 2x2 card
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkOncePerCell)

		// When: a number that is not on the card is called
		card.Mark(42)

		// Then: counters are unchanged
		assert.Equal(t, []int{0, 0}, card.RowCounts())
		assert.Equal(t, []int{0, 0}, card.ColumnCounts())
	})

	t.Run("Cards do not share state", func(t *testing.T) {
		// Given: two cards built from the same grid
		grid := entity.Grid{{1, 2}, {3, 4}}
		first := NewCard(grid, "Card 1", MarkOncePerCell)
		second := NewCard(grid, "Card 2", MarkOncePerCell)

		// When: only the first card is marked
		first.Mark(4)

		// Then: the second card is untouched
		assert.Equal(t, []int{0, 1}, first.RowCounts())
		assert.Equal(t, []int{0, 0}, second.RowCounts())
	})

	t.Run("Returned counters are copies", func(t *testing.T) {
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkOncePerCell)

		counts := card.RowCounts()
		counts[0] = 2

		assert.Empty(t, card.CheckWin())
	})
}

func TestCard_MarkDuplicateCall(t *testing.T) {
	t.Run("Once per cell", func(t *testing.T) {
		// Given: a 2x2 card with the once-per-cell policy
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkOncePerCell)

		// When: 1 is called twice
		card.Mark(1)
		card.Mark(1)

		// Then: it is counted once and there is no win
		assert.Equal(t, []int{1, 0}, card.RowCounts())
		assert.Equal(t, []int{1, 0}, card.ColumnCounts())
		assert.Empty(t, card.CheckWin())
	})

	t.Run("Every call", func(t *testing.T) {
		// Given: a 2x2 card with the every-call policy
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkEveryCall)

		// When: 1 is called twice
		card.Mark(1)
		card.Mark(1)

		// Then: both calls count, row 1 and column 1 report a win without 2 or 3 being called
		assert.Equal(t, []int{2, 0}, card.RowCounts())
		assert.Equal(t, []int{2, 0}, card.ColumnCounts())
		assert.Equal(t, []entity.WinEvent{
			entity.NewRowWin(1, "Card 1"),
			entity.NewColumnWin(1, "Card 1"),
		}, card.CheckWin())
	})
}

func TestCard_CheckWin(t *testing.T) {
	t.Run("Row win", func(t *testing.T) {
		// Given: a 2x2 card
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkOncePerCell)

		// When: both numbers of the first row are called
		card.Mark(1)
		card.Mark(2)

		// Then: row 1 wins
		assert.Equal(t, []entity.WinEvent{entity.NewRowWin(1, "Card 1")}, card.CheckWin())
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: a 3x3 card
		card := NewCard(entity.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, "Card 7", MarkOncePerCell)

		// When: the whole last column is called
		for _, n := range []int{3, 6, 9} {
			card.Mark(n)
		}

		// Then: column 3 wins
		assert.Equal(t, []entity.WinEvent{entity.NewColumnWin(3, "Card 7")}, card.CheckWin())
	})

	t.Run("Row and column on the same call", func(t *testing.T) {
		// Given: a 3x3 card where row 1 and column 1 miss only the shared corner
		card := NewCard(entity.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, "Card 1", MarkOncePerCell)
		for _, n := range []int{2, 3, 4, 7} {
			card.Mark(n)
		}
		require.Empty(t, card.CheckWin())

		// When: the corner is called
		card.Mark(1)

		// Then: both lines are reported
		assert.Equal(t, []entity.WinEvent{
			entity.NewRowWin(1, "Card 1"),
			entity.NewColumnWin(1, "Card 1"),
		}, card.CheckWin())
	})

	t.Run("Idempotent", func(t *testing.T) {
		// Given: a card with a completed row
		card := NewCard(entity.Grid{{1, 2}, {3, 4}}, "Card 1", MarkOncePerCell)
		card.Mark(3)
		card.Mark(4)

		// When: the win is checked twice without a mark in between
		first := card.CheckWin()
		second := card.CheckWin()

		// Then: both checks report the same single win
		require.Len(t, first, 1)
		assert.Equal(t, first, second)
	})
}

func TestParseMarkPolicy(t *testing.T) {
	tests := []struct {
		name string
		want MarkPolicy
	}{
		{name: "", want: MarkOncePerCell},
		{name: "once-per-cell", want: MarkOncePerCell},
		{name: "every-call", want: MarkEveryCall},
	}

	for _, tt := range tests {
		policy, err := ParseMarkPolicy(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, policy)
	}

	_, err := ParseMarkPolicy("twice")
	require.ErrorIs(t, err, apperror.ErrUnknownMarkPolicy)
}
