package bingo

import (
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

// Card tracks how many numbers were called on each row and column of one grid.
// The grid is assumed to be square and validated by the parser.
type Card struct {
	id     string
	grid   entity.Grid
	policy MarkPolicy

	rowCounts    []int
	columnCounts []int
	marked       [][]bool
}

func NewCard(grid entity.Grid, id string, policy MarkPolicy) *Card {
	size := grid.Size()

	card := &Card{
		id:           id,
		grid:         grid,
		policy:       policy,
		rowCounts:    make([]int, size),
		columnCounts: make([]int, size),
	}

	if policy != MarkEveryCall {
		card.marked = make([][]bool, size)
		for i := range card.marked {
			card.marked[i] = make([]bool, size)
		}
	}

	return card
}

func (that *Card) ID() string {
	return that.id
}

func (that *Card) Size() int {
	return len(that.rowCounts)
}

// Mark - records the called number on the card. Only the first matching cell is marked,
// a number that is not on the card is ignored.
func (that *Card) Mark(called int) {
	for row, numbers := range that.grid {
		for column, number := range numbers {
			if number != called {
				continue
			}

			if that.marked != nil {
				if that.marked[row][column] {
					return
				}
				that.marked[row][column] = true
			}

			that.rowCounts[row]++
			that.columnCounts[column]++

			return
		}
	}
}

// CheckWin - returns a win for every row and column that has all of its numbers called.
// Indexes are 1-based. Calling it again without a Mark in between returns the same wins.
func (that *Card) CheckWin() []entity.WinEvent {
	var wins []entity.WinEvent

	target := that.Size()
	for i := 0; i < target; i++ {
		if that.rowCounts[i] == target {
			wins = append(wins, entity.NewRowWin(i+1, that.id))
		}

		if that.columnCounts[i] == target {
			wins = append(wins, entity.NewColumnWin(i+1, that.id))
		}
	}

	return wins
}

func (that *Card) RowCounts() []int {
	return append([]int(nil), that.rowCounts...)
}

func (that *Card) ColumnCounts() []int {
	return append([]int(nil), that.columnCounts...)
}
