package entity

import (
	"fmt"
	"time"
)

// WinEvent is one completed row or column on one card. Exactly one of Row and Column is set, 1-based.
type WinEvent struct {
	Row    *int   `json:"row,omitempty"`
	Column *int   `json:"column,omitempty"`
	ID     string `json:"id"`
}

func NewRowWin(row int, cardID string) WinEvent {
	return WinEvent{Row: &row, ID: cardID}
}

func NewColumnWin(column int, cardID string) WinEvent {
	return WinEvent{Column: &column, ID: cardID}
}

func (that WinEvent) IsRow() bool {
	return that.Row != nil
}

// Line - returns a readable name of the completed line, e.g. "row 2" or "column 5".
func (that WinEvent) Line() string {
	if that.Row != nil {
		return fmt.Sprintf("row %d", *that.Row)
	}

	if that.Column != nil {
		return fmt.Sprintf("column %d", *that.Column)
	}

	return ""
}

// Outcome is the result of playing one bingo file to its first winning call.
type Outcome struct {
	Winners   []WinEvent `json:"winners"`
	Call      *int       `json:"call,omitempty"`
	Turn      int        `json:"turn,omitempty"`
	CardCount int        `json:"card_count"`
	CallCount int        `json:"call_count"`
}

func (that *Outcome) HasWinner() bool {
	return len(that.Winners) > 0
}

// WinningCards - returns the distinct ids of winning cards in the order they were reported.
func (that *Outcome) WinningCards() []string {
	seen := make(map[string]struct{}, len(that.Winners))
	cards := make([]string, 0, len(that.Winners))

	for _, win := range that.Winners {
		if _, ok := seen[win.ID]; ok {
			continue
		}

		seen[win.ID] = struct{}{}
		cards = append(cards, win.ID)
	}

	return cards
}

// SolveRecord is one entry of the solve history.
type SolveRecord struct {
	FileID   string    `json:"file_id"`
	Digest   string    `json:"digest"`
	Outcome  Outcome   `json:"outcome"`
	SolvedAt time.Time `json:"solved_at"`
}
