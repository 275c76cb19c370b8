package bingo

import (
	"fmt"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
)

// MarkPolicy decides what happens when a number that is already marked on a card is called again.
type MarkPolicy string

const (
	// MarkOncePerCell - a cell counts towards its row and column only the first time it is called.
	MarkOncePerCell MarkPolicy = "once-per-cell"
	// MarkEveryCall - every call of a number counts again, a repeated call can complete a line early.
	MarkEveryCall MarkPolicy = "every-call"
)

// ParseMarkPolicy - returns the policy by its config name. An empty name selects MarkOncePerCell.
func ParseMarkPolicy(name string) (MarkPolicy, error) {
	switch MarkPolicy(name) {
	case "", MarkOncePerCell:
		return MarkOncePerCell, nil
	case MarkEveryCall:
		return MarkEveryCall, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMarkPolicy, name)
	}
}
