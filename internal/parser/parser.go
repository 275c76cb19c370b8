package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

const separator = ","

// Parse - converts the raw content of a bingo file into calls and cards.
//
// Expected layout: the calls on the first line, a blank line, then every card
// as comma-separated rows followed by a blank line. Any failure aborts the
// whole parse, no partial data is returned.
func Parse(text string) (*entity.BingoData, error) {
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines - same as Parse, for content already split into lines.
func ParseLines(lines []string) (*entity.BingoData, error) {
	lines = trimCarriageReturns(lines)

	if len(lines) == 0 || isBlank(lines[0]) {
		return nil, fmt.Errorf("%w: first line is empty", apperror.ErrMalformedCalls)
	}

	calls, err := parseNumbers(lines[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedCalls, err)
	}

	grids, err := parseGrids(lines)
	if err != nil {
		return nil, err
	}

	return &entity.BingoData{
		Calls: calls,
		Grids: grids,
	}, nil
}

// parseGrids - scans every line after the calls with a cursor.
// A blank line opens a card, the card ends at the next blank line or the end of input.
func parseGrids(lines []string) ([]entity.Grid, error) {
	var (
		grids    []entity.Grid
		size     int
		attempts int
	)

	maxAttempts := len(lines)

	for cursor := 1; cursor < len(lines)-1; {
		if !isBlank(lines[cursor]) {
			// the cursor is not moved here, a card row outside of a card can only be reported
			attempts++
			if attempts >= maxAttempts {
				return nil, fmt.Errorf("%w: expected a blank line before line %d", apperror.ErrStructuralParse, cursor+1)
			}

			continue
		}

		cursor++
		start := cursor

		var grid entity.Grid
		for cursor < len(lines) && !isBlank(lines[cursor]) {
			row, err := parseNumbers(lines[cursor])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", apperror.ErrMalformedRow, cursor+1, err)
			}

			grid = append(grid, row)
			cursor++
		}

		if len(grid) == 0 {
			continue
		}

		if size == 0 {
			size = len(grid)
		}

		if err := validateGrid(grid, size); err != nil {
			return nil, fmt.Errorf("card %d starting at line %d: %w", len(grids)+1, start+1, err)
		}

		grids = append(grids, grid)
	}

	return grids, nil
}

// validateGrid - checks that every row has the length of the first one and the card is size × size.
func validateGrid(grid entity.Grid, size int) error {
	width := len(grid[0])
	for i, row := range grid {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d numbers, expected %d", apperror.ErrInconsistentSize, i+1, len(row), width)
		}
	}

	if len(grid) != size {
		return fmt.Errorf("%w: card has %d rows, expected %d", apperror.ErrInconsistentSize, len(grid), size)
	}

	if width != size {
		return fmt.Errorf("%w: rows have %d numbers, expected %d", apperror.ErrInconsistentSize, width, size)
	}

	return nil
}

// parseNumbers - splits a line by commas and parses every token as an integer.
// Surrounding spaces are allowed, an empty token (e.g. from a trailing comma) is not.
func parseNumbers(line string) ([]int, error) {
	tokens := strings.Split(line, separator)
	numbers := make([]int, 0, len(tokens))

	for i, token := range tokens {
		number, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, fmt.Errorf("token %d %q is not an integer", i+1, token)
		}

		numbers = append(numbers, number)
	}

	return numbers, nil
}

func trimCarriageReturns(lines []string) []string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSuffix(line, "\r")
	}

	return trimmed
}

func isBlank(line string) bool {
	return len(line) == 0
}
