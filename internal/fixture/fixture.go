package fixture

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

// Options describes the shape of a generated bingo file.
type Options struct {
	CardSize      int
	NumberOfCalls int
	NumberOfCards int
}

// Generate - builds random calls and cards. Calls are a permutation of 0..NumberOfCalls-1,
// every card holds distinct numbers from the same range.
func Generate(rng *rand.Rand, opts Options) (*entity.BingoData, error) {
	data := &entity.BingoData{
		Calls: GenerateCalls(rng, opts.NumberOfCalls),
		Grids: make([]entity.Grid, 0, opts.NumberOfCards),
	}

	for i := 0; i < opts.NumberOfCards; i++ {
		grid, err := GenerateCard(rng, opts.CardSize, opts.NumberOfCalls)
		if err != nil {
			return nil, fmt.Errorf("failed to generate card %d: %w", i+1, err)
		}

		data.Grids = append(data.Grids, grid)
	}

	return data, nil
}

// GenerateCalls - returns the numbers 0..length-1 in random order, without repeats.
func GenerateCalls(rng *rand.Rand, length int) []int {
	return rng.Perm(length)
}

// GenerateCard - returns a size × size grid of distinct numbers below maxNumber.
func GenerateCard(rng *rand.Rand, size, maxNumber int) (entity.Grid, error) {
	if size*size > maxNumber {
		return nil, fmt.Errorf("%w: %d cells, max number %d", apperror.ErrCardTooLarge, size*size, maxNumber)
	}

	numbers := rng.Perm(maxNumber)

	grid := make(entity.Grid, size)
	for row := range grid {
		grid[row] = numbers[row*size : (row+1)*size]
	}

	return grid, nil
}

// Render - writes the data in the bingo file format: calls, a blank line, then every card followed by a blank line.
func Render(data *entity.BingoData) string {
	var sb strings.Builder

	sb.WriteString(joinNumbers(data.Calls))
	sb.WriteString("\n\n")

	for _, grid := range data.Grids {
		for _, row := range grid {
			sb.WriteString(joinNumbers(row))
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprint(n)
	}

	return strings.Join(parts, ", ")
}
