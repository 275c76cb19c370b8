package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

const twoCards = "7, 4, 9, 5, 11\n" +
	"\n" +
	"1, 2\n" +
	"3, 4\n" +
	"\n" +
	"5, 6\n" +
	"7, 8\n" +
	"\n"

func TestParse(t *testing.T) {
	t.Run("Calls and cards", func(t *testing.T) {
		// When: a well-formed file with two 2x2 cards is parsed
		data, err := Parse(twoCards)

		// Then: the calls and both cards are returned in file order
		require.NoError(t, err)
		expected := &entity.BingoData{
			Calls: []int{7, 4, 9, 5, 11},
			Grids: []entity.Grid{
				{{1, 2}, {3, 4}},
				{{5, 6}, {7, 8}},
			},
		}
		require.Equal(t, expected, data)
	})

	t.Run("Deterministic", func(t *testing.T) {
		// When: the same content is parsed twice
		first, err := Parse(twoCards)
		require.NoError(t, err)
		second, err := Parse(twoCards)
		require.NoError(t, err)

		// Then: both results are equal
		assert.Equal(t, first, second)
	})

	t.Run("Without trailing blank line", func(t *testing.T) {
		// Given: the last card is not followed by a blank line
		text := "1,2,3\n\n1,2\n3,4"

		// When: the file is parsed
		data, err := Parse(text)

		// Then: the last card is still collected
		require.NoError(t, err)
		require.Len(t, data.Grids, 1)
		assert.Equal(t, entity.Grid{{1, 2}, {3, 4}}, data.Grids[0])
	})

	t.Run("Windows line endings", func(t *testing.T) {
		// Given: a file written with CRLF line endings
		text := "1,2,3\r\n\r\n1,2\r\n3,4\r\n\r\n"

		// When: the file is parsed
		data, err := Parse(text)

		// Then: carriage returns do not break blank-line detection
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, data.Calls)
		require.Len(t, data.Grids, 1)
	})

	t.Run("Calls only", func(t *testing.T) {
		// When: a file without cards is parsed
		data, err := Parse("1,2,3\n")

		// Then: there are no cards and no error
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, data.Calls)
		assert.Empty(t, data.Grids)
	})

	t.Run("Consecutive blank lines", func(t *testing.T) {
		// Given: two blank lines between cards
		text := "1,2\n\n1,2\n3,4\n\n\n5,6\n7,8\n"

		// When: the file is parsed
		data, err := Parse(text)

		// Then: the empty group is skipped
		require.NoError(t, err)
		assert.Len(t, data.Grids, 2)
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "Empty input",
			text:    "",
			wantErr: apperror.ErrMalformedCalls,
		},
		{
			name:    "Non numeric call",
			text:    "1,a,3\n\n1,2\n3,4\n",
			wantErr: apperror.ErrMalformedCalls,
		},
		{
			name:    "Trailing comma in calls",
			text:    "1,2,3,\n\n1,2\n3,4\n",
			wantErr: apperror.ErrMalformedCalls,
		},
		{
			name:    "Trailing comma in row",
			text:    "1,2,3\n\n1,2,\n3,4\n",
			wantErr: apperror.ErrMalformedRow,
		},
		{
			name:    "Non numeric cell",
			text:    "1,2,3\n\n1,2\n3,x\n",
			wantErr: apperror.ErrMalformedRow,
		},
		{
			name:    "Mismatched row lengths",
			text:    "1,2,3\n\n1,2\n3,4,5\n",
			wantErr: apperror.ErrInconsistentSize,
		},
		{
			name:    "Second card has more rows",
			text:    "1,2,3\n\n1,2\n3,4\n\n1,2\n3,4\n5,6\n",
			wantErr: apperror.ErrInconsistentSize,
		},
		{
			name:    "Second card has longer rows",
			text:    "1,2,3\n\n1,2\n3,4\n\n1,2,3\n4,5,6\n",
			wantErr: apperror.ErrInconsistentSize,
		},
		{
			name:    "Non square card",
			text:    "1,2,3\n\n1,2,3\n4,5,6\n",
			wantErr: apperror.ErrInconsistentSize,
		},
		{
			name:    "Missing blank line after calls",
			text:    "1,2,3\n1,2\n3,4\n",
			wantErr: apperror.ErrStructuralParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: a malformed file is parsed
			data, err := Parse(tt.text)

			// Then: the parse fails as a whole with the expected error
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, data)
		})
	}
}

func TestParseLines(t *testing.T) {
	// Given: content already split into lines
	lines := []string{"3,1", "", "1"}

	// When: the lines are parsed
	data, err := ParseLines(lines)

	// Then: a single 1x1 card is returned
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, data.Calls)
	assert.Equal(t, []entity.Grid{{{1}}}, data.Grids)
}
