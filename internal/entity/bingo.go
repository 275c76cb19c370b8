package entity

// Grid is a square matrix of card numbers, indexed [row][column].
type Grid [][]int

// Size - returns the number of rows, which equals the number of columns for a parsed grid.
func (that Grid) Size() int {
	return len(that)
}

// BingoData is the validated content of a bingo file.
type BingoData struct {
	Calls []int  `json:"calls"`
	Grids []Grid `json:"grids"`
}
