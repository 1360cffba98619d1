package engine

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

// winLines - the 8 winning patterns: 3 rows, 3 columns, 2 diagonals.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [9]string

func NewBoard() Board {
	return Board{}
}

// Place - puts mark into cell if it is on the board and still empty.
// Returns whether the mark was placed; an invalid placement leaves the board untouched.
func (that *Board) Place(cell int, mark string) bool {
	if cell < 0 || cell >= len(that) {
		return false
	}

	if that[cell] != EmptyCell {
		return false
	}

	that[cell] = mark

	return true
}

// AvailableCells - returns the indexes of all empty cells in ascending order.
func (that Board) AvailableCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Winner - returns the mark holding a complete win-line, or EmptyCell if there is none.
func (that Board) Winner() string {
	for _, line := range winLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// Clone - returns an independent copy; mutating one board never affects the other.
func (that Board) Clone() Board {
	return that
}
