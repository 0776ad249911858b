package entity

const (
	MarkX  Mark = "X"
	MarkO  Mark = "O"
	NoMark Mark = ""

	BoardSize = 9
)

// WinCombos - the eight lines of the board: rows, columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark - the side a move is stamped with. NoMark marks an empty cell.
type Mark string

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Opponent - returns the other playing mark. NoMark has no opponent and maps to itself.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return NoMark
	}
}

func (that Mark) String() string {
	if that == NoMark {
		return "-"
	}
	return string(that)
}

// Snapshot - a value copy of the board handed to robots and presentation code.
// Cells are laid out row-major, 0 is the top-left corner.
type Snapshot [BoardSize]Mark

func (that Snapshot) Size() int {
	return len(that)
}

// Cell - returns the mark at cell, NoMark for empty or out of range cells.
func (that Snapshot) Cell(cell int) Mark {
	if cell < 0 || cell >= len(that) {
		return NoMark
	}
	return that[cell]
}

func (that Snapshot) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, mark := range that {
		if mark == NoMark {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Snapshot) MovesPlayed() int {
	return len(that) - len(that.EmptyCells())
}

func (that Snapshot) IsFull() bool {
	return that.MovesPlayed() == len(that)
}

func (that Snapshot) IsEmpty() bool {
	return that.MovesPlayed() == 0
}

// WinningMark - returns the mark of the first complete line in WinCombos order.
func (that Snapshot) WinningMark() (Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != NoMark && a == b && b == c {
			return a, true
		}
	}

	return NoMark, false
}
