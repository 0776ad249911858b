package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

// Board - the authoritative Tic-Tac-Toe grid.
//
//	0 | 1 | 2
//	---------
//	3 | 4 | 5
//	---------
//	6 | 7 | 8
//
// Cells are only ever written through Play, which keeps movesPlayed and emptyCells in step.
type Board struct {
	cells       entity.Snapshot
	movesPlayed int
	emptyCells  []int
}

func NewBoard() *Board {
	emptyCells := make([]int, entity.BoardSize)
	for i := range emptyCells {
		emptyCells[i] = i
	}

	return &Board{emptyCells: emptyCells}
}

func (that *Board) Size() int {
	return entity.BoardSize
}

func (that *Board) MovesPlayed() int {
	return that.movesPlayed
}

func (that *Board) IsFull() bool {
	return that.movesPlayed == entity.BoardSize
}

func (that *Board) IsEmpty() bool {
	return that.movesPlayed == 0
}

// IsOccupied - reports whether cell holds a mark.
func (that *Board) IsOccupied(cell int) (bool, error) {
	if err := that.checkRange(cell); err != nil {
		return false, err
	}

	return that.cells[cell] != entity.NoMark, nil
}

// ValidateMove - checks that cell exists and is still free. It never changes the board.
func (that *Board) ValidateMove(cell int) error {
	occupied, err := that.IsOccupied(cell)
	if err != nil {
		return err
	}

	if occupied {
		return fmt.Errorf("%w: cell %d by %s", apperror.ErrAlreadyOccupied, cell, that.cells[cell])
	}

	return nil
}

// Play - stamps mark on cell. On error the board is left untouched.
func (that *Board) Play(cell int, mark entity.Mark) error {
	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(mark))
	}

	if err := that.ValidateMove(cell); err != nil {
		return err
	}

	that.cells[cell] = mark
	that.movesPlayed++
	that.emptyCells = slices.DeleteFunc(that.emptyCells, func(c int) bool { return c == cell })

	return nil
}

// EmptyCells - returns the free cells in ascending order. The slice is a copy.
func (that *Board) EmptyCells() []int {
	return slices.Clone(that.emptyCells)
}

// Snapshot - returns a copy of the grid, safe to hand to robots.
func (that *Board) Snapshot() entity.Snapshot {
	return that.cells
}

func (that *Board) HasWinningLine() bool {
	_, ok := that.WinningMark()
	return ok
}

func (that *Board) WinningMark() (entity.Mark, bool) {
	return that.cells.WinningMark()
}

func (that *Board) checkRange(cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d, board size %d", apperror.ErrOutOfRange, cell, entity.BoardSize)
	}

	return nil
}
