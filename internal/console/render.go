package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
	"github.com/rocketscienceinc/tictactoe-wars/internal/tictactoe"
)

const (
	rowSize      = 3
	rowSeparator = "───┼───┼───"
)

// Render - draws the snapshot as a 3x3 grid, empty cells are left blank.
//
//	 X │ O │
//	───┼───┼───
//	   │ X │
//	───┼───┼───
//	   │   │ O
func Render(snapshot entity.Snapshot) string {
	var sb strings.Builder

	for row := 0; row < snapshot.Size()/rowSize; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}

		cells := make([]string, rowSize)
		for col := range cells {
			cells[col] = cellText(snapshot.Cell(row*rowSize + col))
		}

		sb.WriteString(" " + strings.Join(cells, " │ ") + " \n")
	}

	return sb.String()
}

func cellText(mark entity.Mark) string {
	if mark == entity.NoMark {
		return " "
	}
	return string(mark)
}

// Reporter - prints the board after every move and the final result.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (that *Reporter) TurnPlayed(player tictactoe.Player, cell int, snapshot entity.Snapshot) {
	fmt.Fprintf(that.out, "%s plays %d\n%s\n", player, cell, Render(snapshot))
}

func (that *Reporter) GameOver(result tictactoe.Result, _ entity.Snapshot) {
	fmt.Fprintf(that.out, "Result: %s\n\n", result)
}
