package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// Console draws the board as an ASCII grid with row and column indices,
// so a human can answer the coordinate prompt without counting cells.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}

	return &Console{out: out}
}

func (that *Console) RenderBoard(board *entity.Board) {
	var grid strings.Builder
	size := board.Size()

	grid.WriteString("\n   ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&grid, "%2d  ", col)
	}
	grid.WriteString("\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&grid, "%2d ", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&grid, " %s ", board.At(row, col))
			if col < size-1 {
				grid.WriteString("|")
			}
		}
		grid.WriteString("\n")

		if row < size-1 {
			grid.WriteString("   ")
			grid.WriteString(strings.Repeat("-", size*4-1))
			grid.WriteString("\n")
		}
	}

	fmt.Fprint(that.out, grid.String())
}
