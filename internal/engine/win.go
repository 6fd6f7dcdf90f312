package engine

import (
	"fmt"

	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// HasWon - reports whether mark holds a real run of at least streak cells
// in any row, column or diagonal. Every occupied cell is probed over all
// four orientations, so runs on off-center diagonals are found too. The
// pivot substitution in the scanner is a no-op here because the probed
// cell already stores the mark.
func HasWon(board *entity.Board, mark entity.Mark, streak int) bool {
	if !mark.IsPlayer() {
		panic(fmt.Sprintf("engine: win check for non-player mark %d", mark))
	}

	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.At(row, col) != mark {
				continue
			}

			pivot := entity.Cell{Row: row, Col: col}
			for _, dir := range Directions {
				if LongestRun(board, pivot, mark, dir) >= streak {
					return true
				}
			}
		}
	}

	return false
}

// IsDraw - reports whether the board is exhausted with no winner on either
// side. The match checks the mover's win first, so a full board whose last
// move completed a run is reported as a win, never a draw.
func IsDraw(board *entity.Board, streak int) bool {
	if !board.IsFull() {
		return false
	}

	return !HasWon(board, entity.MarkX, streak) && !HasWon(board, entity.MarkO, streak)
}
