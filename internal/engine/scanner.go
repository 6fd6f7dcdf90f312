package engine

import (
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// Direction is a unit step vector for walking board lines.
type Direction struct {
	DRow int
	DCol int
}

var (
	Horizontal   = Direction{DRow: 0, DCol: 1}
	Vertical     = Direction{DRow: 1, DCol: 0}
	Diagonal     = Direction{DRow: 1, DCol: 1}
	AntiDiagonal = Direction{DRow: 1, DCol: -1}

	// Directions lists the four orientations a run can lie on.
	Directions = [4]Direction{Horizontal, Vertical, Diagonal, AntiDiagonal}
)

// DirectionsThrough - returns the orientations a placement at (row, col)
// is evaluated on: the row and the column always, the main diagonal only
// when the cell lies on it, the anti-diagonal likewise.
func DirectionsThrough(size, row, col int) []Direction {
	dirs := make([]Direction, 0, len(Directions))
	dirs = append(dirs, Horizontal, Vertical)

	if row == col {
		dirs = append(dirs, Diagonal)
	}
	if row+col == size-1 {
		dirs = append(dirs, AntiDiagonal)
	}

	return dirs
}

// LongestRun - answers how long the longest contiguous run of mark through
// pivot along dir would be if mark were placed there. The walk covers the
// whole line once, boundary to boundary, so a run extending on both sides
// of the pivot is counted as one. The board is never mutated: the pivot's
// stored mark is shadowed by the hypothetical one, which also means that
// scanning an occupied cell with its own mark measures the real run.
func LongestRun(board *entity.Board, pivot entity.Cell, mark entity.Mark, dir Direction) int {
	row, col := pivot.Row, pivot.Col
	for board.InBounds(row-dir.DRow, col-dir.DCol) {
		row -= dir.DRow
		col -= dir.DCol
	}

	longest, run := 0, 0
	for board.InBounds(row, col) {
		current := board.At(row, col)
		if row == pivot.Row && col == pivot.Col {
			current = mark
		}

		if current == mark {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}

		row += dir.DRow
		col += dir.DCol
	}

	return longest
}

// WouldComplete - reports whether placing mark at pivot yields a run of at
// least target cells along any orientation applicable to that cell.
func WouldComplete(board *entity.Board, pivot entity.Cell, mark entity.Mark, target int) bool {
	for _, dir := range DirectionsThrough(board.Size(), pivot.Row, pivot.Col) {
		if LongestRun(board, pivot, mark, dir) >= target {
			return true
		}
	}

	return false
}

// BestRun - the strongest run a placement at pivot would give mark across
// the applicable orientations. Agents use it as the threat score.
func BestRun(board *entity.Board, pivot entity.Cell, mark entity.Mark) int {
	best := 0
	for _, dir := range DirectionsThrough(board.Size(), pivot.Row, pivot.Col) {
		if run := LongestRun(board, pivot, mark, dir); run > best {
			best = run
		}
	}

	return best
}
