package player

import (
	"github.com/Ofekfa/TicTacToe-Game/internal/engine"
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// Heuristic layers fixed priorities on top of the line scanner: win now,
// deny the opponent's win, build the strongest threat, then positional
// fallbacks. Every turn is evaluated from scratch, so the same board and
// mark always produce the same cell.
type Heuristic struct {
	streak int
}

// NewHeuristic - creates the heuristic player for a game won by streak
// marks in a row.
func NewHeuristic(streak int) *Heuristic {
	return &Heuristic{streak: streak}
}

func (that *Heuristic) ChooseMove(board *entity.Board, mark entity.Mark) (entity.Cell, error) {
	if cell, ok := that.findCompletingMove(board, mark); ok {
		return cell, nil
	}

	if cell, ok := that.findCompletingMove(board, mark.Opponent()); ok {
		return cell, nil
	}

	if cell, ok := that.findThreatMove(board, mark); ok {
		return cell, nil
	}

	if cell, ok := findCenter(board); ok {
		return cell, nil
	}

	if cell, ok := findCorner(board); ok {
		return cell, nil
	}

	return firstEmpty(board)
}

// findCompletingMove - the first empty cell, in row-major order, where
// placing mark finishes a run of the full win streak. Probing with the
// opponent's mark turns this into the blocking test: taking that cell
// denies the run regardless of who it belongs to.
func (that *Heuristic) findCompletingMove(board *entity.Board, mark entity.Mark) (entity.Cell, bool) {
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.At(row, col) != entity.MarkEmpty {
				continue
			}

			cell := entity.Cell{Row: row, Col: col}
			if engine.WouldComplete(board, cell, mark, that.streak) {
				return cell, true
			}
		}
	}

	return entity.Cell{}, false
}

// findThreatMove - the empty cell whose occupation gives mark its longest
// run, provided that run reaches one short of the win streak. Anything
// shorter pressures nobody and is left to the positional steps. On equal
// scores the earlier cell in row-major order is kept.
func (that *Heuristic) findThreatMove(board *entity.Board, mark entity.Mark) (entity.Cell, bool) {
	threshold := that.streak - 1

	var bestCell entity.Cell
	bestScore := 0
	found := false

	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.At(row, col) != entity.MarkEmpty {
				continue
			}

			cell := entity.Cell{Row: row, Col: col}
			score := engine.BestRun(board, cell, mark)
			if score < threshold || score <= bestScore {
				continue
			}

			bestCell = cell
			bestScore = score
			found = true
		}
	}

	return bestCell, found
}

// findCenter - the exact middle cell, which only exists on odd boards.
func findCenter(board *entity.Board) (entity.Cell, bool) {
	size := board.Size()
	if size%2 == 0 {
		return entity.Cell{}, false
	}

	center := entity.Cell{Row: size / 2, Col: size / 2}
	if board.At(center.Row, center.Col) != entity.MarkEmpty {
		return entity.Cell{}, false
	}

	return center, true
}

// findCorner - the first free corner, probed in a fixed order so the
// choice depends on nothing but the board.
func findCorner(board *entity.Board) (entity.Cell, bool) {
	last := board.Size() - 1
	corners := [4]entity.Cell{
		{Row: 0, Col: 0},
		{Row: 0, Col: last},
		{Row: last, Col: 0},
		{Row: last, Col: last},
	}

	for _, corner := range corners {
		if board.At(corner.Row, corner.Col) == entity.MarkEmpty {
			return corner, true
		}
	}

	return entity.Cell{}, false
}
