package engine

import (
	"testing"

	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
	"github.com/Ofekfa/TicTacToe-Game/testing/suite"
	"github.com/stretchr/testify/assert"
)

func TestLongestRun(t *testing.T) {
	t.Run("joins runs on both sides of the pivot", func(t *testing.T) {
		st := suite.New(t)

		// Given: a row with a gap right between two X pairs.
		board := st.Board(
			"XX.XX",
			".....",
			".....",
			".....",
			".....",
		)

		// When: the gap is scanned as if X filled it.
		run := LongestRun(board, entity.Cell{Row: 0, Col: 2}, entity.MarkX, Horizontal)

		// Then: the two pairs and the pivot count as one run.
		assert.Equal(t, 5, run)
	})

	t.Run("resets the run on an opposing mark", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"XO.XX",
			".....",
			".....",
			".....",
			".....",
		)

		run := LongestRun(board, entity.Cell{Row: 0, Col: 2}, entity.MarkX, Horizontal)

		assert.Equal(t, 3, run)
	})

	t.Run("an isolated pivot still counts as a run of one", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"OO.OO",
			".....",
			".....",
			".....",
			".....",
		)

		run := LongestRun(board, entity.Cell{Row: 0, Col: 2}, entity.MarkX, Horizontal)

		assert.Equal(t, 1, run)
	})

	t.Run("never mutates the board", func(t *testing.T) {
		board := entity.NewBoard(3)

		LongestRun(board, entity.Cell{Row: 1, Col: 1}, entity.MarkX, Diagonal)

		assert.Equal(t, entity.MarkEmpty, board.At(1, 1))
		assert.Len(t, board.EmptyCells(), 9)
	})

	t.Run("measures the real run when the pivot already holds the mark", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"XXX",
			"...",
			"...",
		)

		run := LongestRun(board, entity.Cell{Row: 0, Col: 0}, entity.MarkX, Horizontal)

		assert.Equal(t, 3, run)
	})

	t.Run("walks columns and diagonals", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"X.O",
			"...",
			"X.O",
		)

		vertical := LongestRun(board, entity.Cell{Row: 1, Col: 0}, entity.MarkX, Vertical)
		assert.Equal(t, 3, vertical)

		antiDiagonal := LongestRun(board, entity.Cell{Row: 1, Col: 1}, entity.MarkO, AntiDiagonal)
		assert.Equal(t, 2, antiDiagonal)
	})

	t.Run("is symmetric under direction reversal", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"X..O",
			".XO.",
			".OX.",
			"O..X",
		)

		pivot := entity.Cell{Row: 1, Col: 1}
		for _, dir := range Directions {
			reversed := Direction{DRow: -dir.DRow, DCol: -dir.DCol}

			forward := LongestRun(board, pivot, entity.MarkX, dir)
			backward := LongestRun(board, pivot, entity.MarkX, reversed)

			assert.Equal(t, forward, backward, "direction (%d,%d)", dir.DRow, dir.DCol)
		}
	})
}

func TestDirectionsThrough(t *testing.T) {
	t.Run("the center of an odd board lies on every orientation", func(t *testing.T) {
		dirs := DirectionsThrough(3, 1, 1)

		assert.ElementsMatch(t, []Direction{Horizontal, Vertical, Diagonal, AntiDiagonal}, dirs)
	})

	t.Run("a main-diagonal cell skips the anti-diagonal", func(t *testing.T) {
		dirs := DirectionsThrough(4, 0, 0)

		assert.ElementsMatch(t, []Direction{Horizontal, Vertical, Diagonal}, dirs)
	})

	t.Run("an anti-diagonal cell skips the main diagonal", func(t *testing.T) {
		dirs := DirectionsThrough(4, 1, 2)

		assert.ElementsMatch(t, []Direction{Horizontal, Vertical, AntiDiagonal}, dirs)
	})

	t.Run("a plain cell is scanned on its row and column only", func(t *testing.T) {
		dirs := DirectionsThrough(4, 0, 1)

		assert.ElementsMatch(t, []Direction{Horizontal, Vertical}, dirs)
	})
}

func TestWouldComplete(t *testing.T) {
	t.Run("sees a row completion", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"XX..",
			"....",
			"....",
			"....",
		)

		assert.True(t, WouldComplete(board, entity.Cell{Row: 0, Col: 2}, entity.MarkX, 3))
	})

	t.Run("sees an anti-diagonal completion from a cell on it", func(t *testing.T) {
		st := suite.New(t)

		board := st.Board(
			"..X",
			".X.",
			"...",
		)

		assert.True(t, WouldComplete(board, entity.Cell{Row: 2, Col: 0}, entity.MarkX, 3))
	})

	t.Run("ignores diagonal runs through cells off the two main diagonals", func(t *testing.T) {
		st := suite.New(t)

		// Given: two X marks that would line up diagonally with (2, 3).
		board := st.Board(
			".X..",
			"..X.",
			"....",
			"....",
		)

		// When: (2, 3) is probed, a cell on neither main diagonal.
		// Then: only its row and column are considered, so no completion.
		assert.False(t, WouldComplete(board, entity.Cell{Row: 2, Col: 3}, entity.MarkX, 3))
	})

	t.Run("reports nothing on a quiet board", func(t *testing.T) {
		board := entity.NewBoard(3)

		assert.False(t, WouldComplete(board, entity.Cell{Row: 1, Col: 1}, entity.MarkO, 2))
	})
}

func TestBestRun(t *testing.T) {
	st := suite.New(t)

	// Given: a column of two X and unrelated noise elsewhere.
	board := st.Board(
		"X...",
		"X...",
		"....",
		"..O.",
	)

	// When: the cell extending the column is scored.
	score := BestRun(board, entity.Cell{Row: 2, Col: 0}, entity.MarkX)

	// Then: the column run wins over the row and diagonal ones.
	assert.Equal(t, 3, score)
}
