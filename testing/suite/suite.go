package suite

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

const randSeed = 1

// Suite bundles the fixtures the engine and gameplay tests share: a quiet
// logger, a deterministic randomness source and a compact way to spell out
// board positions.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand *rand.Rand
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(randSeed)),
	}
}

// Board - builds a board from one string per row, with 'X' and 'O' for
// marks and '.' for empty cells. The number of rows fixes the board size,
// so the picture in the test is exactly the position under test.
func (that *Suite) Board(rows ...string) *entity.Board {
	that.Helper()

	board := entity.NewBoard(len(rows))
	for rowIdx, row := range rows {
		if len(row) != len(rows) {
			that.Fatalf("board row %d has %d cells, want %d", rowIdx, len(row), len(rows))
		}

		for colIdx, char := range row {
			var mark entity.Mark

			switch char {
			case 'X':
				mark = entity.MarkX
			case 'O':
				mark = entity.MarkO
			case '.':
				continue
			default:
				that.Fatalf("unknown cell %q at row %d col %d", char, rowIdx, colIdx)
			}

			if !board.Place(mark, rowIdx, colIdx) {
				that.Fatalf("could not place %s at row %d col %d", mark, rowIdx, colIdx)
			}
		}
	}

	return board
}
