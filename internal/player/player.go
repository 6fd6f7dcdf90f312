package player

import (
	"errors"

	"github.com/Ofekfa/TicTacToe-Game/internal/apperror"
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// ErrInputClosed is returned by the human player when its input stream
// ends before a move was read.
var ErrInputClosed = errors.New("input stream is closed")

// Player chooses one move per turn for the given mark. Implementations
// read the board but never write it; the match applies the returned move
// itself and treats an illegal choice as a programming error.
type Player interface {
	ChooseMove(board *entity.Board, mark entity.Mark) (entity.Cell, error)
}

// firstEmpty - the first open cell in row-major order. Shared by the naive
// player and the last fallback of the heuristic one.
func firstEmpty(board *entity.Board) (entity.Cell, error) {
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.At(row, col) == entity.MarkEmpty {
				return entity.Cell{Row: row, Col: col}, nil
			}
		}
	}

	return entity.Cell{}, apperror.ErrNoMoveAvailable
}
