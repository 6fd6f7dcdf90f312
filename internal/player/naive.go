package player

import (
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// Naive plays the first empty cell found scanning row by row. It never
// looks at runs, so it is mostly useful as a baseline opponent.
type Naive struct{}

func NewNaive() *Naive {
	return &Naive{}
}

func (that *Naive) ChooseMove(board *entity.Board, _ entity.Mark) (entity.Cell, error) {
	return firstEmpty(board)
}
