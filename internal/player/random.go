package player

import (
	"math/rand"
	"time"

	"github.com/Ofekfa/TicTacToe-Game/internal/apperror"
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// Random plays a uniformly random empty cell. The randomness source is
// injected so a tournament can be replayed from a fixed seed.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Random{rng: rng}
}

func (that *Random) ChooseMove(board *entity.Board, _ entity.Mark) (entity.Cell, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return entity.Cell{}, apperror.ErrNoMoveAvailable
	}

	return available[that.rng.Intn(len(available))], nil
}
