package renderer

import (
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// None swallows every render call. Bulk tournaments use it so thousands
// of boards are not drawn to the terminal.
type None struct{}

func NewNone() *None {
	return &None{}
}

func (that *None) RenderBoard(_ *entity.Board) {}
