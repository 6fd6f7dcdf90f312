package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ofekfa/TicTacToe-Game/internal/apperror"
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

const (
	KindConsole = "console"
	KindNone    = "none"
)

// Renderer shows a board snapshot after every accepted move. Rendering is
// purely observational and must never touch the board.
type Renderer interface {
	RenderBoard(board *entity.Board)
}

// New - builds the renderer registered under kind. Output goes to out;
// the console binary points it at stdout.
func New(kind string, out io.Writer) (Renderer, error) {
	switch strings.ToLower(kind) {
	case KindConsole:
		return NewConsole(out), nil
	case KindNone:
		return NewNone(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownRendererKind, kind)
	}
}
