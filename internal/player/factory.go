package player

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/Ofekfa/TicTacToe-Game/internal/apperror"
)

const (
	KindHuman     = "human"
	KindNaive     = "naive"
	KindRandom    = "random"
	KindHeuristic = "heuristic"
)

// Options carries the collaborators a player may need: the win streak for
// run arithmetic, the randomness source for the random player and the text
// streams for the human one. Nil streams fall back to stdin and stdout.
type Options struct {
	WinStreak int
	Rand      *rand.Rand
	In        io.Reader
	Out       io.Writer
}

// New - builds the player registered under kind. The kind comparison is
// case-insensitive so config and flag values can be spelled freely.
func New(kind string, opts Options) (Player, error) {
	switch strings.ToLower(kind) {
	case KindHuman:
		return NewHuman(opts.In, opts.Out), nil
	case KindNaive:
		return NewNaive(), nil
	case KindRandom:
		return NewRandom(opts.Rand), nil
	case KindHeuristic:
		return NewHeuristic(opts.WinStreak), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}
