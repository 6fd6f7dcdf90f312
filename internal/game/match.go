package game

import (
	"fmt"
	"log/slog"

	"github.com/Ofekfa/TicTacToe-Game/internal/apperror"
	"github.com/Ofekfa/TicTacToe-Game/internal/engine"
	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
	"github.com/Ofekfa/TicTacToe-Game/internal/player"
	"github.com/Ofekfa/TicTacToe-Game/internal/renderer"
)

// Status tracks where a match stands in its lifecycle.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Match runs one game between two players on a fresh board. X always
// opens; turns alternate on every accepted move until a run of streak
// cells appears or the board fills up. A terminal match accepts nothing.
type Match struct {
	logger   *slog.Logger
	board    *entity.Board
	streak   int
	players  map[entity.Mark]player.Player
	renderer renderer.Renderer

	turn   entity.Mark
	status Status
	winner entity.Mark
}

// NewMatch - prepares a match on an empty size-by-size board won by
// streak marks in a row.
func NewMatch(logger *slog.Logger, size, streak int, playerX, playerO player.Player, boardRenderer renderer.Renderer) *Match {
	return &Match{
		logger: logger.With("component", "match"),
		board:  entity.NewBoard(size),
		streak: streak,
		players: map[entity.Mark]player.Player{
			entity.MarkX: playerX,
			entity.MarkO: playerO,
		},
		renderer: boardRenderer,
		turn:     entity.MarkX,
		status:   StatusInProgress,
	}
}

// Play - runs the match to its terminal state and returns the winning
// mark, or MarkEmpty for a draw. A finished match cannot be replayed.
func (that *Match) Play() (entity.Mark, error) {
	if that.status != StatusInProgress {
		return entity.MarkEmpty, apperror.ErrMatchFinished
	}

	for that.status == StatusInProgress {
		if err := that.playTurn(); err != nil {
			return entity.MarkEmpty, err
		}
	}

	that.logger.Debug("match settled", "status", that.status.String(), "winner", that.winner.String())

	if that.status == StatusWon {
		return that.winner, nil
	}

	return entity.MarkEmpty, nil
}

// playTurn - asks the mover for a cell, applies it and settles the match
// state. A mover handing back an occupied or out-of-bounds cell broke the
// player contract, and the match gives up loudly rather than loop on a
// board that can no longer change.
func (that *Match) playTurn() error {
	mover := that.players[that.turn]

	cell, err := mover.ChooseMove(that.board, that.turn)
	if err != nil {
		return fmt.Errorf("player %s failed to choose a move: %w", that.turn, err)
	}

	if !that.board.Place(that.turn, cell.Row, cell.Col) {
		panic(fmt.Sprintf("game: player %s chose an illegal cell (%d,%d)", that.turn, cell.Row, cell.Col))
	}

	that.renderer.RenderBoard(that.board)
	that.logger.Debug("move accepted", "mark", that.turn.String(), "row", cell.Row, "col", cell.Col)

	switch {
	case engine.HasWon(that.board, that.turn, that.streak):
		that.status = StatusWon
		that.winner = that.turn
	case that.board.IsFull():
		that.status = StatusDraw
	default:
		that.turn = that.turn.Opponent()
	}

	return nil
}

// Board - the live board; callers observe it and must not place marks.
func (that *Match) Board() *entity.Board {
	return that.board
}

func (that *Match) Status() Status {
	return that.status
}

// Winner - the winning mark once the status is StatusWon, MarkEmpty
// otherwise.
func (that *Match) Winner() entity.Mark {
	return that.winner
}

// Turn - whose move it is while the match is in progress.
func (that *Match) Turn() entity.Mark {
	return that.turn
}
