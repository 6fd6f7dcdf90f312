package tournament

import (
	"fmt"
	"log/slog"

	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
	"github.com/Ofekfa/TicTacToe-Game/internal/game"
	"github.com/Ofekfa/TicTacToe-Game/internal/player"
	"github.com/Ofekfa/TicTacToe-Game/internal/renderer"
	"github.com/google/uuid"
)

const tieLabel = "-"

// Score tallies outcomes by logical player, independent of which mark a
// player held in a given round.
type Score struct {
	PlayerOneWins int
	PlayerTwoWins int
	Ties          int
}

// Tournament replays a fixed pairing for a number of rounds. The first
// move alternates between the players so neither side keeps the opening
// advantage: player one holds X in even rounds, player two in odd ones.
type Tournament struct {
	logger    *slog.Logger
	rounds    int
	boardSize int
	winStreak int
	playerOne player.Player
	playerTwo player.Player
	renderer  renderer.Renderer
}

func New(logger *slog.Logger, rounds, boardSize, winStreak int, playerOne, playerTwo player.Player, boardRenderer renderer.Renderer) *Tournament {
	return &Tournament{
		logger:    logger,
		rounds:    rounds,
		boardSize: boardSize,
		winStreak: winStreak,
		playerOne: playerOne,
		playerTwo: playerTwo,
		renderer:  boardRenderer,
	}
}

// Run - plays every round to completion and returns the final tally.
func (that *Tournament) Run() (Score, error) {
	log := that.logger.With("component", "tournament")

	var score Score

	for round := 0; round < that.rounds; round++ {
		matchID := uuid.NewString()

		oneOpens := round%2 == 0
		playerX, playerO := that.playerOne, that.playerTwo
		if !oneOpens {
			playerX, playerO = that.playerTwo, that.playerOne
		}

		match := game.NewMatch(that.logger, that.boardSize, that.winStreak, playerX, playerO, that.renderer)

		winner, err := match.Play()
		if err != nil {
			return score, fmt.Errorf("round %d failed: %w", round+1, err)
		}

		label := tieLabel
		switch winner {
		case entity.MarkX:
			label = entity.MarkX.String()
			if oneOpens {
				score.PlayerOneWins++
			} else {
				score.PlayerTwoWins++
			}
		case entity.MarkO:
			label = entity.MarkO.String()
			if oneOpens {
				score.PlayerTwoWins++
			} else {
				score.PlayerOneWins++
			}
		default:
			score.Ties++
		}

		log.Info("round finished",
			"match_id", matchID,
			"round", round+1,
			"winner", label,
		)
	}

	return score, nil
}
