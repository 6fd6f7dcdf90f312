package application

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Ofekfa/TicTacToe-Game/internal/config"
	"github.com/Ofekfa/TicTacToe-Game/internal/player"
	"github.com/Ofekfa/TicTacToe-Game/internal/renderer"
	"github.com/Ofekfa/TicTacToe-Game/internal/tournament"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	boardRenderer, err := renderer.New(conf.Tournament.Renderer, os.Stdout)
	if err != nil {
		return fmt.Errorf("could not build renderer: %w", err)
	}

	seed := conf.Tournament.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := player.Options{
		WinStreak: conf.Game.WinStreak,
		Rand:      rand.New(rand.NewSource(seed)),
		In:        os.Stdin,
		Out:       os.Stdout,
	}

	playerOne, err := player.New(conf.Tournament.PlayerOne, opts)
	if err != nil {
		return fmt.Errorf("could not build player one: %w", err)
	}

	// Equal kinds share one instance: a single stdin cannot feed two
	// buffered readers.
	playerTwo := playerOne
	if !strings.EqualFold(conf.Tournament.PlayerTwo, conf.Tournament.PlayerOne) {
		if playerTwo, err = player.New(conf.Tournament.PlayerTwo, opts); err != nil {
			return fmt.Errorf("could not build player two: %w", err)
		}
	}

	log.Info("starting tournament",
		"rounds", conf.Tournament.Rounds,
		"board_size", conf.Game.BoardSize,
		"win_streak", conf.Game.WinStreak,
		"player_one", conf.Tournament.PlayerOne,
		"player_two", conf.Tournament.PlayerTwo,
	)

	tour := tournament.New(logger, conf.Tournament.Rounds, conf.Game.BoardSize, conf.Game.WinStreak, playerOne, playerTwo, boardRenderer)

	score, err := tour.Run()
	if err != nil {
		return fmt.Errorf("tournament failed: %w", err)
	}

	printResults(os.Stdout, conf, score)
	log.Info("tournament finished",
		"player_one_wins", score.PlayerOneWins,
		"player_two_wins", score.PlayerTwoWins,
		"ties", score.Ties,
	)

	return nil
}

// printResults - writes the tally block shown to the console user.
func printResults(out io.Writer, conf *config.Config, score tournament.Score) {
	fmt.Fprintln(out, "######### Results #########")
	fmt.Fprintf(out, "Player 1, %s won: %d rounds\n", conf.Tournament.PlayerOne, score.PlayerOneWins)
	fmt.Fprintf(out, "Player 2, %s won: %d rounds\n", conf.Tournament.PlayerTwo, score.PlayerTwoWins)
	fmt.Fprintf(out, "Ties: %d\n", score.Ties)
}
