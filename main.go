package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/Ofekfa/TicTacToe-Game/internal"
	"github.com/Ofekfa/TicTacToe-Game/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, with command line flags overriding the file and the
// environment.
func initConfig() *config.Config {
	configPath := flag.String("config", "./config.yml", "path to the configuration file")
	size := flag.Int("size", 0, "board dimension n for an n-by-n board")
	streak := flag.Int("streak", 0, "marks in a row needed to win")
	rounds := flag.Int("rounds", 0, "number of tournament rounds")
	playerOne := flag.String("player1", "", "first player: human, naive, random or heuristic")
	playerTwo := flag.String("player2", "", "second player: human, naive, random or heuristic")
	rendererKind := flag.String("renderer", "", "board renderer: console or none")
	seed := flag.Int64("seed", 0, "seed for the random player, 0 takes one from the clock")
	flag.Parse()

	conf := config.MustLoad(*configPath)

	flag.Visit(func(set *flag.Flag) {
		switch set.Name {
		case "size":
			conf.Game.BoardSize = *size
		case "streak":
			conf.Game.WinStreak = *streak
		case "rounds":
			conf.Tournament.Rounds = *rounds
		case "player1":
			conf.Tournament.PlayerOne = *playerOne
		case "player2":
			conf.Tournament.PlayerTwo = *playerTwo
		case "renderer":
			conf.Tournament.Renderer = *rendererKind
		case "seed":
			conf.Tournament.Seed = *seed
		}
	})

	return conf
}

// initialize logger. Logs go to stderr so they never interleave with the
// board and the prompts on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
