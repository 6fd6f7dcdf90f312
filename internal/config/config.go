package config

import (
	"fmt"
	"os"

	"github.com/Ofekfa/TicTacToe-Game/internal/apperror"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game       Game       `yaml:"game"`
	Tournament Tournament `yaml:"tournament"`
}

type Game struct {
	BoardSize int `yaml:"board-size" env:"BOARD_SIZE" env-default:"4"`
	WinStreak int `yaml:"win-streak" env:"WIN_STREAK" env-default:"3"`
}

type Tournament struct {
	Rounds    int    `yaml:"rounds" env:"ROUNDS" env-default:"1"`
	PlayerOne string `yaml:"player-one" env:"PLAYER_ONE" env-default:"human"`
	PlayerTwo string `yaml:"player-two" env:"PLAYER_TWO" env-default:"heuristic"`
	Renderer  string `yaml:"renderer" env:"RENDERER" env-default:"console"`
	Seed      int64  `yaml:"seed" env:"SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine for a console game: settings then come from the environment and the
// tag defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Validate - rejects settings no board or tournament can be built from.
// Player and renderer kinds are validated by their factories instead.
func (that *Config) Validate() error {
	if that.Game.BoardSize < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, that.Game.BoardSize)
	}

	if that.Game.WinStreak < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidWinStreak, that.Game.WinStreak)
	}

	if that.Tournament.Rounds < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidRounds, that.Tournament.Rounds)
	}

	return nil
}
