package apperror

import "errors"

var (
	ErrInvalidBoardSize    = errors.New("board size must be positive")
	ErrInvalidWinStreak    = errors.New("win streak must be positive")
	ErrInvalidRounds       = errors.New("rounds must be positive")
	ErrUnknownPlayerKind   = errors.New("unknown player kind")
	ErrUnknownRendererKind = errors.New("unknown renderer kind")
	ErrNoMoveAvailable     = errors.New("no move available")
	ErrMatchFinished       = errors.New("match is already finished")
)
