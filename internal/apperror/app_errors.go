package apperror

import "errors"

var (
	ErrInvalidGrid        = errors.New("invalid grid")
	ErrInvalidGameState   = errors.New("invalid game state")
	ErrInvalidMove        = errors.New("invalid move")
	ErrUnknownGameScore   = errors.New("game score is not known yet")
	ErrInvalidPlayerSetup = errors.New("invalid player setup")
)
