package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is one of the two player symbols.
type Mark string

const (
	MarkCross  Mark = "X"
	MarkNaught Mark = "O"
)

// Other returns the opposing mark.
func (that Mark) Other() Mark {
	if that == MarkCross {
		return MarkNaught
	}
	return MarkCross
}

func (that Mark) String() string {
	return string(that)
}

// ParseMark converts the textual symbol "X" or "O" into a Mark.
func ParseMark(raw string) (Mark, error) {
	switch Mark(raw) {
	case MarkCross, MarkNaught:
		return Mark(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidGameState, raw)
	}
}
