package player

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

// Player is a move-selection strategy for one side of the match.
type Player interface {
	Mark() game.Mark

	// GetMove produces the player's next move for the given state, or
	// reports false when no legal move exists.
	GetMove(state *game.GameState) (game.Move, bool, error)
}

// MakeMove asks the player for its move and returns the resulting state.
// It fails with ErrInvalidMove when it is not the player's turn or when no
// legal move remains.
func MakeMove(that Player, state *game.GameState) (*game.GameState, error) {
	if that.Mark() != state.CurrentMark() {
		return nil, fmt.Errorf("%w: it's the other player's turn", apperror.ErrInvalidMove)
	}

	move, ok, err := that.GetMove(state)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s's move: %w", that.Mark(), err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: no more possible moves", apperror.ErrInvalidMove)
	}

	return move.AfterState, nil
}
