package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// validateNumberOfMarks - the marks alternate, so one side is at most one
// move ahead of the other.
func validateNumberOfMarks(grid Grid) error {
	diff := grid.XCount() - grid.OCount()
	if diff > 1 || diff < -1 {
		return fmt.Errorf("%w: wrong number of Xs and Os", apperror.ErrInvalidGameState)
	}
	return nil
}

// validateStartingMark - whichever mark holds the majority must be the one
// that started the game.
func validateStartingMark(grid Grid, startingMark Mark) error {
	if grid.XCount() > grid.OCount() && startingMark != MarkCross {
		return fmt.Errorf("%w: wrong starting mark", apperror.ErrInvalidGameState)
	}

	if grid.OCount() > grid.XCount() && startingMark != MarkNaught {
		return fmt.Errorf("%w: wrong starting mark", apperror.ErrInvalidGameState)
	}

	return nil
}

// validateWinner - the winner must have just completed the winning move: one
// mark ahead when the winner started the game, exactly even otherwise.
func validateWinner(grid Grid, startingMark, winner Mark) error {
	switch winner {
	case MarkCross:
		if startingMark == MarkCross && grid.XCount() <= grid.OCount() {
			return fmt.Errorf("%w: wrong number of Xs", apperror.ErrInvalidGameState)
		}
		if startingMark != MarkCross && grid.XCount() != grid.OCount() {
			return fmt.Errorf("%w: wrong number of Xs", apperror.ErrInvalidGameState)
		}
	case MarkNaught:
		if startingMark == MarkNaught && grid.OCount() <= grid.XCount() {
			return fmt.Errorf("%w: wrong number of Os", apperror.ErrInvalidGameState)
		}
		if startingMark != MarkNaught && grid.OCount() != grid.XCount() {
			return fmt.Errorf("%w: wrong number of Os", apperror.ErrInvalidGameState)
		}
	}

	return nil
}

// ValidatePlayers checks that the two sides of a match hold different marks.
func ValidatePlayers(mark1, mark2 Mark) error {
	if mark1 == mark2 {
		return fmt.Errorf("%w: players must use different marks", apperror.ErrInvalidPlayerSetup)
	}
	return nil
}
