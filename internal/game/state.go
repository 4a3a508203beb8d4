package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// WinningLines are the 8 index triples whose uniform occupation by one mark
// ends the game: 3 rows, 3 columns, 2 diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameState is an immutable snapshot of a match: the grid plus the mark that
// started the game. All derived facts are computed at construction, except
// the possible moves which are generated on first use.
//
// Construction rejects any state unreachable by legal alternating play.
type GameState struct {
	grid         Grid
	startingMark Mark

	currentMark  Mark
	winner       Mark // zero value when there is no winner
	winningCells []int
	tie          bool

	movesOnce     sync.Once
	possibleMoves []Move
}

// NewGameState validates the grid and starting mark and computes the derived
// facts. It fails with ErrInvalidGameState on mark-count skew, a starting
// mark that contradicts the counts, or an impossible winner.
func NewGameState(grid Grid, startingMark Mark) (*GameState, error) {
	if startingMark != MarkCross && startingMark != MarkNaught {
		return nil, fmt.Errorf("%w: unknown starting mark %q", apperror.ErrInvalidGameState, string(startingMark))
	}

	if err := validateNumberOfMarks(grid); err != nil {
		return nil, err
	}

	if err := validateStartingMark(grid, startingMark); err != nil {
		return nil, err
	}

	state := &GameState{
		grid:         grid,
		startingMark: startingMark,
	}

	state.winner, state.winningCells = findWinner(grid)

	if err := validateWinner(grid, startingMark, state.winner); err != nil {
		return nil, err
	}

	if grid.XCount() == grid.OCount() {
		state.currentMark = startingMark
	} else {
		state.currentMark = startingMark.Other()
	}

	state.tie = state.winner == "" && grid.EmptyCount() == 0

	return state, nil
}

// NewInitialGameState returns the fresh all-empty state for a new match.
func NewInitialGameState(startingMark Mark) (*GameState, error) {
	return NewGameState(EmptyGrid(), startingMark)
}

// findWinner scans the winning lines in declaration order and returns the
// first fully occupied one, if any.
func findWinner(grid Grid) (Mark, []int) {
	for _, line := range WinningLines {
		a, b, c := grid.Cell(line[0]), grid.Cell(line[1]), grid.Cell(line[2])
		if a != EmptyCell && a == b && b == c {
			return Mark(a), []int{line[0], line[1], line[2]}
		}
	}
	return "", nil
}

func (that *GameState) Grid() Grid {
	return that.grid
}

func (that *GameState) StartingMark() Mark {
	return that.startingMark
}

// CurrentMark returns the mark whose turn it is.
func (that *GameState) CurrentMark() Mark {
	return that.currentMark
}

// GameNotStarted reports whether the grid is still fully empty.
func (that *GameState) GameNotStarted() bool {
	return that.grid.EmptyCount() == 9
}

// Winner returns the winning mark, if the game has one.
func (that *GameState) Winner() (Mark, bool) {
	return that.winner, that.winner != ""
}

// WinningCells returns the three indices forming the winning line, or nil.
func (that *GameState) WinningCells() []int {
	if that.winningCells == nil {
		return nil
	}
	cells := make([]int, len(that.winningCells))
	copy(cells, that.winningCells)
	return cells
}

// Tie reports whether the board is full with no winner.
func (that *GameState) Tie() bool {
	return that.tie
}

// GameOver reports whether the game ended with a winner or a tie.
func (that *GameState) GameOver() bool {
	return that.winner != "" || that.tie
}

// PossibleMoves returns one move per empty cell in ascending cell order, or
// an empty list when the game is over. The list is generated once per state;
// callers must not modify it.
func (that *GameState) PossibleMoves() []Move {
	that.movesOnce.Do(func() {
		if that.GameOver() {
			return
		}
		for index := 0; index < 9; index++ {
			if that.grid.Cell(index) != EmptyCell {
				continue
			}
			move, err := that.MakeMoveTo(index)
			if err != nil {
				// unreachable: the cell was just checked to be empty
				continue
			}
			that.possibleMoves = append(that.possibleMoves, move)
		}
	})
	return that.possibleMoves
}

// MakeMoveTo places the current mark at the given cell and returns the
// resulting move. The receiver is left untouched. It fails with
// ErrInvalidMove on an out-of-range index or an occupied cell.
func (that *GameState) MakeMoveTo(index int) (Move, error) {
	if index < 0 || index >= 9 {
		return Move{}, fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if that.grid.Cell(index) != EmptyCell {
		return Move{}, fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, index)
	}

	cells := that.grid.cells
	cells[index] = Cell(that.currentMark)

	grid, err := NewGrid(cells)
	if err != nil {
		return Move{}, err
	}

	afterState, err := NewGameState(grid, that.startingMark)
	if err != nil {
		return Move{}, err
	}

	return Move{
		Mark:        that.currentMark,
		CellIndex:   index,
		BeforeState: that,
		AfterState:  afterState,
	}, nil
}

// MakeRandomMove picks a uniformly random possible move using the given
// randomness source, or reports false when no legal move remains.
func (that *GameState) MakeRandomMove(rng *rand.Rand) (Move, bool) {
	moves := that.PossibleMoves()
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

// EvaluateScore returns +1 when the given mark won, -1 when the other mark
// won and 0 on a tie. It fails with ErrUnknownGameScore on a state that is
// not yet terminal.
func (that *GameState) EvaluateScore(mark Mark) (int, error) {
	if !that.GameOver() {
		return 0, fmt.Errorf("%w: game is not over yet", apperror.ErrUnknownGameScore)
	}

	if that.tie {
		return 0, nil
	}

	if that.winner == mark {
		return 1, nil
	}

	return -1, nil
}
