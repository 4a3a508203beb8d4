package player

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

// RandomComputer picks a uniformly random legal move.
type RandomComputer struct {
	mark  game.Mark
	delay time.Duration
	rng   *rand.Rand
}

func NewRandomComputer(mark game.Mark, delay time.Duration, rng *rand.Rand) *RandomComputer {
	return &RandomComputer{mark: mark, delay: delay, rng: rng}
}

func (that *RandomComputer) Mark() game.Mark {
	return that.mark
}

func (that *RandomComputer) GetMove(state *game.GameState) (game.Move, bool, error) {
	time.Sleep(that.delay)

	move, ok := state.MakeRandomMove(that.rng)
	return move, ok, nil
}

// MinimaxComputer plays the optimal move found by exhaustive search. The
// opening move on an empty board is random instead, since every opening is
// equally optimal and a fixed one makes for a dull opponent.
type MinimaxComputer struct {
	mark  game.Mark
	delay time.Duration
	rng   *rand.Rand
}

func NewMinimaxComputer(mark game.Mark, delay time.Duration, rng *rand.Rand) *MinimaxComputer {
	return &MinimaxComputer{mark: mark, delay: delay, rng: rng}
}

func (that *MinimaxComputer) Mark() game.Mark {
	return that.mark
}

func (that *MinimaxComputer) GetMove(state *game.GameState) (game.Move, bool, error) {
	time.Sleep(that.delay)

	if state.GameNotStarted() {
		move, ok := state.MakeRandomMove(that.rng)
		return move, ok, nil
	}

	move, ok := game.FindBestMove(state)
	return move, ok, nil
}
