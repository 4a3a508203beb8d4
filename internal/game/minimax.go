package game

import (
	"math"
	"sync"
)

// FindBestMove runs an exhaustive minimax search over the possible-move tree
// and returns the optimal move for the mark whose turn it is. It reports
// false when the game is already over.
//
// Root candidates are evaluated concurrently; every branch works on its own
// immutable states, so the goroutines share nothing but the score slice.
// Ties between equally scored moves go to the lowest cell index, the same
// pick a sequential scan would make.
func FindBestMove(state *GameState) (Move, bool) {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return Move{}, false
	}

	maximizer := state.CurrentMark()

	scores := make([]int, len(moves))
	var wg sync.WaitGroup
	for i, move := range moves {
		wg.Add(1)
		go func(i int, after *GameState) {
			defer wg.Done()
			scores[i] = minimax(after, maximizer, false)
		}(i, move.AfterState)
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(moves); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return moves[best], true
}

// minimax returns the value of the state for the maximizer assuming both
// sides play optimally from here on. The maximizer mark stays fixed for the
// whole search; the maximizing flag flips on every ply.
func minimax(state *GameState, maximizer Mark, maximizing bool) int {
	if state.GameOver() {
		score, _ := state.EvaluateScore(maximizer) // terminal state, the score is always known
		return score
	}

	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}

	for _, move := range state.PossibleMoves() {
		score := minimax(move.AfterState, maximizer, !maximizing)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
