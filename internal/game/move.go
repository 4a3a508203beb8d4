package game

// Move records a single transition between two game states. The before and
// after states are shared immutable snapshots; sibling moves generated from
// the same state reference the same BeforeState.
type Move struct {
	Mark        Mark
	CellIndex   int
	BeforeState *GameState
	AfterState  *GameState
}
