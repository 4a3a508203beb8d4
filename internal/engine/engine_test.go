package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
)

type countingRenderer struct {
	renders int
	last    *game.GameState
}

func (that *countingRenderer) Render(state *game.GameState) {
	that.renders++
	that.last = state
}

type capturingRecorder struct {
	saved []*game.GameState
}

func (that *capturingRecorder) SaveFinished(_ context.Context, state *game.GameState, _, _ time.Time) error {
	that.saved = append(that.saved, state)
	return nil
}

// stumblingPlayer botches its first move and then plays randomly.
type stumblingPlayer struct {
	mark     game.Mark
	stumbled bool
	rng      *rand.Rand
}

func (that *stumblingPlayer) Mark() game.Mark {
	return that.mark
}

func (that *stumblingPlayer) GetMove(state *game.GameState) (game.Move, bool, error) {
	if !that.stumbled {
		that.stumbled = true
		return game.Move{}, false, fmt.Errorf("%w: cell 0 is already occupied", apperror.ErrInvalidMove)
	}

	move, ok := state.MakeRandomMove(that.rng)
	return move, ok, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Run("Rejects players sharing a mark", func(t *testing.T) {
		// Given: two players both holding X
		rng := rand.New(rand.NewSource(1))
		player1 := player.NewRandomComputer(game.MarkCross, 0, rng)
		player2 := player.NewRandomComputer(game.MarkCross, 0, rng)

		// When: building the match
		_, err := New(discardLogger(), player1, player2, &countingRenderer{}, nil, nil)

		// Then: it should fail with ErrInvalidPlayerSetup
		require.ErrorIs(t, err, apperror.ErrInvalidPlayerSetup)
	})
}

func TestTicTacToe_Play(t *testing.T) {
	t.Run("Minimax against itself plays to a tie", func(t *testing.T) {
		// Given: minimax on both sides and a capturing recorder
		rng := rand.New(rand.NewSource(11))
		playerX := player.NewMinimaxComputer(game.MarkCross, 0, rng)
		playerO := player.NewMinimaxComputer(game.MarkNaught, 0, rng)

		renderer := &countingRenderer{}
		recorder := &capturingRecorder{}

		match, err := New(discardLogger(), playerX, playerO, renderer, recorder, nil)
		require.NoError(t, err)

		// When: playing the match to the end
		final, err := match.Play(context.Background(), game.MarkCross)
		require.NoError(t, err)

		// Then: the game should be a tie on a full board
		assert.True(t, final.Tie())
		assert.Equal(t, 0, final.Grid().EmptyCount())

		// Then: every transition plus the final state should have been rendered
		assert.Equal(t, 10, renderer.renders)
		assert.Same(t, final, renderer.last)

		// Then: the finished match should have been recorded once
		require.Len(t, recorder.saved, 1)
		assert.Same(t, final, recorder.saved[0])
	})

	t.Run("Recovers from an invalid move without advancing the state", func(t *testing.T) {
		// Given: a player that botches its first move
		rng := rand.New(rand.NewSource(3))
		playerX := &stumblingPlayer{mark: game.MarkCross, rng: rng}
		playerO := player.NewRandomComputer(game.MarkNaught, 0, rng)

		var handled []error
		onError := func(err error) { handled = append(handled, err) }

		match, err := New(discardLogger(), playerX, playerO, &countingRenderer{}, nil, onError)
		require.NoError(t, err)

		// When: playing the match to the end
		final, err := match.Play(context.Background(), game.MarkCross)
		require.NoError(t, err)

		// Then: the botched move should have been surfaced and the game finished anyway
		require.Len(t, handled, 1)
		assert.ErrorIs(t, handled[0], apperror.ErrInvalidMove)
		assert.True(t, final.GameOver())
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		// Given: an already cancelled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rng := rand.New(rand.NewSource(5))
		playerX := player.NewRandomComputer(game.MarkCross, 0, rng)
		playerO := player.NewRandomComputer(game.MarkNaught, 0, rng)

		match, err := New(discardLogger(), playerX, playerO, &countingRenderer{}, nil, nil)
		require.NoError(t, err)

		// When: playing the match
		state, err := match.Play(ctx, game.MarkCross)

		// Then: the loop should stop with the untouched initial state
		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, state.GameNotStarted())
	})
}
