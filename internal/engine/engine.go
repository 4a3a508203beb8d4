package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
)

// Renderer consumes a fully constructed game state after every transition
// and once more at game end.
type Renderer interface {
	Render(state *game.GameState)
}

// MatchRecorder persists a finished match.
type MatchRecorder interface {
	SaveFinished(ctx context.Context, state *game.GameState, startedAt, finishedAt time.Time) error
}

// ErrorHandler receives recoverable move errors during the loop.
type ErrorHandler func(err error)

// TicTacToe drives one match between two players.
type TicTacToe struct {
	logger *slog.Logger

	player1  player.Player
	player2  player.Player
	renderer Renderer

	recorder MatchRecorder
	onError  ErrorHandler
}

// New validates the player pairing and builds the match runner. The recorder
// and error handler may be nil.
func New(logger *slog.Logger, player1, player2 player.Player, renderer Renderer, recorder MatchRecorder, onError ErrorHandler) (*TicTacToe, error) {
	if err := game.ValidatePlayers(player1.Mark(), player2.Mark()); err != nil {
		return nil, err
	}

	return &TicTacToe{
		logger: logger.With("component", "engine"),

		player1:  player1,
		player2:  player2,
		renderer: renderer,

		recorder: recorder,
		onError:  onError,
	}, nil
}

// Play runs the match from the empty board until game over and returns the
// final state. An invalid move does not advance the state: the error is
// surfaced through the handler and the same player is asked again.
func (that *TicTacToe) Play(ctx context.Context, startingMark game.Mark) (*game.GameState, error) {
	state, err := game.NewInitialGameState(startingMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial state: %w", err)
	}

	startedAt := time.Now()

	for {
		that.renderer.Render(state)

		if state.GameOver() {
			break
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
		}

		next, err := player.MakeMove(that.currentPlayer(state), state)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				that.logger.Warn("invalid move", "error", err)
				if that.onError != nil {
					that.onError(err)
				}
				continue
			}
			return state, fmt.Errorf("failed to make move: %w", err)
		}

		state = next
	}

	if that.recorder != nil {
		if err = that.recorder.SaveFinished(ctx, state, startedAt, time.Now()); err != nil {
			that.logger.Error("could not record finished match", "error", err)
		}
	}

	return state, nil
}

func (that *TicTacToe) currentPlayer(state *game.GameState) player.Player {
	if state.CurrentMark() == that.player1.Mark() {
		return that.player1
	}
	return that.player2
}
