package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/archive"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/engine"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
)

// RunApp - runs the application: builds both players from the config, plays
// one match on the console and archives the result when configured.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	startingMark, err := game.ParseMark(conf.StartingMark)
	if err != nil {
		return fmt.Errorf("bad starting mark: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness, not crypto

	playerX, err := buildPlayer(conf.PlayerX, game.MarkCross, conf.BotDelay, rng)
	if err != nil {
		return fmt.Errorf("failed to build player X: %w", err)
	}

	playerO, err := buildPlayer(conf.PlayerO, game.MarkNaught, conf.BotDelay, rng)
	if err != nil {
		return fmt.Errorf("failed to build player O: %w", err)
	}

	var recorder engine.MatchRecorder
	if conf.ArchivePath != "" {
		matchArchive, archiveErr := archive.New(ctx, logger, conf.ArchivePath)
		if archiveErr != nil {
			return fmt.Errorf("could not open match archive: %w", archiveErr)
		}

		defer func() {
			if closeErr := matchArchive.Close(); closeErr != nil {
				log.Error("could not close match archive", "error", closeErr)
			}
		}()

		recorder = matchArchive
	}

	onError := func(moveErr error) {
		fmt.Fprintln(os.Stdout, moveErr)
	}

	match, err := engine.New(logger, playerX, playerO, console.NewRenderer(os.Stdout), recorder, onError)
	if err != nil {
		return fmt.Errorf("failed to set up match: %w", err)
	}

	final, err := match.Play(ctx, startingMark)
	if err != nil {
		return fmt.Errorf("match aborted: %w", err)
	}

	if winner, ok := final.Winner(); ok {
		log.Info("match finished", "winner", winner)
	} else {
		log.Info("match finished", "winner", "tie")
	}

	return nil
}

func buildPlayer(kind string, mark game.Mark, delay time.Duration, rng *rand.Rand) (player.Player, error) {
	switch kind {
	case config.PlayerKindHuman:
		return console.NewPlayer(mark, os.Stdin, os.Stdout), nil
	case config.PlayerKindRandom:
		return player.NewRandomComputer(mark, delay, rng), nil
	case config.PlayerKindMinimax:
		return player.NewMinimaxComputer(mark, delay, rng), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
