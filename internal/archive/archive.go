package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

const tieWinner = "-"

// Match is one archived, finished game.
type Match struct {
	ID           string
	Board        string
	StartingMark string
	Winner       string // "X", "O" or "-" for a tie
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Archive stores finished matches in a local SQLite database.
type Archive struct {
	logger     *slog.Logger
	connection *sql.DB
}

func New(ctx context.Context, logger *slog.Logger, path string) (*Archive, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	archive := &Archive{
		logger:     logger.With("component", "archive"),
		connection: conn,
	}

	if err = archive.init(ctx); err != nil {
		return nil, err
	}

	return archive, nil
}

func (that *Archive) init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		board TEXT NOT NULL,
		starting_mark TEXT NOT NULL,
		winner TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL
	)`

	if _, err := that.connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

// SaveFinished records the final state of a completed match.
func (that *Archive) SaveFinished(ctx context.Context, state *game.GameState, startedAt, finishedAt time.Time) error {
	winner := tieWinner
	if mark, ok := state.Winner(); ok {
		winner = mark.String()
	}

	match := Match{
		ID:           uuid.NewString(),
		Board:        state.Grid().String(),
		StartingMark: state.StartingMark().String(),
		Winner:       winner,
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
	}

	query := `INSERT INTO matches (id, board, starting_mark, winner, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.connection.ExecContext(ctx, query,
		match.ID, match.Board, match.StartingMark, match.Winner, match.StartedAt, match.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	that.logger.Debug("match archived", "id", match.ID, "winner", match.Winner)

	return nil
}

// RecentMatches lists the most recently finished matches, newest first.
func (that *Archive) RecentMatches(ctx context.Context, limit int) ([]Match, error) {
	query := `SELECT id, board, starting_mark, winner, started_at, finished_at
		FROM matches ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var match Match
		if err = rows.Scan(&match.ID, &match.Board, &match.StartingMark, &match.Winner, &match.StartedAt, &match.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}

func (that *Archive) Close() error {
	return that.connection.Close()
}
