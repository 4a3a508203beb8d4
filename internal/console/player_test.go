package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

func TestParseCoordinate(t *testing.T) {
	t.Run("Accepts column-first and row-first forms", func(t *testing.T) {
		cases := map[string]int{
			"A1": 0,
			"a1": 0,
			"1A": 0,
			"B2": 4,
			"2b": 4,
			"C3": 8,
			"3c": 8,
			"C1": 2,
		}

		for input, want := range cases {
			index, err := parseCoordinate(input)
			require.NoErrorf(t, err, "input %q", input)
			assert.Equalf(t, want, index, "input %q", input)
		}
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "D1", "A4", "11", "AA", "A1B"} {
			_, err := parseCoordinate(input)
			assert.Errorf(t, err, "input %q", input)
		}
	})
}

func TestPlayer_GetMove(t *testing.T) {
	newState := func(t *testing.T, cells string, startingMark game.Mark) *game.GameState {
		t.Helper()

		grid, err := game.GridFromString(cells)
		require.NoError(t, err)

		state, err := game.NewGameState(grid, startingMark)
		require.NoError(t, err)

		return state
	}

	t.Run("Returns the move for a valid coordinate", func(t *testing.T) {
		// Given: a fresh game and a player typing B2
		state, err := game.NewInitialGameState(game.MarkCross)
		require.NoError(t, err)

		var out bytes.Buffer
		consolePlayer := NewPlayer(game.MarkCross, strings.NewReader("B2\n"), &out)

		// When: asking for the move
		move, ok, err := consolePlayer.GetMove(state)

		// Then: the move should target the center cell
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 4, move.CellIndex)
		assert.Contains(t, out.String(), "X's move:")
	})

	t.Run("Retries on malformed coordinates without consuming the turn", func(t *testing.T) {
		// Given: garbage input followed by a valid coordinate
		state, err := game.NewInitialGameState(game.MarkCross)
		require.NoError(t, err)

		var out bytes.Buffer
		consolePlayer := NewPlayer(game.MarkCross, strings.NewReader("nope\nA1\n"), &out)

		// When: asking for the move
		move, ok, err := consolePlayer.GetMove(state)

		// Then: the hint should be printed and the valid coordinate accepted
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 0, move.CellIndex)
		assert.Contains(t, out.String(), "form of A1 or 1A")
	})

	t.Run("Retries on an occupied cell", func(t *testing.T) {
		// Given: cell A1 already taken and input naming it first
		state := newState(t, "X        ", game.MarkCross)

		var out bytes.Buffer
		consolePlayer := NewPlayer(game.MarkNaught, strings.NewReader("A1\nB1\n"), &out)

		// When: asking for the move
		move, ok, err := consolePlayer.GetMove(state)

		// Then: the occupied hint should be printed and the next cell accepted
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, move.CellIndex)
		assert.Contains(t, out.String(), "already occupied")
	})

	t.Run("Reports no move once the game is over", func(t *testing.T) {
		// Given: a finished game
		state := newState(t, "XXX OO   ", game.MarkCross)

		var out bytes.Buffer
		consolePlayer := NewPlayer(game.MarkCross, strings.NewReader(""), &out)

		// When: asking for the move
		_, ok, err := consolePlayer.GetMove(state)

		// Then: there should be nothing to play and nothing asked
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, out.String())
	})

	t.Run("Fails when input ends mid-game", func(t *testing.T) {
		// Given: an ongoing game with no input left
		state, err := game.NewInitialGameState(game.MarkCross)
		require.NoError(t, err)

		var out bytes.Buffer
		consolePlayer := NewPlayer(game.MarkCross, strings.NewReader(""), &out)

		// When: asking for the move
		_, _, err = consolePlayer.GetMove(state)

		// Then: the read failure should surface
		require.Error(t, err)
	})
}
