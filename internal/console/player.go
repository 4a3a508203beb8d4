package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

var (
	colFirstPattern = regexp.MustCompile(`^[abcABC][123]$`)
	rowFirstPattern = regexp.MustCompile(`^[123][abcABC]$`)

	errBadCoordinate = errors.New("invalid grid coordinates")
)

// Player reads moves interactively. Bad coordinates and occupied cells get a
// hint and another prompt without consuming the turn.
type Player struct {
	mark game.Mark
	in   *bufio.Reader
	out  io.Writer
}

func NewPlayer(mark game.Mark, in io.Reader, out io.Writer) *Player {
	return &Player{
		mark: mark,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

func (that *Player) Mark() game.Mark {
	return that.mark
}

func (that *Player) GetMove(state *game.GameState) (game.Move, bool, error) {
	for !state.GameOver() {
		fmt.Fprintf(that.out, "%s's move: ", that.mark)

		line, err := that.in.ReadString('\n')
		if err != nil && line == "" {
			return game.Move{}, false, fmt.Errorf("failed to read move: %w", err)
		}

		index, err := parseCoordinate(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(that.out, "Please provide coordinates in the form of A1 or 1A")
			continue
		}

		move, err := state.MakeMoveTo(index)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				fmt.Fprintln(that.out, "That cell is already occupied.")
				continue
			}
			return game.Move{}, false, err
		}

		return move, true, nil
	}

	return game.Move{}, false, nil
}

// parseCoordinate converts "A1" or "1A" style input into a cell index 0..8.
func parseCoordinate(raw string) (int, error) {
	var col, row byte

	switch {
	case colFirstPattern.MatchString(raw):
		col, row = raw[0], raw[1]
	case rowFirstPattern.MatchString(raw):
		row, col = raw[0], raw[1]
	default:
		return 0, errBadCoordinate
	}

	colIndex := int(col|0x20) - 'a' // lowercase the letter
	rowIndex := int(row) - '1'

	return 3*rowIndex + colIndex, nil
}
