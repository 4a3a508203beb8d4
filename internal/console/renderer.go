package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

const gridTemplate = `
     A   B   C
   ------------
1 ┆  %s │ %s │ %s
  ┆ ───┼───┼───
2 ┆  %s │ %s │ %s
  ┆ ───┼───┼───
3 ┆  %s │ %s │ %s

`

// Renderer draws the grid on a terminal, highlighting the winning line with
// a blinking style and announcing the result at game end.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{output: termenv.NewOutput(w)}
}

func (that *Renderer) Render(state *game.GameState) {
	that.output.ClearScreen()

	cells := make([]any, 9)
	for i := 0; i < 9; i++ {
		cells[i] = string(state.Grid().Cell(i))
	}

	if winner, ok := state.Winner(); ok {
		for _, index := range state.WinningCells() {
			cells[index] = that.output.String(cells[index].(string)).Blink().Bold().String()
		}
		fmt.Fprintf(that.output, gridTemplate, cells...)
		fmt.Fprintf(that.output, "%s wins \U0001F389\n", winner)
		return
	}

	fmt.Fprintf(that.output, gridTemplate, cells...)

	if state.Tie() {
		fmt.Fprintln(that.output, "No one wins this time")
	}
}
