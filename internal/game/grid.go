package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell is a single position on the grid: a player mark or empty.
type Cell string

const EmptyCell Cell = " "

// Grid is the immutable 3x3 board, stored row-major. Mark counts are
// computed once at construction.
type Grid struct {
	cells      [9]Cell
	xCount     int
	oCount     int
	emptyCount int
}

// NewGrid builds a grid from the given cells. It fails with ErrInvalidGrid
// when any cell holds a disallowed symbol.
func NewGrid(cells [9]Cell) (Grid, error) {
	grid := Grid{cells: cells}

	for i, cell := range cells {
		switch cell {
		case Cell(MarkCross):
			grid.xCount++
		case Cell(MarkNaught):
			grid.oCount++
		case EmptyCell:
			grid.emptyCount++
		default:
			return Grid{}, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidGrid, i, string(cell))
		}
	}

	return grid, nil
}

// EmptyGrid returns a grid with all nine cells empty.
func EmptyGrid() Grid {
	return Grid{
		cells:      [9]Cell{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		emptyCount: 9,
	}
}

// GridFromString parses the nine-character board codec, one character per
// cell, space meaning empty. "XO       " is X at 0, O at 1, the rest empty.
func GridFromString(raw string) (Grid, error) {
	if len(raw) != 9 {
		return Grid{}, fmt.Errorf("%w: must contain exactly 9 cells, got %d", apperror.ErrInvalidGrid, len(raw))
	}

	var cells [9]Cell
	for i := range cells {
		cells[i] = Cell(raw[i : i+1])
	}

	return NewGrid(cells)
}

// Cell returns the cell at index 0..8.
func (that Grid) Cell(index int) Cell {
	return that.cells[index]
}

func (that Grid) XCount() int {
	return that.xCount
}

func (that Grid) OCount() int {
	return that.oCount
}

func (that Grid) EmptyCount() int {
	return that.emptyCount
}

// String renders the grid in the nine-character codec accepted by
// GridFromString.
func (that Grid) String() string {
	raw := make([]byte, 0, 9)
	for _, cell := range that.cells {
		raw = append(raw, cell[0])
	}
	return string(raw)
}
