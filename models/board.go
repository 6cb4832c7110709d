package models

import (
	"fmt"
	"math/rand/v2"
)

// Board is the minesweeper grid. It is the only mutator of its cells; callers
// read it through Cell and Snapshot.
type Board struct {
	rows  int
	cols  int
	mines int
	flags int
	cells [][]Cell
}

// NewBoard creates a rows x cols board of hidden, unflagged, mine-free cells.
// Mines are added separately with PlaceMines or PlaceMinesAt.
func NewBoard(rows, cols, mines int) (*Board, error) {
	if err := ValidateDimensions(rows, cols, mines); err != nil {
		return nil, err
	}

	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
		for col := range cells[row] {
			cells[row][col] = Cell{Row: row, Col: col}
		}
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		mines: mines,
		cells: cells,
	}, nil
}

// Generate builds a ready-to-play board: mines placed at random and
// neighbour counts computed.
func Generate(rows, cols, mines int, r *rand.Rand) (*Board, error) {
	b, err := NewBoard(rows, cols, mines)
	if err != nil {
		return nil, err
	}
	b.PlaceMines(r)
	b.ComputeNeighborCounts()
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) Mines() int { return b.mines }

// FlagsUsed returns how many cells are currently flagged.
func (b *Board) FlagsUsed() int { return b.flags }

// RemainingFlags returns how many flags can still be placed.
func (b *Board) RemainingFlags() int { return b.mines - b.flags }

// InBounds reports whether row and col address a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns a copy of the cell at row, col.
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row][col], true
}

// PlaceMines marks b.Mines() distinct cells as mines, chosen uniformly at
// random without replacement. A nil r uses the global generator.
func (b *Board) PlaceMines(r *rand.Rand) {
	b.clearMines()

	// Every cell of the board as a flat index: row*cols + col.
	coords := make([]int, b.rows*b.cols)
	for i := range coords {
		coords[i] = i
	}

	// Partial Fisher-Yates: after step i the first i+1 entries are a uniform
	// sample of the board, so only the first b.mines swaps are needed.
	// https://en.wikipedia.org/wiki/Fisher–Yates_shuffle
	for i := 0; i < b.mines; i++ {
		j := i + intN(r, len(coords)-i)
		coords[i], coords[j] = coords[j], coords[i]
	}

	for _, idx := range coords[:b.mines] {
		b.cells[idx/b.cols][idx%b.cols].IsMine = true
	}
}

// PlaceMinesAt sets an explicit mine layout. Exactly b.Mines() distinct,
// in-bounds coordinates are required.
func (b *Board) PlaceMinesAt(coords ...Coord) error {
	if len(coords) != b.mines {
		return fmt.Errorf("%w: expected %d mine positions, got %d", ErrInvalidConfiguration, b.mines, len(coords))
	}

	seen := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		if !b.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: mine position (%d,%d) is off the board", ErrInvalidConfiguration, c.Row, c.Col)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate mine position (%d,%d)", ErrInvalidConfiguration, c.Row, c.Col)
		}
		seen[c] = true
	}

	b.clearMines()
	for _, c := range coords {
		b.cells[c.Row][c.Col].IsMine = true
	}
	return nil
}

// ComputeNeighborCounts sets NeighborMines on every non-mine cell. Mine cells
// keep a count of zero.
func (b *Board) ComputeNeighborCounts() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := &b.cells[row][col]
			if cell.IsMine {
				cell.NeighborMines = 0
				continue
			}
			cell.NeighborMines = b.countNearbyMines(row, col)
		}
	}
}

func (b *Board) countNearbyMines(row, col int) int {
	nearbyMines := 0
	b.forEachNeighbor(row, col, func(r, c int) {
		if b.cells[r][c].IsMine {
			nearbyMines++
		}
	})
	return nearbyMines
}

// forEachNeighbor calls fn for every in-bounds cell adjacent to row, col.
// Cells on the edge have fewer neighbours; the grid does not wrap.
func (b *Board) forEachNeighbor(row, col int, fn func(r, c int)) {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			r, c := row+deltaRow, col+deltaCol
			if b.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

// Reveal opens the cell at row, col. Revealing a revealed, flagged or
// off-board cell does nothing. Revealing a mine reveals only that cell and
// returns Lost. Otherwise the cell is opened and, when it has no neighbouring
// mines, the surrounding empty region is opened with it.
func (b *Board) Reveal(row, col int) RevealResult {
	if !b.InBounds(row, col) {
		return Continue
	}

	target := &b.cells[row][col]
	if target.IsRevealed || target.IsFlagged {
		return Continue
	}

	if target.IsMine {
		target.IsRevealed = true
		return Lost
	}

	b.floodReveal(row, col)
	return Continue
}

// floodReveal opens the connected zero region around row, col together with
// its numbered border. Neighbours are pushed unconditionally and filtered
// when popped, so a flagged cell stays closed but does not stop the fill from
// reaching cells behind it through another path.
func (b *Board) floodReveal(row, col int) {
	visited := make([][]bool, b.rows)
	for i := range visited {
		visited[i] = make([]bool, b.cols)
	}

	stack := []Coord{{Row: row, Col: col}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &b.cells[cur.Row][cur.Col]
		if visited[cur.Row][cur.Col] || cell.IsRevealed || cell.IsFlagged {
			continue
		}

		visited[cur.Row][cur.Col] = true
		cell.IsRevealed = true

		if cell.NeighborMines == 0 {
			b.forEachNeighbor(cur.Row, cur.Col, func(r, c int) {
				stack = append(stack, Coord{Row: r, Col: c})
			})
		}
	}
}

// RevealAllMines opens every mine for the end-of-game display. A flag on a
// mine is cleared so no cell is both revealed and flagged.
func (b *Board) RevealAllMines() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := &b.cells[row][col]
			if !cell.IsMine {
				continue
			}
			if cell.IsFlagged {
				cell.IsFlagged = false
				b.flags--
			}
			cell.IsRevealed = true
		}
	}
}

// ToggleFlag flags or unflags the cell at row, col and reports whether
// anything changed. Revealed and off-board cells are ignored, and no new flag
// is placed once every mine has one.
func (b *Board) ToggleFlag(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}

	cell := &b.cells[row][col]
	switch {
	case cell.IsRevealed:
		return false
	case cell.IsFlagged:
		cell.IsFlagged = false
		b.flags--
		return true
	case b.flags < b.mines:
		cell.IsFlagged = true
		b.flags++
		return true
	default:
		return false
	}
}

// RevealedCount returns the number of revealed cells, mines included.
func (b *Board) RevealedCount() int {
	revealed := 0
	for row := range b.cells {
		for _, cell := range b.cells[row] {
			if cell.IsRevealed {
				revealed++
			}
		}
	}
	return revealed
}

// CheckWin reports whether every non-mine cell has been revealed. Flags play
// no part in winning.
func (b *Board) CheckWin() bool {
	return b.RevealedCount() == b.rows*b.cols-b.mines
}

// Snapshot returns a deep copy of the grid, indexed [row][col].
func (b *Board) Snapshot() [][]Cell {
	grid := make([][]Cell, b.rows)
	for row := range b.cells {
		grid[row] = make([]Cell, b.cols)
		copy(grid[row], b.cells[row])
	}
	return grid
}

func (b *Board) clearMines() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col].IsMine = false
		}
	}
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
