package entity

// Cell addresses a single board coordinate, zero based.
type Cell struct {
	Row int
	Col int
}

// Board is an n-by-n grid of marks. Every cell starts empty, and a cell
// that holds a player mark is never rewritten.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard - creates an empty size-by-size board. The size is validated
// by the config layer before a board is ever built.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

// At - returns the mark at (row, col), or MarkEmpty when the coordinates
// fall outside the board. Scanning code leans on this so one comparison
// doubles as the boundary check.
func (that *Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return MarkEmpty
	}

	return that.cells[row*that.size+col]
}

// Place - puts a player mark at (row, col). It fails without mutating
// anything when the coordinates are out of bounds, the cell is already
// taken, or the mark is not a player mark.
func (that *Board) Place(mark Mark, row, col int) bool {
	if !mark.IsPlayer() || !that.InBounds(row, col) {
		return false
	}

	idx := row*that.size + col
	if that.cells[idx] != MarkEmpty {
		return false
	}

	that.cells[idx] = mark

	return true
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// IsFull - reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, mark := range that.cells {
		if mark == MarkEmpty {
			return false
		}
	}

	return true
}

// EmptyCells - collects the coordinates still open for play, in row-major
// order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(that.cells))
	for idx, mark := range that.cells {
		if mark == MarkEmpty {
			cells = append(cells, Cell{Row: idx / that.size, Col: idx % that.size})
		}
	}

	return cells
}

// Clone - returns a deep copy that shares no state with the original.
func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}
