package domain

// Board is a fixed rows x columns grid stored row-major in one slice.
// Row 0 is the top row; pieces stack up from row Rows()-1.
type Board struct {
	rows    int
	columns int
	cells   []PlayerID
}

func NewBoard(rows, columns int) *Board {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]PlayerID, rows*columns),
	}
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// At returns the owner of a cell.
func (b *Board) At(row, column int) (PlayerID, error) {
	if !b.InBounds(row, column) {
		return Empty, ErrInvalidCell
	}
	return b.cells[row*b.columns+column], nil
}

// owner is At without the error, out of range cells read as Empty.
func (b *Board) owner(row, column int) PlayerID {
	if !b.InBounds(row, column) {
		return Empty
	}
	return b.cells[row*b.columns+column]
}

func (b *Board) set(row, column int, player PlayerID) {
	b.cells[row*b.columns+column] = player
}

// DropRow returns the row a piece dropped into column would land on.
func (b *Board) DropRow(column int) (int, error) {
	if column < 0 || column >= b.columns {
		return -1, ErrInvalidColumn
	}

	// scanning from the bottom row up to the first empty cell
	for row := b.rows - 1; row >= 0; row-- {
		if b.owner(row, column) == Empty {
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// DropDisk places a piece for player and returns its row.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	row, err := b.DropRow(column)
	if err != nil {
		return -1, err
	}
	b.set(row, column, player)
	return row, nil
}

func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// ValidColumns lists the columns that still accept a piece.
func (b *Board) ValidColumns() []int {
	valid := []int{}
	for col := 0; col < b.columns; col++ {
		if b.owner(0, col) == Empty {
			valid = append(valid, col)
		}
	}
	return valid
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	cells := make([]PlayerID, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, columns: b.columns, cells: cells}
}

// Snapshot returns the grid as rows of ints, the shape renderers consume.
func (b *Board) Snapshot() [][]int {
	grid := make([][]int, b.rows)
	for r := range grid {
		grid[r] = make([]int, b.columns)
		for c := range grid[r] {
			grid[r][c] = int(b.owner(r, c))
		}
	}
	return grid
}
