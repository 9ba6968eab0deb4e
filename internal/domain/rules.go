package domain

// the four directions a line can run from its anchor cell:
// right, down, down-right and down-left
var lineDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// HasWin reports whether player owns ToWin cells in a row anywhere on the board.
func (b *Board) HasWin(player PlayerID) bool {
	_, ok := b.WinningLine(player)
	return ok
}

// WinningLine scans every cell in row-major order and returns the first line
// of ToWin cells owned by player. Lines that leave the grid never match.
func (b *Board) WinningLine(player PlayerID) ([]Position, bool) {
	if player == Empty {
		return nil, false
	}

	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.columns; x++ {
			for _, d := range lineDirections {
				if b.isLine(player, y, x, d[0], d[1]) {
					line := make([]Position, ToWin)
					for i := range line {
						line[i] = Position{Row: y + i*d[0], Column: x + i*d[1]}
					}
					return line, true
				}
			}
		}
	}

	return nil, false
}

func (b *Board) isLine(player PlayerID, row, column, deltaRow, deltaCol int) bool {
	for i := 0; i < ToWin; i++ {
		r, c := row+i*deltaRow, column+i*deltaCol
		if !b.InBounds(r, c) || b.owner(r, c) != player {
			return false
		}
	}
	return true
}
