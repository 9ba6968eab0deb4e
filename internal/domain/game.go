package domain

// Game is the Connect Four state machine. It is not safe for concurrent use;
// callers serialize access.
type Game struct {
	board     *Board
	players   [2]Player
	active    PlayerID
	status    GameStatus
	winner    PlayerID
	line      []Position
	moveCount int
}

// NewGame starts a game on an empty rows x columns board with player1 to move.
// Boards smaller than ToWin in both dimensions are allowed; they can only tie.
func NewGame(rows, columns int, player1, player2 Player) *Game {
	return &Game{
		board:   NewBoard(rows, columns),
		players: [2]Player{player1, player2},
		active:  Player1,
		status:  StatusActive,
		winner:  Empty,
	}
}

func (g *Game) Rows() int    { return g.board.Rows() }
func (g *Game) Columns() int { return g.board.Columns() }

// ColumnDropRow returns the row a piece dropped into column would land on,
// or ErrColumnFull when there is none. It never changes the game.
func (g *Game) ColumnDropRow(column int) (int, error) {
	return g.board.DropRow(column)
}

// DropPiece plays column for the active player. It is the only mutator.
func (g *Game) DropPiece(column int) MoveResult {
	mover := g.active
	result := MoveResult{Player: mover, Row: -1, Column: column}

	if g.IsOver() {
		result.Outcome = OutcomeGameOver
		return result
	}

	row, err := g.board.DropDisk(column, mover)
	switch err {
	case nil:
	case ErrInvalidColumn:
		result.Outcome = OutcomeInvalidColumn
		return result
	default:
		result.Outcome = OutcomeColumnFull
		return result
	}

	g.moveCount++
	result.Row = row

	// win is checked before a full board so a last-cell win is never a tie
	if line, ok := g.board.WinningLine(mover); ok {
		g.status = StatusWon
		g.winner = mover
		g.line = line
		result.Outcome = OutcomeWin
		return result
	}

	if g.board.IsFull() {
		g.status = StatusDraw
		result.Outcome = OutcomeTie
		return result
	}

	g.active = mover.Opponent()
	result.Outcome = OutcomeContinue
	return result
}

func (g *Game) IsOver() bool {
	return g.status == StatusWon || g.status == StatusDraw
}

func (g *Game) Status() GameStatus { return g.status }
func (g *Game) Active() PlayerID   { return g.active }
func (g *Game) Winner() PlayerID   { return g.winner }
func (g *Game) MoveCount() int     { return g.moveCount }

func (g *Game) ActivePlayer() Player {
	return g.players[g.active.index()]
}

// Player returns the display identity of a seat.
func (g *Game) Player(id PlayerID) (Player, bool) {
	if !id.Valid() {
		return Player{}, false
	}
	return g.players[id.index()], true
}

func (g *Game) Players() [2]Player { return g.players }

// Cell returns the owner of (row, column), Empty for an unoccupied cell.
func (g *Game) Cell(row, column int) (PlayerID, error) {
	return g.board.At(row, column)
}

// WinningLine returns the cells of the winning line once the game is won.
func (g *Game) WinningLine() []Position {
	if g.line == nil {
		return nil
	}
	line := make([]Position, len(g.line))
	copy(line, g.line)
	return line
}

func (g *Game) ValidColumns() []int {
	if g.IsOver() {
		return []int{}
	}
	return g.board.ValidColumns()
}

func (g *Game) Snapshot() [][]int {
	return g.board.Snapshot()
}
