package domain

import "fmt"

// PlayerID identifies the owner of a cell. It doubles as the seat index of
// the two players in a game, so Player1 is seat 0 and Player2 is seat 1.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// ToWin is the number of same-owner cells in a line that wins the game.
const ToWin = 4

const (
	DefaultRows    = 6
	DefaultColumns = 7
)

// Valid reports whether p is one of the two seats.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other seat. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) index() int {
	return int(p) - 1
}

func (p PlayerID) String() string {
	if p == Empty {
		return "empty"
	}
	return fmt.Sprintf("player%d", int(p))
}

// Player is the display identity of a seat. The engine never looks inside it.
type Player struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

var defaultColors = [2]string{"red", "yellow"}

// Normalize fills in a missing name or color for the given seat.
func (p Player) Normalize(seat PlayerID) Player {
	if p.Name == "" {
		p.Name = fmt.Sprintf("Player %d", int(seat))
	}
	if p.Color == "" && seat.Valid() {
		p.Color = defaultColors[seat.index()]
	}
	return p
}

func DefaultPlayers() (Player, Player) {
	return Player{}.Normalize(Player1), Player{}.Normalize(Player2)
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Outcome is the kind of a MoveResult.
type Outcome string

const (
	OutcomeContinue      Outcome = "continue"
	OutcomeWin           Outcome = "win"
	OutcomeTie           Outcome = "tie"
	OutcomeColumnFull    Outcome = "column_full"
	OutcomeGameOver      Outcome = "game_over"
	OutcomeInvalidColumn Outcome = "invalid_column"
)

// MoveResult reports what a DropPiece call did. Row and Column are set
// whenever a piece was placed; Player is the seat that moved (or tried to).
type MoveResult struct {
	Outcome Outcome  `json:"outcome"`
	Player  PlayerID `json:"player"`
	Row     int      `json:"row"`
	Column  int      `json:"column"`
}

// Placed reports whether the move put a piece on the board.
func (r MoveResult) Placed() bool {
	return r.Outcome == OutcomeContinue || r.Outcome == OutcomeWin || r.Outcome == OutcomeTie
}

// Terminal reports whether this move ended the game.
func (r MoveResult) Terminal() bool {
	return r.Outcome == OutcomeWin || r.Outcome == OutcomeTie
}

// Err maps a rejected move to its domain error, nil for placed pieces.
func (r MoveResult) Err() error {
	switch r.Outcome {
	case OutcomeColumnFull:
		return ErrColumnFull
	case OutcomeGameOver:
		return ErrGameOver
	case OutcomeInvalidColumn:
		return ErrInvalidColumn
	}
	return nil
}

// Position is a (row, column) cell coordinate. Row 0 is the top row.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
	ErrInvalidCell   Error = "cell out of range"
)
