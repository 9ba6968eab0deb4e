package game

import (
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/pkg/uid"
)

// State is a read-only view of the current game for renderers.
type State struct {
	GameID       string            `json:"gameId"`
	Rows         int               `json:"rows"`
	Columns      int               `json:"columns"`
	Board        [][]int           `json:"board"`
	Players      [2]domain.Player  `json:"players"`
	CurrentTurn  domain.PlayerID   `json:"currentTurn"`
	Status       domain.GameStatus `json:"status"`
	Winner       domain.PlayerID   `json:"winner"`
	WinningLine  []domain.Position `json:"winningLine,omitempty"`
	MoveCount    int               `json:"moveCount"`
	ValidColumns []int             `json:"validColumns"`
	StartedAt    time.Time         `json:"startedAt"`
}

// ActivePlayer is the display identity of the seat to move.
func (s State) ActivePlayer() domain.Player {
	return s.Players[int(s.CurrentTurn)-1]
}

type EventType string

const (
	EventGameStarted EventType = "game_started"
	EventMoveMade    EventType = "move_made"
	EventGameOver    EventType = "game_over"
)

// Event is delivered to subscribers after every state change.
type Event struct {
	Type   EventType          `json:"type"`
	Result *domain.MoveResult `json:"result,omitempty"`
	State  State              `json:"state"`
}

// Service owns the single hot-seat game and serializes access to it.
type Service struct {
	board     config.BoardConfig
	game      *domain.Game
	gameID    string
	startedAt time.Time
	mu        sync.Mutex

	// notifyMu is taken before mu is released so events go out in order
	notifyMu  sync.Mutex
	listeners map[int]func(Event)
	nextID    int
}

// NewService starts a game with the configured board and players.
func NewService(board config.BoardConfig) *Service {
	s := &Service{
		board:     board,
		listeners: make(map[int]func(Event)),
	}
	s.game, s.gameID, s.startedAt = s.newGame(board.Player1, board.Player2)
	return s
}

func (s *Service) newGame(p1, p2 domain.Player) (*domain.Game, string, time.Time) {
	p1 = p1.Normalize(domain.Player1)
	p2 = p2.Normalize(domain.Player2)
	g := domain.NewGame(s.board.Rows, s.board.Columns, p1, p2)
	gameID := uid.GenerateGameID()

	log.Printf("[GAME] Started game %s (%dx%d): %s vs %s", gameID, s.board.Rows, s.board.Columns, p1.Name, p2.Name)
	return g, gameID, time.Now()
}

// Start throws away the current game and begins a new one.
func (s *Service) Start(p1, p2 domain.Player) State {
	s.mu.Lock()
	s.game, s.gameID, s.startedAt = s.newGame(p1, p2)
	state := s.stateLocked()

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.publish(Event{Type: EventGameStarted, State: state})
	return state
}

// Restart begins a new game with the current players.
func (s *Service) Restart() State {
	s.mu.Lock()
	players := s.game.Players()
	s.mu.Unlock()

	return s.Start(players[0], players[1])
}

// Preview returns the landing row for column without playing it.
func (s *Service) Preview(column int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.ColumnDropRow(column)
}

// Drop plays column for the active player.
func (s *Service) Drop(column int) (domain.MoveResult, State) {
	s.mu.Lock()
	result := s.game.DropPiece(column)
	state := s.stateLocked()

	if !result.Placed() {
		s.mu.Unlock()
		log.Printf("[GAME] Rejected drop in column %d by %s: %s", column, result.Player, result.Outcome)
		return result, state
	}

	event := Event{Type: EventMoveMade, Result: &result, State: state}
	switch result.Outcome {
	case domain.OutcomeWin:
		event.Type = EventGameOver
		log.Printf("[GAME] Game %s won by %s after %d moves", state.GameID, state.Players[int(result.Player)-1].Name, state.MoveCount)
	case domain.OutcomeTie:
		event.Type = EventGameOver
		log.Printf("[GAME] Game %s ended in a tie after %d moves", state.GameID, state.MoveCount)
	}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.publish(event)
	return result, state
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

// caller must hold mu
func (s *Service) stateLocked() State {
	return State{
		GameID:       s.gameID,
		Rows:         s.game.Rows(),
		Columns:      s.game.Columns(),
		Board:        s.game.Snapshot(),
		Players:      s.game.Players(),
		CurrentTurn:  s.game.Active(),
		Status:       s.game.Status(),
		Winner:       s.game.Winner(),
		WinningLine:  s.game.WinningLine(),
		MoveCount:    s.game.MoveCount(),
		ValidColumns: s.game.ValidColumns(),
		StartedAt:    s.startedAt,
	}
}

// Subscribe registers fn for every future event and returns a function that
// removes it. fn must not call back into the Service synchronously.
func (s *Service) Subscribe(fn func(Event)) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		delete(s.listeners, id)
	}
}

// caller must hold notifyMu
func (s *Service) publish(event Event) {
	for _, fn := range s.listeners {
		fn(event)
	}
}
