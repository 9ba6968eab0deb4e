package websocket

import (
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
)

// ClientMessage is anything a renderer sends up the socket.
type ClientMessage struct {
	Type    string         `json:"type"`
	Column  int            `json:"column"`
	Player1 *domain.Player `json:"player1,omitempty"`
	Player2 *domain.Player `json:"player2,omitempty"`
}

type ServerMessage struct {
	Type    string             `json:"type"`
	Message string             `json:"message,omitempty"`
	Event   game.EventType     `json:"event,omitempty"`
	Result  *domain.MoveResult `json:"result,omitempty"`
	State   *game.State        `json:"state,omitempty"`
	Column  *int               `json:"column,omitempty"`
	Row     *int               `json:"row,omitempty"`
}

func stateMessage(event game.EventType, result *domain.MoveResult, state game.State) ServerMessage {
	return ServerMessage{
		Type:   "state",
		Event:  event,
		Result: result,
		State:  &state,
	}
}

func errorMessage(message string) ServerMessage {
	return ServerMessage{Type: "error", Message: message}
}
