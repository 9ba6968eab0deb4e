package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/pkg/uid"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler pushes game state to every open renderer and accepts their input.
type Handler struct {
	ConnManager *ConnectionManager
	GameService *game.Service
	Upgrader    websocket.Upgrader
	unsubscribe func()
}

// NewHandler creates a WebSocket handler that broadcasts every game event.
func NewHandler(cm *ConnectionManager, gs *game.Service, allowedOrigins []string) *Handler {
	h := &Handler{
		ConnManager: cm,
		GameService: gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	h.unsubscribe = gs.Subscribe(func(e game.Event) {
		cm.BroadcastMessage(stateMessage(e.Type, e.Result, e.State))
	})
	return h
}

// Close stops broadcasting game events.
func (h *Handler) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		log.Printf("[WS] Rejected origin %q", origin)
		return false
	}
}

// HandleWebSocket upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	connID, err := uid.GenerateConnID()
	if err != nil {
		log.Printf("[WS] %v", err)
		conn.Close()
		return
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	h.ConnManager.AddConnection(connID, conn)
	log.Printf("[WS] Renderer %s connected (%d open)", connID, h.ConnManager.Count())

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.RemoveConnection(connID)
		log.Printf("[WS] Renderer %s disconnected", connID)
	}()

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := h.ConnManager.WriteControl(connID, websocket.PingMessage); err != nil {
					return
				}
			}
		}
	}()

	state := h.GameService.State()
	h.ConnManager.SendMessage(connID, stateMessage("", nil, state))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Renderer %s disconnected unexpectedly: %v", connID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.ConnManager.SendMessage(connID, errorMessage("invalid message"))
			continue
		}

		h.processMessage(connID, msg)
	}
}

// processMessage routes specific actions. Accepted moves reach every
// renderer through the game event subscription.
func (h *Handler) processMessage(connID string, msg ClientMessage) {
	switch msg.Type {
	case "drop":
		result, _ := h.GameService.Drop(msg.Column)
		if err := result.Err(); err != nil {
			h.ConnManager.SendMessage(connID, errorMessage(err.Error()))
		}

	case "preview":
		row, err := h.GameService.Preview(msg.Column)
		if err != nil {
			h.ConnManager.SendMessage(connID, errorMessage(err.Error()))
			return
		}
		column := msg.Column
		h.ConnManager.SendMessage(connID, ServerMessage{Type: "preview", Column: &column, Row: &row})

	case "new_game":
		var p1, p2 domain.Player
		if msg.Player1 != nil {
			p1 = *msg.Player1
		}
		if msg.Player2 != nil {
			p2 = *msg.Player2
		}
		h.GameService.Start(p1, p2)

	case "restart":
		h.GameService.Restart()

	case "state":
		h.ConnManager.SendMessage(connID, stateMessage("", nil, h.GameService.State()))

	default:
		h.ConnManager.SendMessage(connID, errorMessage("unknown message type"))
	}
}
