package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *game.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gs := game.NewService(config.BoardConfig{Rows: domain.DefaultRows, Columns: domain.DefaultColumns})
	h := NewHandler(NewConnectionManager(), gs, []string{"http://allowed.test"})
	t.Cleanup(h.Close)

	router := gin.New()
	router.GET("/ws", h.HandleWebSocket)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, gs
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHandler_SendsStateOnConnect(t *testing.T) {
	srv, gs := newTestServer(t)
	conn := dial(t, srv)

	msg := read(t, conn)
	assert.Equal(t, "state", msg.Type)
	require.NotNil(t, msg.State)
	assert.Equal(t, gs.State().GameID, msg.State.GameID)
	assert.Equal(t, domain.Player1, msg.State.CurrentTurn)
}

func TestHandler_DropIsBroadcast(t *testing.T) {
	srv, _ := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)
	read(t, a)
	read(t, b)

	require.NoError(t, a.WriteJSON(ClientMessage{Type: "drop", Column: 3}))

	for _, conn := range []*websocket.Conn{a, b} {
		msg := read(t, conn)
		assert.Equal(t, "state", msg.Type)
		assert.Equal(t, game.EventMoveMade, msg.Event)
		require.NotNil(t, msg.Result)
		assert.Equal(t, domain.OutcomeContinue, msg.Result.Outcome)
		assert.Equal(t, domain.DefaultRows-1, msg.Result.Row)
		assert.Equal(t, 1, msg.State.Board[domain.DefaultRows-1][3])
	}
}

func TestHandler_InvalidDropRepliesWithError(t *testing.T) {
	srv, gs := newTestServer(t)
	conn := dial(t, srv)
	read(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "drop", Column: 99}))

	msg := read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, domain.ErrInvalidColumn.Error(), msg.Message)
	assert.Zero(t, gs.State().MoveCount)
}

func TestHandler_Preview(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	read(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "preview", Column: 2}))

	msg := read(t, conn)
	assert.Equal(t, "preview", msg.Type)
	require.NotNil(t, msg.Row)
	assert.Equal(t, domain.DefaultRows-1, *msg.Row)
}

func TestHandler_NewGame(t *testing.T) {
	srv, gs := newTestServer(t)
	conn := dial(t, srv)
	first := read(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{
		Type:    "new_game",
		Player1: &domain.Player{Name: "Ada", Color: "blue"},
	}))

	msg := read(t, conn)
	assert.Equal(t, game.EventGameStarted, msg.Event)
	assert.NotEqual(t, first.State.GameID, msg.State.GameID)
	assert.Equal(t, "Ada", gs.State().Players[0].Name)
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	srv, _ := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	header := map[string][]string{"Origin": {"http://evil.test"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 403, resp.StatusCode)
}
