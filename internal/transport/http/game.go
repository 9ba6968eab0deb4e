package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
)

type GameHandler struct {
	GameService *game.Service
}

func NewGameHandler(gs *game.Service) *GameHandler {
	return &GameHandler{GameService: gs}
}

type newGameRequest struct {
	Player1 domain.Player `json:"player1"`
	Player2 domain.Player `json:"player2"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type moveResponse struct {
	Result domain.MoveResult `json:"result"`
	State  game.State        `json:"state"`
}

// GetState returns the current game
func (h *GameHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.GameService.State())
}

// NewGame replaces the current game, an empty body keeps the current players
func (h *GameHandler) NewGame(c *gin.Context) {
	if c.Request.ContentLength == 0 {
		c.JSON(http.StatusCreated, h.GameService.Restart())
		return
	}

	var req newGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusCreated, h.GameService.Start(req.Player1, req.Player2))
}

// PreviewColumn reports where a piece dropped into :column would land
func (h *GameHandler) PreviewColumn(c *gin.Context) {
	column, err := strconv.Atoi(c.Param("column"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidColumn.Error()})
		return
	}

	row, err := h.GameService.Preview(column)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"column": column, "row": row})
}

// Move drops a piece for the active player
func (h *GameHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	result, state := h.GameService.Drop(*req.Column)
	if err := result.Err(); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "result": result, "state": state})
		return
	}

	c.JSON(http.StatusOK, moveResponse{Result: result, State: state})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnFull), errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
