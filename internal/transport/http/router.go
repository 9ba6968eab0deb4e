package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/internal/transport/http/middleware"
)

// NewRouter wires the game API, the live socket and the browser page.
func NewRouter(allowedOrigins []string, gameHandler *GameHandler, wsHandler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	api := router.Group("/api/game")
	{
		api.GET("", gameHandler.GetState)
		api.POST("", gameHandler.NewGame)
		api.GET("/columns/:column", gameHandler.PreviewColumn)
		api.POST("/moves", gameHandler.Move)
	}

	router.GET("/ws", wsHandler)
	router.GET("/", Index)

	return router
}
