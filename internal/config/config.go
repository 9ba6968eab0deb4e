package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4/internal/domain"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Board          BoardConfig
	LogFile        string
}

// BoardConfig is everything needed to start a game.
type BoardConfig struct {
	Rows    int
	Columns int
	Player1 domain.Player
	Player2 domain.Player
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Build allowed origins list (local page + CSV values)
	allowedOrigins := []string{
		"http://localhost:" + port,
		"http://127.0.0.1:" + port,
	}
	if allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", ""); allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	board := BoardConfig{
		Rows:    GetEnvAsInt("BOARD_ROWS", domain.DefaultRows),
		Columns: GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns),
		Player1: domain.Player{
			Name:  GetEnv("PLAYER1_NAME", ""),
			Color: GetEnv("PLAYER1_COLOR", ""),
		}.Normalize(domain.Player1),
		Player2: domain.Player{
			Name:  GetEnv("PLAYER2_NAME", ""),
			Color: GetEnv("PLAYER2_COLOR", ""),
		}.Normalize(domain.Player2),
	}

	return &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		Board:          board,
		LogFile:        GetEnv("CONNECT4_LOG", ""),
	}
}

// Validate rejects boards a game cannot be played on.
func (c *Config) Validate() error {
	return c.Board.Validate()
}

func (b BoardConfig) Validate() error {
	if b.Rows < 1 || b.Columns < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", b.Rows, b.Columns)
	}
	if b.Rows < domain.ToWin && b.Columns < domain.ToWin {
		log.Printf("[CONFIG] Board %dx%d is too small for a win, every game will tie", b.Rows, b.Columns)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
