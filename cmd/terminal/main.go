package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/internal/transport/terminal"
	"github.com/joho/godotenv"
)

func main() {
	// logging to the terminal would draw over the board
	log.SetOutput(io.Discard)

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	rows := flag.Int("rows", cfg.Board.Rows, "board height")
	columns := flag.Int("columns", cfg.Board.Columns, "board width")
	flag.Parse()
	cfg.Board.Rows = *rows
	cfg.Board.Columns = *columns

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := cfg.Validate(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := terminal.Run(game.NewService(cfg.Board)); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("%v", err)
	}
}
