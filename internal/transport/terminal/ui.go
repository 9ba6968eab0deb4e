package terminal

import (
	"fmt"
	"log"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/nsf/termbox-go"
)

const (
	pieceRune = 'O'
	boardTop  = 2
	helpText  = "<-/-> move  space/enter drop  1-9 pick column  n new game  q quit"
)

// UI is a hot-seat terminal front end: both players share one keyboard.
type UI struct {
	game    *game.Service
	screen  Screen
	cursor  int
	message string
}

func NewUI(gs *game.Service, screen Screen) *UI {
	return &UI{game: gs, screen: screen}
}

// Run takes over the terminal until the players quit.
func Run(gs *game.Service) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer termbox.Close()

	ui := NewUI(gs, termboxScreen{})
	if err := ui.Draw(); err != nil {
		return err
	}

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return fmt.Errorf("terminal event error: %w", ev.Err)
		case termbox.EventKey:
			if ui.HandleKey(ev) {
				return nil
			}
		}
		if err := ui.Draw(); err != nil {
			return err
		}
	}
}

// HandleKey applies one key press and reports whether the UI should exit.
func (u *UI) HandleKey(ev termbox.Event) bool {
	state := u.game.State()
	u.message = ""

	switch {
	case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
		return true
	case ev.Key == termbox.KeyArrowLeft || ev.Ch == 'h':
		if u.cursor > 0 {
			u.cursor--
		}
	case ev.Key == termbox.KeyArrowRight || ev.Ch == 'l':
		if u.cursor < state.Columns-1 {
			u.cursor++
		}
	case ev.Key == termbox.KeySpace || ev.Key == termbox.KeyEnter:
		u.drop(u.cursor)
	case ev.Ch >= '1' && ev.Ch <= '9':
		column := int(ev.Ch - '1')
		if column < state.Columns {
			u.cursor = column
		}
		u.drop(column)
	case ev.Ch == 'n':
		u.game.Restart()
		u.cursor = 0
	}
	return false
}

func (u *UI) drop(column int) {
	result, _ := u.game.Drop(column)
	switch result.Outcome {
	case domain.OutcomeColumnFull:
		u.message = "That column is full, pick another one."
	case domain.OutcomeInvalidColumn:
		u.message = fmt.Sprintf("There is no column %d.", column+1)
	case domain.OutcomeGameOver:
		u.message = "The game is over, press n for a new game."
	}
}

// Draw renders the current game state.
func (u *UI) Draw() error {
	if err := u.screen.Clear(); err != nil {
		return err
	}

	state := u.game.State()
	drawText(u.screen, 0, 0, statusLine(state), termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault)

	if state.Status == domain.StatusActive {
		fg := colorFor(state.ActivePlayer().Color, int(state.CurrentTurn))
		u.screen.SetCell(u.cursor*2+1, boardTop-1, 'v', fg, termbox.ColorDefault)
	}

	winning := make(map[domain.Position]bool, len(state.WinningLine))
	for _, p := range state.WinningLine {
		winning[p] = true
	}

	for r, row := range state.Board {
		y := boardTop + r
		for c, owner := range row {
			x := c * 2
			u.screen.SetCell(x, y, '|', termbox.ColorDefault, termbox.ColorDefault)
			if owner == int(domain.Empty) {
				u.screen.SetCell(x+1, y, ' ', termbox.ColorDefault, termbox.ColorDefault)
				continue
			}
			fg := colorFor(state.Players[owner-1].Color, owner)
			if winning[domain.Position{Row: r, Column: c}] {
				fg |= termbox.AttrBold | termbox.AttrReverse
			}
			u.screen.SetCell(x+1, y, pieceRune, fg, termbox.ColorDefault)
		}
		u.screen.SetCell(state.Columns*2, y, '|', termbox.ColorDefault, termbox.ColorDefault)
	}

	footer := boardTop + state.Rows + 1
	if u.message != "" {
		drawText(u.screen, 0, footer, u.message, termbox.ColorRed, termbox.ColorDefault)
	}
	drawText(u.screen, 0, footer+1, helpText, termbox.ColorDefault, termbox.ColorDefault)

	if err := u.screen.Flush(); err != nil {
		log.Printf("[TERM] Flush failed: %v", err)
		return err
	}
	return nil
}

func statusLine(state game.State) string {
	switch state.Status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %s won!", state.Players[int(state.Winner)-1].Name)
	case domain.StatusDraw:
		return "Tie!"
	}
	p := state.ActivePlayer()
	return fmt.Sprintf("%s (%s) to move", p.Name, p.Color)
}
