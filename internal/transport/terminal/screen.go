package terminal

import "github.com/nsf/termbox-go"

// Screen is the drawing surface the UI renders onto.
type Screen interface {
	Size() (width, height int)
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Clear() error
	Flush() error
}

// termboxScreen draws on the real terminal.
type termboxScreen struct{}

func (termboxScreen) Size() (int, int) { return termbox.Size() }

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Clear() error { return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault) }
func (termboxScreen) Flush() error { return termbox.Flush() }

var namedColors = map[string]termbox.Attribute{
	"red":     termbox.ColorRed,
	"yellow":  termbox.ColorYellow,
	"green":   termbox.ColorGreen,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"purple":  termbox.ColorMagenta,
	"cyan":    termbox.ColorCyan,
	"white":   termbox.ColorWhite,
	"black":   termbox.ColorBlack,
}

// colorFor maps a player's color name to a terminal color, falling back to
// the seat's default so two pieces never share an unknown color.
func colorFor(name string, seat int) termbox.Attribute {
	if c, ok := namedColors[name]; ok {
		return c
	}
	if seat == 1 {
		return termbox.ColorRed
	}
	return termbox.ColorYellow
}

func drawText(s Screen, x, y int, text string, fg, bg termbox.Attribute) {
	for _, ch := range text {
		s.SetCell(x, y, ch, fg, bg)
		x++
	}
}
