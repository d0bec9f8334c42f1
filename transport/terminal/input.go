package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

const QuitKey = 'q'

type mover interface {
	MakeTurn(row, col int) error
}

// InputHandler turns terminal events into moves.
type InputHandler struct {
	logger  *slog.Logger
	screen  tcell.Screen
	layout  Layout
	session mover
}

func NewInputHandler(logger *slog.Logger, screen tcell.Screen, layout Layout, session mover) *InputHandler {
	return &InputHandler{
		logger:  logger.With("component", "input"),
		screen:  screen,
		layout:  layout,
		session: session,
	}
}

// Run blocks on the event stream until the quit key is pressed or the screen
// is finalized. The quit key closes quit. Event stream errors are returned.
func (that *InputHandler) Run(quit chan<- struct{}) error {
	log := that.logger.With("method", "Run")

	var pressed bool
	for {
		switch event := that.screen.PollEvent().(type) {
		case nil:
			log.Debug("screen finalized, stopping input loop")
			return nil

		case *tcell.EventError:
			return fmt.Errorf("failed to read event: %w", event)

		case *tcell.EventMouse:
			down := event.Buttons()&tcell.Button1 != 0
			if down && !pressed {
				that.handleClick(event.Position())
			}
			pressed = down

		case *tcell.EventKey:
			if event.Key() == tcell.KeyRune && event.Rune() == QuitKey {
				log.Info("quit requested")
				close(quit)
				return nil
			}
		}
	}
}

// handleClick applies a move for the clicked cell. Clicks outside the board or
// on an occupied cell are ignored.
func (that *InputHandler) handleClick(x, y int) {
	row, col, ok := that.layout.CellAt(x, y)
	if !ok {
		that.logger.Debug("click outside the board ignored", "x", x, "y", y)
		return
	}

	if err := that.session.MakeTurn(row, col); err != nil {
		that.logger.Debug("move ignored", "row", row, "col", col, "error", err)
	}
}
