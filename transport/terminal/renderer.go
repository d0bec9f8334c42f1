package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const title = "Tic Tac Toe"

var (
	defaultStyle = tcell.StyleDefault
	playerStyles = map[entity.Player]tcell.Style{
		entity.PlayerX: tcell.StyleDefault.Foreground(tcell.ColorBlue),
		entity.PlayerO: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
)

// Renderer draws games onto a screen. It never mutates the game it draws.
type Renderer struct {
	screen tcell.Screen
	layout Layout
}

func NewRenderer(screen tcell.Screen, layout Layout) *Renderer {
	return &Renderer{
		screen: screen,
		layout: layout,
	}
}

// Draw redraws the whole board and the current player banner.
func (that *Renderer) Draw(game entity.Game) {
	that.screen.Clear()
	that.drawText(0, 0, title, defaultStyle)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			that.drawCell(row, col, game.Board[row][col])
		}
	}

	x, y := that.layout.StatusLine()
	x = that.drawText(x, y, "current player: ", defaultStyle)
	that.drawText(x, y, game.CurrentPlayer.String(), styleFor(game.CurrentPlayer))

	that.screen.Show()
}

// DrawOutcome replaces the status line with the end of game message.
func (that *Renderer) DrawOutcome(state entity.BoardState) {
	x, y := that.layout.StatusLine()
	that.clearLine(y)

	switch state.Status {
	case entity.StatusWon:
		x = that.drawText(x, y, "player ", defaultStyle)
		x = that.drawText(x, y, state.Winner.String(), styleFor(state.Winner))
		that.drawText(x, y, " won", defaultStyle)
	case entity.StatusTie:
		that.drawText(x, y, OutcomeMessage(state), defaultStyle)
	}

	that.screen.Show()
}

func (that *Renderer) drawCell(row, col int, mark entity.Player) {
	x, y := that.layout.CellOrigin(row, col)

	that.drawText(x, y, " --- ", defaultStyle)
	markX := that.drawText(x, y+1, "| ", defaultStyle)
	that.drawText(that.drawText(markX, y+1, mark.String(), styleFor(mark)), y+1, " |", defaultStyle)
	that.drawText(x, y+2, " --- ", defaultStyle)
}

// drawText writes text starting at (x, y) and returns the column after it.
func (that *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (that *Renderer) clearLine(y int) {
	width, _ := that.screen.Size()
	for x := 0; x < width; x++ {
		that.screen.SetContent(x, y, ' ', nil, defaultStyle)
	}
}

func styleFor(player entity.Player) tcell.Style {
	if style, ok := playerStyles[player]; ok {
		return style
	}
	return defaultStyle
}

// OutcomeMessage is the plain-text end of game message.
func OutcomeMessage(state entity.BoardState) string {
	switch state.Status {
	case entity.StatusWon:
		return fmt.Sprintf("player %s won", state.Winner)
	case entity.StatusTie:
		return "tie"
	default:
		return "game abandoned"
	}
}

// PrintSummary writes the final board and outcome once the screen is released.
func PrintSummary(out io.Writer, board entity.Board, state entity.BoardState) error {
	if _, err := fmt.Fprintf(out, "%s\n%s\n", board, OutcomeMessage(state)); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}
	return nil
}
