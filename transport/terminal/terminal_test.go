package terminal

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

const (
	screenWidth  = 80
	screenHeight = 25
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(screenWidth, screenHeight)
	t.Cleanup(screen.Fini)

	return screen
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// textAt reads n cells of the visible screen starting at (x, y).
func textAt(screen tcell.SimulationScreen, x, y, n int) string {
	cells, width, _ := screen.GetContents()

	var sb strings.Builder
	for i := 0; i < n; i++ {
		cell := cells[y*width+x+i]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(cell.Runes[0])
	}
	return sb.String()
}

func foregroundAt(screen tcell.SimulationScreen, x, y int) tcell.Color {
	cells, width, _ := screen.GetContents()
	fg, _, _ := cells[y*width+x].Style.Decompose()
	return fg
}
