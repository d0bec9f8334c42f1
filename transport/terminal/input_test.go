package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

func click(screen tcell.SimulationScreen, x, y int) {
	screen.InjectMouse(x, y, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func runInput(t *testing.T, handler *InputHandler) (chan struct{}, <-chan error) {
	t.Helper()

	quit := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- handler.Run(quit)
	}()

	return quit, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("input loop did not stop")
		return nil
	}
}

func TestInputHandler_Run(t *testing.T) {
	t.Run("Click inside the board marks the cell", func(t *testing.T) {
		// Given: a session and an input loop on a simulated screen
		screen := newTestScreen(t)
		session := tictactoe.NewSession(newTestLogger(), entity.NewGame())
		handler := NewInputHandler(newTestLogger(), screen, NewLayout(10, 10), session)
		quit, done := runInput(t, handler)

		// When: the player clicks cell (1,2) and quits
		click(screen, 21, 14)
		screen.InjectKey(tcell.KeyRune, QuitKey, tcell.ModNone)

		// Then: the move is applied and quit is signaled
		require.NoError(t, waitDone(t, done))
		assert.Equal(t, entity.PlayerX, session.Snapshot().Board[1][2])
		assert.Equal(t, entity.PlayerO, session.Snapshot().CurrentPlayer)
		assert.True(t, isClosed(quit))
	})

	t.Run("Click outside the board changes nothing", func(t *testing.T) {
		screen := newTestScreen(t)
		session := tictactoe.NewSession(newTestLogger(), entity.NewGame())
		handler := NewInputHandler(newTestLogger(), screen, NewLayout(10, 10), session)
		_, done := runInput(t, handler)

		click(screen, 2, 2)
		click(screen, 25, 10)
		screen.InjectKey(tcell.KeyRune, QuitKey, tcell.ModNone)

		require.NoError(t, waitDone(t, done))
		assert.Equal(t, *entity.NewGame(), session.Snapshot())
	})

	t.Run("Click on a marked cell changes nothing", func(t *testing.T) {
		// Given: X already holds the center
		screen := newTestScreen(t)
		session := tictactoe.NewSession(newTestLogger(), entity.NewGame())
		handler := NewInputHandler(newTestLogger(), screen, NewLayout(10, 10), session)
		_, done := runInput(t, handler)

		// When: the center is clicked twice
		click(screen, 16, 13)
		click(screen, 17, 14)
		screen.InjectKey(tcell.KeyRune, QuitKey, tcell.ModNone)

		// Then: only the first click counts and O is still to move
		require.NoError(t, waitDone(t, done))
		snapshot := session.Snapshot()
		assert.Equal(t, entity.PlayerX, snapshot.Board[1][1])
		assert.Equal(t, 1, snapshot.Board.Moves())
		assert.Equal(t, entity.PlayerO, snapshot.CurrentPlayer)
	})

	t.Run("Dragging does not count as a second press", func(t *testing.T) {
		screen := newTestScreen(t)
		session := tictactoe.NewSession(newTestLogger(), entity.NewGame())
		handler := NewInputHandler(newTestLogger(), screen, NewLayout(10, 10), session)
		_, done := runInput(t, handler)

		screen.InjectMouse(10, 10, tcell.Button1, tcell.ModNone)
		screen.InjectMouse(15, 10, tcell.Button1, tcell.ModNone)
		screen.InjectMouse(15, 10, tcell.ButtonNone, tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, QuitKey, tcell.ModNone)

		require.NoError(t, waitDone(t, done))
		snapshot := session.Snapshot()
		assert.Equal(t, entity.PlayerX, snapshot.Board[0][0])
		assert.Equal(t, entity.EmptyCell, snapshot.Board[0][1])
	})

	t.Run("Other keys and buttons are ignored", func(t *testing.T) {
		screen := newTestScreen(t)
		session := tictactoe.NewSession(newTestLogger(), entity.NewGame())
		handler := NewInputHandler(newTestLogger(), screen, NewLayout(10, 10), session)
		quit, done := runInput(t, handler)

		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		screen.InjectMouse(10, 10, tcell.Button2, tcell.ModNone)
		screen.InjectMouse(10, 10, tcell.ButtonNone, tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, QuitKey, tcell.ModNone)

		require.NoError(t, waitDone(t, done))
		assert.True(t, isClosed(quit))
		assert.Equal(t, *entity.NewGame(), session.Snapshot())
	})

	t.Run("Finalized screen stops the loop without quitting", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		require.NoError(t, screen.Init())
		session := tictactoe.NewSession(newTestLogger(), entity.NewGame())
		handler := NewInputHandler(newTestLogger(), screen, NewLayout(10, 10), session)
		quit, done := runInput(t, handler)

		screen.Fini()

		require.NoError(t, waitDone(t, done))
		assert.False(t, isClosed(quit))
	})
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
