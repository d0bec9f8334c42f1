package tictactoe

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// Session is the game shared by the input and render loops. Every read and
// mutation goes through its lock.
type Session struct {
	logger *slog.Logger

	mu   sync.Mutex
	game *entity.Game
}

func NewSession(logger *slog.Logger, game *entity.Game) *Session {
	return &Session{
		logger: logger.With("component", "session"),
		game:   game,
	}
}

// MakeTurn applies a move for the player whose turn it is.
func (that *Session) MakeTurn(row, col int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.game.CurrentPlayer
	if err := that.game.MakeTurn(row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.logger.Debug("move accepted", "player", player, "row", row, "col", col)

	return nil
}

// Snapshot returns a copy of the game taken under the lock.
func (that *Session) Snapshot() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.game
}

func (that *Session) State() entity.BoardState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.State()
}
