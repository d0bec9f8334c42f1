package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type snapshotter interface {
	Snapshot() entity.Game
}

// RenderLoop redraws the game every interval until it reaches a terminal state,
// quit is closed or ctx is canceled. It returns the last evaluated state, which
// is Incomplete unless the game ended.
func RenderLoop(
	ctx context.Context,
	logger *slog.Logger,
	renderer *Renderer,
	session snapshotter,
	interval time.Duration,
	quit <-chan struct{},
) entity.BoardState {
	log := logger.With("component", "render")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			log.Debug("quit received, stopping render loop")
			return entity.Incomplete
		case <-ctx.Done():
			log.Debug("context canceled, stopping render loop", "error", ctx.Err())
			return entity.Incomplete
		case <-ticker.C:
		}

		game := session.Snapshot()
		renderer.Draw(game)

		if state := game.State(); state.IsTerminal() {
			renderer.DrawOutcome(state)
			log.Info("game finished", "status", state.Status, "winner", state.Winner)
			return state
		}
	}
}
