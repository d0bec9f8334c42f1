package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished")

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int) ([]*entity.Result, error)
}

// History records finished games and lists past ones.
type History struct {
	logger     *slog.Logger
	resultRepo resultRepo

	now func() time.Time
}

func NewHistory(logger *slog.Logger, resultRepo resultRepo) *History {
	return &History{
		logger:     logger,
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

// Record stores the outcome of a finished game.
func (that *History) Record(ctx context.Context, game entity.Game, startedAt time.Time) (*entity.Result, error) {
	log := that.logger.With("method", "Record")

	state := game.State()
	if !state.IsTerminal() {
		return nil, ErrGameNotFinished
	}

	result := &entity.Result{
		ID:         uuid.NewString(),
		State:      state,
		Board:      game.Board,
		Moves:      game.Board.Moves(),
		StartedAt:  startedAt.UTC(),
		FinishedAt: that.now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	log.Info("result recorded", "id", result.ID, "status", state.Status, "winner", state.Winner)

	return result, nil
}

// Recent returns up to limit results, newest first.
func (that *History) Recent(ctx context.Context, limit int) ([]*entity.Result, error) {
	results, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}
