package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-terminal/transport/terminal"
)

// RunApp - runs one game in the terminal and prints the outcome to out.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var history *usecase.History
	if conf.History.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.History.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		history = usecase.NewHistory(logger, repository.NewResultRepository(redisStorage.Connection))
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	startedAt := time.Now()
	game, state, err := Play(ctx, logger, conf, screen)

	// releases the terminal and unblocks the input loop
	screen.Fini()

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	if err = terminal.PrintSummary(out, game.Board, state); err != nil {
		return err
	}

	if history != nil && state.IsTerminal() {
		if _, err = history.Record(ctx, game, startedAt); err != nil {
			log.Error("could not record result", "error", err)
		}
	}

	return nil
}

// Play runs the input and render loops against a new game on screen until the
// game ends, the quit key is pressed or ctx is canceled. It returns the final
// game and its state. The caller owns the screen and must finalize it.
func Play(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	screen tcell.Screen,
) (entity.Game, entity.BoardState, error) {
	log := logger.With("component", "play")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	layout := terminal.NewLayout(conf.Board.X, conf.Board.Y)
	session := tictactoe.NewSession(logger, entity.NewGame())
	input := terminal.NewInputHandler(logger, screen, layout, session)
	renderer := terminal.NewRenderer(screen, layout)

	quit := make(chan struct{})

	inputErrCh := make(chan error, 1)
	go func() {
		inputErrCh <- input.Run(quit)
	}()

	stateCh := make(chan entity.BoardState, 1)
	go func() {
		stateCh <- terminal.RenderLoop(ctx, logger, renderer, session, conf.RenderInterval, quit)
	}()

	log.Info("game started")

	select {
	case state := <-stateCh:
		return session.Snapshot(), state, nil
	case err := <-inputErrCh:
		if err != nil {
			return session.Snapshot(), entity.Incomplete, fmt.Errorf("input loop failed: %w", err)
		}

		// the input loop stopped on quit or because the screen was finalized
		cancel()
		state := <-stateCh
		return session.Snapshot(), state, nil
	}
}
