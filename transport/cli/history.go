package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-terminal/transport/terminal"
)

var ErrHistoryDisabled = errors.New("history is disabled, set history.enabled in the config")

const timeLayout = "2006-01-02 15:04:05"

// history: list recently finished games, newest first.
func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently finished games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !conf.History.Enabled {
				return ErrHistoryDisabled
			}
			if !cmd.Flags().Changed("limit") {
				limit = conf.History.Limit
			}

			ctx := cmd.Context()

			redisStorage, err := storage.NewRedisStorage(ctx, conf.History.Redis.GetRedisAddr())
			if err != nil {
				return fmt.Errorf("could not connect to redis storage: %w", err)
			}
			defer func() {
				if err = redisStorage.Close(); err != nil {
					logger.Error("could not close redis storage", "error", err)
				}
			}()

			history := usecase.NewHistory(logger, repository.NewResultRepository(redisStorage.Connection))

			results, err := history.Recent(ctx, limit)
			if err != nil {
				return err
			}

			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of results to show (default from config)")
	return cmd
}

func printResults(out io.Writer, results []*entity.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, "no games played yet")
		return err
	}

	for _, result := range results {
		_, err := fmt.Fprintf(out, "%s  %-14s  %d moves  %s\n",
			result.FinishedAt.Local().Format(timeLayout),
			terminal.OutcomeMessage(result.State),
			result.Moves,
			result.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to print result: %w", err)
		}
	}

	return nil
}
