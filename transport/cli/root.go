package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
)

const defaultConfigPath = "config.yml"

var (
	configPath string
	conf       *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
)

// Execute runs the tictactoe command line.
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and closes the log file whether or not the command failed.
func execute(root *cobra.Command) error {
	err := root.Execute()

	if logCloser != nil {
		if closeErr := logCloser.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", closeErr)
		}
		logCloser = nil
	}

	return err
}

func newRootCmd() *cobra.Command {
	play := playCmd()

	root := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Two player tic-tac-toe in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if conf, err = config.Load(configPath); err != nil {
				return err
			}

			logger, logCloser, err = newLogger(conf)
			return err
		},
		RunE: play.RunE,
	}

	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")

	root.AddCommand(play, historyCmd())
	return root
}

// newLogger writes JSON logs to the configured log file, since stdout belongs
// to the game screen.
func newLogger(conf *config.Config) (*slog.Logger, io.Closer, error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file, nil
}
