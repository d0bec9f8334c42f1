package cli

import (
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-terminal/internal"
)

// play: run one game, then print the final board.
func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game, click a cell to move and press q to quit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunApp(logger, conf, cmd.OutOrStdout())
		},
	}
}
