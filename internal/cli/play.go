package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/ghostgame/internal/console"
)

func newPlayCmd() *cobra.Command {
	var (
		strategy string
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Ghost against the computer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Logs go to stderr and stay quiet unless verbose, so they
			// don't interleave with the prompt
			level := slog.LevelWarn
			if cfg.Verbose {
				level = appCfg.SlogLevel()
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			var seedPtr *uint64
			if cmd.Flags().Changed("seed") {
				seedPtr = &seed
			}

			app, err := buildApp(cmd.Context(), appCfg, seedPtr, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			shell := console.New(app.MatchController, strategy, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
			return shell.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Computer strategy: ghost, random")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed the computer's choices for a reproducible match")
	return cmd
}
