package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/ghostgame/internal/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the match HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				appCfg.HTTPPort = port
			}

			logger := slog.New(slog.NewJSONHandler(cmd.OutOrStdout(), &slog.HandlerOptions{
				Level: appCfg.SlogLevel(),
			}))
			slog.SetDefault(logger)

			app, err := buildApp(cmd.Context(), appCfg, nil, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			router := api.NewRouter(api.RouterConfig{
				Logger:          logger,
				MatchController: app.MatchController,
				Dictionary:      app.DictionaryService,
			})

			serverConfig := api.DefaultServerConfig()
			serverConfig.Port = appCfg.HTTPPort
			server := api.NewServer(router, serverConfig, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx); err != nil {
				logger.Error("server error", slog.String("error", err.Error()))
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (overrides GHOST_HTTP_PORT)")
	return cmd
}
