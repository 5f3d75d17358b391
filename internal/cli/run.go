package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tablekeeper/internal/audit"
	"github.com/example/tablekeeper/internal/config"
	"github.com/example/tablekeeper/internal/credstore"
	"github.com/example/tablekeeper/internal/domain/reservation"
	"github.com/example/tablekeeper/internal/logging"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start an interactive reservation session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

			clk, err := cfg.Clock()
			if err != nil {
				return err
			}

			store, err := credstore.Open(cfg.AccountDB)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if err := store.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
				return err
			}

			sink := audit.NewFileSink(cfg.AuditLogPath)
			engine := reservation.NewEngine(cfg.TableCount, clk, sink)

			logger.Debug("session starting", "tables", cfg.TableCount, "today", clk.Today)
			sess := NewSession(os.Stdin, os.Stdout, engine, store, sink, clk, logger)
			return sess.Run(ctx)
		},
	}
}
