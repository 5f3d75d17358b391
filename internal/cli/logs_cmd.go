package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tablekeeper/internal/audit"
	"github.com/example/tablekeeper/internal/config"
)

func newLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Print the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lines, err := audit.NewFileSink(cfg.AuditLogPath).Lines()
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(os.Stdout, line)
			}
			return nil
		},
	}
}
