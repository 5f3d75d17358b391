package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "tablekeeper",
		Short: "Menu-driven restaurant table reservation manager",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newUserCmd())
	root.AddCommand(newLogsCmd())

	return root
}

func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
