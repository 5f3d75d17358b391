package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tablekeeper/internal/config"
	"github.com/example/tablekeeper/internal/credstore"
	"github.com/example/tablekeeper/internal/domain/user"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserAddCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var role, username, password string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a receptionist or customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := user.Role(role)
			if !r.Valid() || r == user.RoleAdmin {
				return fmt.Errorf("role must be %q or %q", user.RoleReceptionist, user.RoleCustomer)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := credstore.Open(cfg.AccountDB)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Create(cmd.Context(), r, username, password); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created %s %q\n", strings.ToLower(role), username)
			return nil
		},
	}

	c.Flags().StringVar(&role, "role", "", "account role (Receptionist or Customer)")
	c.Flags().StringVar(&username, "username", "", "username")
	c.Flags().StringVar(&password, "password", "", "password")
	_ = c.MarkFlagRequired("role")
	_ = c.MarkFlagRequired("username")
	_ = c.MarkFlagRequired("password")
	return c
}
