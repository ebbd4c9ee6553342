package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect users",
		Long:    "List and inspect the users of the Stackdriver account",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			return renderRecords(users, "email")
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			return renderRecord(user)
		},
	}
}
