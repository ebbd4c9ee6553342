package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAlertPoliciesCommand creates the alert-policies command group.
func NewAlertPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alert-policies",
		Aliases: []string{"alert-policy", "policies"},
		Short:   "Inspect alert policies",
	}

	cmd.AddCommand(newAlertPoliciesListCommand())
	cmd.AddCommand(newAlertPoliciesGetCommand())

	return cmd
}

func newAlertPoliciesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List alert policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			policies, err := client.AlertPolicies().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("listing alert policies: %w", err)
			}

			return renderRecords(policies, "condition")
		},
	}
}

func newAlertPoliciesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POLICY_ID",
		Short: "Show a single alert policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			policy, err := client.AlertPolicies().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting alert policy: %w", err)
			}

			return renderRecord(policy)
		},
	}
}
