package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage groups",
		Long:    "List, inspect, create and delete Stackdriver groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsGetCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsDeleteCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			groups, err := client.Groups().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("listing groups: %w", err)
			}

			return renderRecords(groups, "parent_id")
		},
	}
}

func newGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Show a single group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting group: %w", err)
			}

			return renderRecord(group)
		},
	}
}

func newGroupsCreateCommand() *cobra.Command {
	var (
		name     string
		parentID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			payload := stackdriver.Record{"name": name}
			if parentID != "" {
				payload["parent_id"] = parentID
			}

			group, err := client.Groups().Create(context.Background(), payload)
			if err != nil {
				return fmt.Errorf("creating group: %w", err)
			}

			return renderRecord(group)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "group name (required)")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "parent group id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGroupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			deleted, err := client.Groups().Delete(context.Background(), stackdriver.Record{"id": args[0]})
			if err != nil {
				return fmt.Errorf("deleting group: %w", err)
			}

			fmt.Printf("Group %s deleted (deleted_epoch: %d)\n", args[0], deleted.DeletedEpoch())

			return nil
		},
	}
}
