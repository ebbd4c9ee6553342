package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// NewInstancesCommand creates the instances command group.
func NewInstancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instances",
		Aliases: []string{"instance"},
		Short:   "Inspect monitored instances",
	}

	cmd.AddCommand(newInstancesListCommand())
	cmd.AddCommand(newInstancesGetCommand())

	return cmd
}

func newInstancesListCommand() *cobra.Command {
	var cluster string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List monitored instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := stackdriver.NewQueryParams()
			if cluster != "" {
				params.WithFilter("cluster", cluster)
			}

			instances, err := client.Instances().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing instances: %w", err)
			}

			return renderRecords(instances, "state")
		},
	}

	cmd.Flags().StringVar(&cluster, "cluster", "", "filter by cluster name")

	return cmd
}

func newInstancesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INSTANCE_ID",
		Short: "Show a single instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			instance, err := client.Instances().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting instance: %w", err)
			}

			return renderRecord(instance)
		},
	}
}
