package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME",
		Short: "Resolve a resource name",
		Long:  "Resolve a resource name (e.g. a hostname) to the matching resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			matches, err := client.Resolve().Resolve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("resolving %q: %w", args[0], err)
			}

			if len(matches) == 0 {
				fmt.Printf("No resources match %q\n", args[0])

				return nil
			}

			return renderRecords(matches, "resource")
		},
	}
}
