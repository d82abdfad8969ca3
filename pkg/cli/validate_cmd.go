package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundermap/internal/roster"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <fixture.yaml>",
		Short: "Validate a roster fixture offline",
		Long:  "Parses a roster fixture YAML and checks every entry without starting the server.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0]) //nolint:gosec // path comes from the user's own argument
			if err != nil {
				return fmt.Errorf("read fixture: %w", err)
			}

			entries, err := roster.ParseFixture(data)
			if err != nil {
				if getOutputFormat(cmd) == "json" {
					return printJSON(cmd.OutOrStdout(), map[string]any{
						"valid": false,
						"error": err.Error(),
					})
				}
				return err
			}

			located := 0
			for i := range entries {
				if entries[i].HasLocation() {
					located++
				}
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"valid":   true,
					"entries": len(entries),
					"located": located,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fixture is valid: %d entries, %d with a location.\n", len(entries), located)
			return nil
		},
	}
	return cmd
}
