package cli

import (
	"github.com/spf13/cobra"
)

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List roster entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			rows := entryRows(store.All())
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			printEntryTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}
	return cmd
}
