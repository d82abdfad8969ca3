package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"foundermap/internal/geo"
)

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <entry-id> <entry-id>",
		Short: "Great-circle distance between two roster entries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			a, err := store.ByID(args[0])
			if err != nil {
				return err
			}
			b, err := store.ByID(args[1])
			if err != nil {
				return err
			}
			if a.Location == nil || b.Location == nil {
				return fmt.Errorf("both entries need a location")
			}

			km := geo.DistanceKm(
				a.Location.Latitude, a.Location.Longitude,
				b.Location.Latitude, b.Location.Longitude,
			)
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"from": a.ID, "to": b.ID, "km": km,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %.0f km\n", a.Name, b.Name, km)
			return nil
		},
	}
}
