package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"foundermap/internal/directory"
	"foundermap/internal/domain"
)

func newSearchCmd() *cobra.Command {
	var (
		roles      []string
		industries []string
		skills     []string
		stages     []string
		near       string
		distanceKm float64
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search the roster by text and facets",
		Long:  "Text matches name, startup name, city, and country. Values within one facet combine with OR; facets combine with AND.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			q := directory.Query{}
			if len(args) == 1 {
				q.Text = args[0]
			}
			for _, v := range roles {
				q.Facets.Roles = append(q.Facets.Roles, domain.Role(v))
			}
			for _, v := range industries {
				q.Facets.Industries = append(q.Facets.Industries, domain.Industry(v))
			}
			for _, v := range skills {
				q.Facets.Skills = append(q.Facets.Skills, domain.Skill(v))
			}
			for _, v := range stages {
				q.Facets.Stages = append(q.Facets.Stages, domain.Stage(v))
			}

			if distanceKm > 0 {
				if near == "" {
					return fmt.Errorf("--distance requires --near <entry-id>")
				}
				origin, err := store.ByID(near)
				if err != nil {
					return err
				}
				if origin.Location == nil {
					return fmt.Errorf("entry %s has no location", near)
				}
				q.Facets.DistanceKm = distanceKm
				q.Facets.Origin = origin.Location
			}

			rows := entryRows(directory.Filter(store.All(), q))
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			printEntryTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&roles, "role", nil, "Filter by role (repeatable)")
	cmd.Flags().StringSliceVar(&industries, "industry", nil, "Filter by industry (repeatable)")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Filter by skill (repeatable)")
	cmd.Flags().StringSliceVar(&stages, "stage", nil, "Filter by startup stage (repeatable)")
	cmd.Flags().StringVar(&near, "near", "", "Entry id to use as the distance origin")
	cmd.Flags().Float64Var(&distanceKm, "distance", 0, "Include only entries within this many km of --near")

	return cmd
}
