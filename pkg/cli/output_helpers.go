package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"foundermap/internal/domain"
	"foundermap/internal/roster"
)

// loadStore loads the roster from --fixture, or the embedded demo roster
// when the flag is unset.
func loadStore(cmd *cobra.Command) (*roster.Store, error) {
	fixture := roster.DefaultFixture()
	if path := getFixturePath(cmd); path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
		fixture = data
	}
	return roster.Load(fixture)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// entryRow is the JSON/text projection of one roster entry.
type entryRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Startup  string `json:"startup,omitempty"`
	Location string `json:"location,omitempty"`
}

func entryRows(entries []domain.DirectoryEntry) []entryRow {
	rows := make([]entryRow, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, entryRow{
			ID:       e.ID,
			Name:     e.Name,
			Role:     string(e.Role),
			Startup:  e.StartupName(),
			Location: e.Location.Label(),
		})
	}
	return rows
}

func printEntryTable(w io.Writer, rows []entryRow) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tSTARTUP\tLOCATION")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Role, orDash(r.Startup), orDash(r.Location))
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
