// Package cli implements the foundermap command-line interface: offline
// inspection and validation of roster fixtures.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		fixturePath string
		output      string
	)

	rootCmd := &cobra.Command{
		Use:           "foundermap",
		Short:         "FounderMap roster tools",
		Long:          "Inspect, search, and validate FounderMap roster fixtures without running the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&fixturePath, "fixture", "", "Path to a roster fixture YAML (default: the embedded demo roster)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text or json")

	rootCmd.AddCommand(newEntriesCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newDistanceCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func getOutputFormat(cmd *cobra.Command) string {
	return stringFlag(cmd.Root().PersistentFlags(), "output")
}

func getFixturePath(cmd *cobra.Command) string {
	return stringFlag(cmd.Root().PersistentFlags(), "fixture")
}

func stringFlag(fs *pflag.FlagSet, name string) string {
	v, _ := fs.GetString(name)
	return v
}
