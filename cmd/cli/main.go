// Command cli is the FounderMap roster tool.
package main

import (
	"os"

	"foundermap/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
