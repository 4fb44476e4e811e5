// Command modec inspects semi-structured documents from the command line:
// it resolves dot-separated key paths against JSON/YAML/TOML files and
// converts between the supported wire formats.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "modec",
		Short:         "Inspect and convert key-value documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("format", "", "input format: json, yaml, or toml (default: by file extension)")
	root.AddCommand(newGetCommand(), newConvertCommand())
	return root
}
