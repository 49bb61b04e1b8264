// Command xsss is the CLI front-end for the threshold secret-sharing
// engine in package shamir. It owns everything spec §1 keeps out of the
// core: argument parsing, file/stdin/env ingestion, interactive prompts,
// config-file loading, the serialization codecs, and directory-scan info
// display.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "xsss",
		Short: "Threshold secret sharing over GF(2^8)",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(newSplitCmd())
	root.AddCommand(newRecoverCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newUserCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
