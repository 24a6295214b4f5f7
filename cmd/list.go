// File: cmd/list.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartlink-labs/tourguide/internal/tour/scripts"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shipped walkthroughs and their trigger values.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Actions are never invoked here, so no synthesizer is needed.
		registry := scripts.DefaultRegistry(nil)
		for _, w := range registry.Walkthroughs() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-32s %d steps\n", w.Key, w.Name, len(w.Steps))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
