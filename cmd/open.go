// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"fmt"

	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/open"
	"github.com/livegrid/livegrid/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <id|url|query>",
	Short: "Open a stream from the grid in the browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matches := matchEntries(store.Open().Entries(), args[0])

		var target grid.Entry
		switch len(matches) {
		case 0:
			handleErr(fmt.Errorf("no stream matches %q", args[0]))
		case 1:
			target = matches[0]
		default:
			target = pickEntry(matches)
		}

		handleErr(open.Run(target.URL))
	},
}
