// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/store"
	"github.com/livegrid/livegrid/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(moveCmd)
}

var moveCmd = &cobra.Command{
	Use:     "move <from> <to>",
	Aliases: []string{"mv"},
	Short:   "Move a stream to another position in the grid",
	Long:    "Move a stream to another position in the grid. Positions start at 1, as shown by `livegrid list`.",
	Example: "  livegrid move 4 1",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		g := store.Open()

		from, err := parsePosition(args[0], g.Len())
		handleErr(err)
		to, err := parsePosition(args[1], g.Len())
		handleErr(err)

		id := g.Entries()[from].ID
		g.Reorder(from, to)

		cmd.Printf("%s moved %s to position %d\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(id),
			to+1,
		)
	},
}

// parsePosition turns a 1-based position into an index.
func parsePosition(raw string, length int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", raw)
	}

	if n < 1 || n > length {
		return 0, fmt.Errorf("position %d is out of range, the grid has %d entries", n, length)
	}

	return n - 1, nil
}
