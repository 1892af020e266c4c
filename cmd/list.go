// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/store"
	"github.com/livegrid/livegrid/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	listCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")
	listCmd.MarkFlagsMutuallyExclusive("json", "schema")

	listCmd.SetOut(os.Stdout)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the streams in the grid",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(jsonschema.Reflect([]grid.Entry{})))
			return
		}

		g := store.Open()
		entries := g.Entries()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("The grid is empty. Add a stream with `livegrid add <url>`."))
			return
		}

		active := g.Active().OrEmpty()
		for i, e := range entries {
			marker := " "
			if e.ID == active {
				marker = style.Fg(color.Green)(icon.Get(icon.Active))
			}

			cmd.Printf("%s %s %s %s\n",
				marker,
				style.Faint(fmt.Sprintf("%2d.", i+1)),
				style.Fg(color.Purple)(e.ID),
				e.URL,
			)
		}
	},
}
