// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")

	resolveCmd.SetOut(os.Stdout)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Check a URL without adding it to the grid",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolver, _, err := newResolver(cmd.Context())
		handleErr(err)

		res, err := resolver.Resolve(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(res))
			return
		}

		via := "video"
		if res.ViaChannel {
			via = "channel"
		}

		cmd.Printf("%s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(res.ID), style.Faint("via "+via))
		cmd.Println(res.URL)

		if !resolver.HasCredential() {
			cmd.Println(style.Fg(color.Yellow)("No YouTube API key configured, liveness was not checked."))
		}
	},
}
