// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/store"
	"github.com/livegrid/livegrid/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var removeCmd = &cobra.Command{
	Use:     "remove <id|url|query>",
	Aliases: []string{"rm"},
	Short:   "Remove a stream from the grid",
	Args:    cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(store.Open().Entries(), func(e grid.Entry, _ int) string { return e.ID }), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		g := store.Open()
		matches := matchEntries(g.Entries(), args[0])

		var target grid.Entry
		switch len(matches) {
		case 0:
			handleErr(fmt.Errorf("no stream matches %q", args[0]))
		case 1:
			target = matches[0]
		default:
			target = pickEntry(matches)
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) && len(matches) == 1 && target.ID != args[0] {
			var ok bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Remove %s (%s)?", target.ID, target.URL),
				Default: true,
			}, &ok))
			if !ok {
				return
			}
		}

		g.Remove(target.ID)
		cmd.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(target.ID))
	},
}

// matchEntries prefers an exact id or url match and otherwise matches fuzzily against both.
func matchEntries(entries []grid.Entry, q string) []grid.Entry {
	if exact, ok := lo.Find(entries, func(e grid.Entry) bool { return e.ID == q || e.URL == q }); ok {
		return []grid.Entry{exact}
	}

	return lo.Filter(entries, func(e grid.Entry, _ int) bool {
		return fuzzy.MatchFold(q, e.ID) || fuzzy.MatchFold(q, e.URL)
	})
}

func pickEntry(entries []grid.Entry) grid.Entry {
	options := lo.Map(entries, func(e grid.Entry, _ int) string {
		return fmt.Sprintf("%s  %s", e.ID, e.URL)
	})

	var index int
	handleErr(survey.AskOne(&survey.Select{
		Message: "Several streams match, pick one:",
		Options: options,
	}, &index))

	return entries[index]
}
