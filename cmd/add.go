// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"errors"
	"fmt"

	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/log"
	"github.com/livegrid/livegrid/query"
	"github.com/livegrid/livegrid/store"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <url>...",
	Short: "Validate live URLs and append them to the grid",
	Example: `  livegrid add https://www.youtube.com/watch?v=jfKfPfyJRdk
  livegrid add https://www.youtube.com/@lofigirl/live`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		resolver, _, err := newResolver(cmd.Context())
		handleErr(err)
		g := store.Open()

		var failed int
		for _, raw := range args {
			entry, err := addOne(cmd, resolver, g, raw)
			if err != nil {
				if errors.Is(err, youtube.ErrNotLive) || errors.Is(err, youtube.ErrNoLiveVideo) {
					_ = query.Forget(raw)
				}
				failed++
				log.Warnf("add %q: %v", raw, err)
				cmd.PrintErrf("%s %s\n  %s\n", icon.Get(icon.Fail), raw, youtube.Message(err))
				continue
			}

			cmd.Printf("%s added %s %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(entry.ID),
				style.Faint(entry.URL),
			)
		}

		if failed > 0 {
			handleErr(fmt.Errorf("%d of %d URLs were not added", failed, len(args)))
		}
	},
}

func addOne(cmd *cobra.Command, resolver *youtube.Resolver, g *grid.Grid, raw string) (grid.Entry, error) {
	res, err := resolver.Resolve(cmd.Context(), raw)
	if err != nil {
		return grid.Entry{}, err
	}

	entry := grid.Entry{ID: res.ID, URL: res.URL}
	if !g.Insert(entry) {
		return grid.Entry{}, youtube.ErrDuplicate
	}

	if err := query.Remember(res.URL, 1); err != nil {
		log.Warnf("remember url: %v", err)
	}
	return entry, nil
}
