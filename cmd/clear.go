// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/util"
	"github.com/livegrid/livegrid/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
	// confirm asks before clearing user data that cannot be rebuilt.
	confirm bool
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache, false},
	{"url suggestions", "urls", mo.Some("u"), where.URLs, false},
	{"channel handles", "channels", mo.None[string](), where.Channels, false},
	{"saved grid", "grid", mo.Some("g"), where.Grid, true},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.confirm {
			help += " (asks for confirmation)"
		}
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			anyCleared = true
			if target.confirm && !doClear("yes") {
				var ok bool
				handleErr(survey.AskOne(&survey.Confirm{
					Message: fmt.Sprintf("Clear the %s? This cannot be undone.", target.name),
				}, &ok))
				if !ok {
					continue
				}
			}

			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
			err := util.Delete(target.location())
			e()
			if !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
