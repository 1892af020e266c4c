// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"os"
	"strings"

	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/config"
	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := slices.Clone(config.EnvExposed)
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)
		for _, name := range names {
			env := name
			if name != where.EnvConfigPath {
				env = strings.ToUpper(constant.Livegrid + "_" + config.EnvKeyReplacer.Replace(name))
			}
			value := os.Getenv(env)
			if name == key.YouTubeAPIKey && value != "" {
				value = "(hidden)"
			}
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
