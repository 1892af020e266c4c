// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/livegrid/livegrid/auth"
	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authDeleteCmd, authStatusCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the YouTube Data API key",
	Long: `Manage the YouTube Data API key stored in the system keyring.

Without a key every video is accepted without a liveness check and
channel /live URLs cannot be resolved.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set [api-key]",
	Short: "Store an API key in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string
		if len(args) == 1 {
			apiKey = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{
				Message: "YouTube Data API key:",
			}, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetAPIKey(apiKey))
		cmd.Printf("%s API key saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "logout"},
	Short:   "Remove the stored API key",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		cmd.Printf("%s API key removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the API key comes from",
	Run: func(cmd *cobra.Command, args []string) {
		if strings.TrimSpace(viper.GetString(key.YouTubeAPIKey)) != "" {
			cmd.Printf("%s using key from config %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(key.YouTubeAPIKey),
			)
			return
		}

		stored, err := auth.StoredAPIKey()
		switch {
		case err == nil && stored != "":
			cmd.Printf("%s using key from system keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		case err == nil || errors.Is(err, auth.ErrNoKey):
			cmd.Printf("%s no API key configured, liveness checks are disabled\n", style.Fg(color.Yellow)(icon.Get(icon.Fail)))
		default:
			handleErr(err)
		}
	},
}
