// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/livegrid/livegrid/auth"
	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/log"
	"github.com/livegrid/livegrid/player"
	"github.com/livegrid/livegrid/store"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/tui"
	"github.com/livegrid/livegrid/youtube"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("player", "p", "", "Player backing each tile (mpv, none)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Backends, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.Flags().Lookup("player")))

	rootCmd.Flags().IntP("columns", "c", 0, "Number of tile columns")
	lo.Must0(viper.BindPFlag(key.GridColumns, rootCmd.Flags().Lookup("columns")))

	rootCmd.Flags().BoolP("grid", "g", false, "Focus the grid instead of the URL input on start")
}

var rootCmd = &cobra.Command{
	Use:   constant.Livegrid,
	Short: "Watch several YouTube live streams side by side",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Watch several YouTube live streams side by side"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		backend := viper.GetString(key.Player)
		factory, err := player.NewFactory(backend)
		handleErr(err)

		if backend != player.BackendNone {
			CheckDependencies()
		}

		resolver, api, err := newResolver(cmd.Context())
		handleErr(err)
		handleErr(tui.Run(&tui.Options{
			Grid:        store.Open(),
			Resolver:    resolver,
			API:         api,
			Factory:     factory,
			StartInGrid: lo.Must(cmd.Flags().GetBool("grid")),
		}))
	},
}

// newDataAPI is swapped in tests.
var newDataAPI = func(ctx context.Context, apiKey string) (youtube.API, error) {
	return youtube.NewDataAPI(ctx, apiKey)
}

// newResolver builds the resolver from the configured credential. The returned API is nil without one.
// A configured key whose client can't be built is an error: falling back to no key would accept every video.
func newResolver(ctx context.Context) (*youtube.Resolver, youtube.API, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	apiKey := auth.APIKey()
	if apiKey == "" {
		log.Info("no YouTube API key configured, liveness checks disabled")
		return youtube.NewResolver(nil), nil, nil
	}

	api, err := newDataAPI(ctx, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("youtube client: %w", err)
	}
	return youtube.NewResolver(api), api, nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(youtube.Message(err), " \n"))
		os.Exit(1)
	}
}
