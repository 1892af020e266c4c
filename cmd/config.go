// Package cmd implements the command-line interface for livegrid.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/config"
	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/filesystem"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// secretKeys are never echoed back.
var secretKeys = []string{key.YouTubeAPIKey}

func configFile() string {
	return filepath.Join(where.Config(), constant.Livegrid+".toml")
}

func configKeys() []string {
	names := lo.Keys(config.Default)
	slices.Sort(names)
	return names
}

// lookupField returns the registered field or an error suggesting the closest key.
func lookupField(name string) (config.Field, error) {
	if field, ok := config.Default[name]; ok {
		return field, nil
	}

	closest := lo.MinBy(configKeys(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

// parseValue converts raw command-line values to the type of the field's default.
func parseValue(field config.Field, raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("a value is required")
	}

	switch field.Value.(type) {
	case []string:
		return raw, nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", field.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", field.Key, raw[0])
		}
		return b, nil
	default:
		return strings.Join(raw, " "), nil
	}
}

func display(name string, value any) string {
	if lo.Contains(secretKeys, name) && fmt.Sprint(value) != "" {
		return "(hidden)"
	}
	return fmt.Sprint(value)
}

func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return configKeys(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	configInfoCmd.SetOut(os.Stdout)
	configGetCmd.SetOut(os.Stdout)

	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: fmt.Sprintf(`Inspect and change settings.

Settings live in %s.toml under the config directory (see "livegrid where")
and can be overridden with %s_* environment variables (see "livegrid env").`, constant.Livegrid, strings.ToUpper(constant.Livegrid)),
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key]...",
	Short:             "Describe settings, their current value and default",
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		names := args
		if len(names) == 0 {
			names = configKeys()
		}

		fields := make([]config.Field, 0, len(names))
		for _, name := range names {
			field, err := lookupField(name)
			handleErr(err)
			fields = append(fields, field)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(field.Pretty())
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := lookupField(args[0])
		handleErr(err)

		cmd.Println(display(args[0], viper.Get(args[0])))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Change a setting and save it",
	Example:           "  livegrid config set grid.columns 3\n  livegrid config set player.mpv_flags --volume=50 --ontop",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		value, err := parseValue(field, args[1:])
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(config.Write())

		cmd.Printf("%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(display(field.Key, value)),
		)
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]...",
	Short:             "Restore settings to their defaults",
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(errors.New("pass either keys or --all"))
		}

		names := args
		if all {
			names = configKeys()
		}

		for _, name := range names {
			field, err := lookupField(name)
			handleErr(err)
			viper.Set(field.Key, field.Value)
		}
		handleErr(config.Write())

		cmd.Printf("%s reset %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(strings.Join(names, ", ")),
		)
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf("%s wrote config to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		cmd.Printf("%s deleted config\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
