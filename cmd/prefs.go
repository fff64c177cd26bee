package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// prefsCmd groups the preference subcommands
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Read or change server preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one preference, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := client.Preferences(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 1 {
			value, ok := prefs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown preference: %s", args[0])
			}
			fmt.Printf("%s = %v\n", args[0], value)
			return nil
		}

		all := prefs.All()
		keys := make([]string, 0, len(all))
		for key := range all {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Printf("%s = %v\n", key, all[key])
		}
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single preference",
	Long: `Change one server preference. The value is parsed as JSON when
possible (numbers, booleans, strings with quotes) and sent as a plain string
otherwise:

  qbitweb prefs set max_connec 500
  qbitweb prefs set autorun_enabled false
  qbitweb prefs set save_path /mnt/storage`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}

		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would set %s = %v\n", key, value)
			return nil
		}

		prefs, err := client.Preferences(cmd.Context())
		if err != nil {
			return err
		}

		if err := prefs.Set(cmd.Context(), key, value); err != nil {
			return err
		}

		logger.Info().Str("key", key).Interface("value", value).Msg("preference updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}
