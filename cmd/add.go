package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/s0up4200/qbitweb/qbittorrent"
)

var (
	addSavePath string
	addCategory string
	addPaused   bool
	addFiles    []string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [url...]",
	Short: "Add torrents from magnet links, URLs or .torrent files",
	Long: `Add torrents to qBittorrent. Positional arguments are magnet links or
HTTP(S) URLs; --file uploads local .torrent files instead. Both may be
combined in one invocation.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addSavePath, "save-path", "", "download directory")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category to assign")
	addCmd.Flags().BoolVar(&addPaused, "paused", false, "add in paused state")
	addCmd.Flags().StringSliceVar(&addFiles, "file", nil, "local .torrent file to upload (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(addFiles) == 0 {
		return fmt.Errorf("nothing to add: pass links or --file")
	}

	opts := &qbittorrent.AddTorrentOptions{
		SavePath: addSavePath,
		Category: addCategory,
		Paused:   addPaused,
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would add %d link(s) and %d file(s)\n", len(args), len(addFiles))
		return nil
	}

	if len(args) > 0 {
		if err := client.AddTorrentURLs(cmd.Context(), args, opts); err != nil {
			return fmt.Errorf("failed to add links: %w", err)
		}
		logger.Info().Int("count", len(args)).Msg("added torrents from links")
	}

	if len(addFiles) > 0 {
		files := make(map[string][]byte, len(addFiles))
		for _, path := range addFiles {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			files[filepath.Base(path)] = data
		}

		if err := client.AddTorrentFiles(cmd.Context(), files, opts); err != nil {
			return fmt.Errorf("failed to upload torrent files: %w", err)
		}
		logger.Info().Int("count", len(files)).Msg("uploaded torrent files")
	}

	return nil
}
