package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/qbitweb/qbittorrent"
)

var deleteFiles bool

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause [hash...]",
	Short: "Pause torrents by hash, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args)
		if err != nil {
			return err
		}
		if cfg.Safety.DryRun {
			fmt.Println("[DRY RUN] Would pause the selected torrents")
			return nil
		}
		return client.Pause(cmd.Context(), target)
	},
}

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume [hash...]",
	Short: "Resume torrents by hash, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args)
		if err != nil {
			return err
		}
		if cfg.Safety.DryRun {
			fmt.Println("[DRY RUN] Would resume the selected torrents")
			return nil
		}
		return client.Resume(cmd.Context(), target)
	},
}

// recheckCmd represents the recheck command
var recheckCmd = &cobra.Command{
	Use:   "recheck [hash...]",
	Short: "Recheck torrents by hash, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args)
		if err != nil {
			return err
		}
		if cfg.Safety.DryRun {
			fmt.Println("[DRY RUN] Would recheck the selected torrents")
			return nil
		}
		return client.Recheck(cmd.Context(), target)
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [hash...]",
	Short: "Delete torrents by hash, or all of them",
	Long: `Delete torrents from qBittorrent. By default only the torrent entry is
removed; pass --delete-files to remove the downloaded data as well.`,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(recheckCmd)
	rootCmd.AddCommand(deleteCmd)

	for _, cmd := range []*cobra.Command{pauseCmd, resumeCmd, recheckCmd, deleteCmd} {
		cmd.Flags().BoolVar(&allTargets, "all", false, "apply to all torrents")
	}

	deleteCmd.Flags().BoolVar(&deleteFiles, "delete-files", false, "also delete downloaded data from disk")
	deleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Println("[DRY RUN] Would delete the selected torrents")
		if deleteFiles {
			fmt.Println("[DRY RUN] Downloaded data would be removed from disk")
		}
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		what := fmt.Sprintf("%d torrent(s)", len(args))
		if target.IsAll() {
			what = "ALL torrents"
		}
		fmt.Printf("About to delete %s", what)
		if deleteFiles {
			fmt.Printf(" including downloaded data")
		}
		fmt.Printf(". Continue? [y/N]: ")

		var response string
		fmt.Scanln(&response)
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	return client.Delete(cmd.Context(), target, deleteFiles)
}

// resolveTarget builds the torrent target from positional hashes or --all.
func resolveTarget(args []string) (qbittorrent.Hashes, error) {
	if allTargets {
		return qbittorrent.AllTorrents(), nil
	}
	if len(args) == 0 {
		return qbittorrent.Hashes{}, fmt.Errorf("no torrents selected: pass hashes or --all")
	}
	return qbittorrent.HashList(args...), nil
}
