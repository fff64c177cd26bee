package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/qbitweb/filter"
	"github.com/s0up4200/qbitweb/qbittorrent"
)

var (
	listCategory string
	listState    string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List torrents, optionally matching a filter expression",
	Long: `List torrents known to qBittorrent. Server-side filters (state,
category) narrow the listing cheaply; a --filter expression is evaluated
locally against each torrent, e.g.:

  qbitweb list --filter 'Ratio > 2.0 and Seeding'
  qbitweb list --filter 'daysSince(AddedOn) > 90 and hasTag("public")'`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().StringVar(&listCategory, "category", "", "only torrents in this category")
	listCmd.Flags().StringVar(&listState, "state", "", "server-side state filter (downloading, seeding, paused, ...)")
}

func runList(cmd *cobra.Command, args []string) error {
	torrents, err := selectTorrents(cmd)
	if err != nil {
		return err
	}

	if len(torrents) == 0 {
		fmt.Println("No torrents found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d torrents:\n", len(torrents))
	fmt.Println(strings.Repeat("-", 80))

	for _, t := range torrents {
		fmt.Printf("• %s\n", t.Name)
		fmt.Printf("  Hash: %s  State: %s  Progress: %.1f%%  Ratio: %.2f\n",
			t.Hash, t.State, t.Progress*100, t.Ratio)
		if t.Category != "" {
			fmt.Printf("  Category: %s\n", t.Category)
		}
		if t.AddedOn > 0 {
			fmt.Printf("  Added: %s\n", time.Unix(t.AddedOn, 0).Format("2006-01-02"))
		}
	}

	return nil
}

// selectTorrents fetches the torrent list and applies the local filter
// expression, when one is configured.
func selectTorrents(cmd *cobra.Command) ([]qbittorrent.Torrent, error) {
	expr, err := getFilterExpression()
	if err != nil {
		return nil, err
	}

	torrents, err := client.Torrents(cmd.Context(), qbittorrent.TorrentFilterOptions{
		Filter:   listState,
		Category: listCategory,
	})
	if err != nil {
		return nil, err
	}

	if expr == "" {
		return torrents, nil
	}

	logger.Debug().Str("filter", expr).Msg("applying filter expression")

	compiled, err := filter.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matched := torrents[:0]
	for _, t := range torrents {
		if compiled.Match(t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
