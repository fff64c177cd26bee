package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/qbitweb/qbittorrent"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection status and transfer statistics",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	var (
		appVersion string
		apiVersion string
		info       *qbittorrent.TransferInfo
		torrents   []qbittorrent.Torrent
	)

	// Independent reads, fetched concurrently.
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		var err error
		appVersion, err = client.AppVersion(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		apiVersion, err = client.WebAPIVersion(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		info, err = client.TransferInfo(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		torrents, err = client.Torrents(ctx, qbittorrent.TorrentFilterOptions{})
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to query qBittorrent: %w", err)
	}

	var seeding, downloading int
	for _, t := range torrents {
		if t.IsActivelySeeding() {
			seeding++
		} else if !t.IsComplete() {
			downloading++
		}
	}

	fmt.Printf("Connected to qBittorrent at %s\n\n", cfg.Qbittorrent.URL)
	fmt.Printf("Version:      %s (Web API %s)\n", appVersion, apiVersion)
	fmt.Printf("Connection:   %s\n", info.ConnectionStatus)
	fmt.Printf("DHT nodes:    %d\n", info.DHTNodes)
	fmt.Printf("Download:     %s/s (session total %s)\n", formatBytes(info.DownloadSpeed), formatBytes(info.DownloadData))
	fmt.Printf("Upload:       %s/s (session total %s)\n", formatBytes(info.UploadSpeed), formatBytes(info.UploadData))
	fmt.Printf("Torrents:     %d total, %d seeding, %d downloading\n", len(torrents), seeding, downloading)

	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
