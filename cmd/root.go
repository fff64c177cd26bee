package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/qbitweb/config"
	"github.com/s0up4200/qbitweb/qbittorrent"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *qbittorrent.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	dryRun     bool
	noConfirm  bool
	allTargets bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qbitweb",
	Short: "Manage a qBittorrent instance from the command line",
	Long: `qbitweb is a CLI for the qBittorrent Web API. It can list, pause,
resume, recheck, add and delete torrents, inspect transfer statistics and
read or change server preferences, with expression-based filtering over the
torrent list.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
}

// initializeApp initializes the configuration and the qBittorrent client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	opts := []qbittorrent.Option{
		qbittorrent.WithTimeout(time.Duration(cfg.Qbittorrent.TimeoutSecs) * time.Second),
		qbittorrent.WithMaxAttempts(cfg.Qbittorrent.MaxAttempts),
		qbittorrent.WithUserAgent("qbitweb/" + version),
	}
	if cfg.Qbittorrent.SkipTLSVerify {
		opts = append(opts, qbittorrent.WithInsecureSkipVerify())
	}

	// Create qBittorrent client; construction performs the login
	client, err = qbittorrent.NewClient(cmd.Context(), cfg.Qbittorrent.URL,
		cfg.Qbittorrent.Username, cfg.Qbittorrent.Password, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create qBittorrent client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when writing to a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
