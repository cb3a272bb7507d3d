package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/config"
)

var (
	cfgPath   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "landmark-editor",
	Short: "Edit and render 68-point facial landmark annotations",
	Long: `Landmark Editor opens an image together with its <base>_ldmks.txt file,
draws the landmarks and their connecting lines, and lets you drag single
points or whole facial features into place.

The batch commands work on a directory without opening a window.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "Path to the JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log format: json or text")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// setup loads the config and builds the logger shared by every command. A
// broken config file is reported and replaced by defaults.
func setup() (*config.Config, *slog.Logger, error) {
	logger, err := NewLogger(logLevel, logFormat, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
	}
	if cfg.Debug && logLevel == "info" {
		logger, _ = NewLogger("debug", logFormat, os.Stderr)
	}
	return cfg, logger, nil
}
