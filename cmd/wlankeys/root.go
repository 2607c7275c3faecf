package main

import (
	"fmt"
	"os"

	"github.com/hakim/wlankeys/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

const defaultConfigFile = "wlankeys.yaml"

var rootCmd = &cobra.Command{
	Use:   "wlankeys",
	Short: "Saved wireless profile and key extractor for Windows",
	Long: `wlankeys enumerates the wireless network profiles saved on a Windows host
and recovers each profile's security parameters — authentication, cipher and
the stored key — by driving the built-in netsh tool.

Results can be filtered by SSID or password presence, printed as a table with
keys masked, and exported raw to plain text, CSV or JSON snapshots. Run
metadata is kept in a local database so past extractions stay visible.

Reading stored keys requires an elevated (administrator) console.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		skipConfig := map[string]bool{
			"check":   true,
			"init":    true,
			"help":    true,
			"version": true,
		}

		if skipConfig[cmd.Name()] {
			return nil
		}

		// A missing default config file falls back to built-in
		// defaults; an explicit --config that can't be read is an error.
		if cfgFile == defaultConfigFile {
			if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
				cfg = config.DefaultConfig()
				return nil
			}
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	// Version flag
	rootCmd.Version = "0.1.0-dev"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
