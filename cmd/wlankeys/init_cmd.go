package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakim/wlankeys/internal/config"
	"github.com/hakim/wlankeys/internal/storage"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wlankeys with default configuration",
	Long: `Creates a default configuration file (wlankeys.yaml), the export directory,
and the database for storing extraction run metadata.

This is typically the first command you run when setting up wlankeys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := defaultConfigFile
		if initDir != "." {
			configPath = filepath.Join(initDir, defaultConfigFile)
		}

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s. Use --force to overwrite", configPath)
		}

		// Create default config
		if err := config.WriteDefault(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		fmt.Printf("Created %s with default configuration\n", configPath)

		// Load the config we just created to get paths
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Create export directory
		if err := storage.EnsureDir(cfg.ExportDir); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
		fmt.Printf("Created export directory: %s\n", cfg.ExportDir)

		// Initialize database
		store, err := storage.NewStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer store.Close()
		fmt.Printf("Initialized database: %s\n", cfg.DBPath)

		// Print success message
		fmt.Println()
		fmt.Println("wlankeys initialized successfully!")
		fmt.Println("Run 'wlankeys check' to verify the tool and your elevation status.")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "output directory")
	rootCmd.AddCommand(initCmd)
}
