package main

import (
	"context"
	"fmt"

	"github.com/hakim/wlankeys/internal/export"
	"github.com/hakim/wlankeys/internal/models"
	"github.com/hakim/wlankeys/internal/profiles"
	"github.com/hakim/wlankeys/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Extract profiles and write a raw snapshot file",
	Long: `Run a fresh extraction and write the resulting collection to a flat file.

Exports are raw: full, unmasked key values in every format. The same filter
flags as 'extract' narrow the collection first. Without --output a
timestamp-derived filename is created under the configured export directory.

Formats:
  txt   banner, generation timestamp, count, one labeled block per profile
  csv   fixed header row plus one delimited row per profile
  json  object with generation timestamp, count and the ordered profile array

Requires an elevated (administrator) console.

Examples:
  wlankeys export --format json
  wlankeys export --format csv -o profiles.csv
  wlankeys export --has-password --format txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ssid, _ := cmd.Flags().GetString("ssid")
		hasPassword, _ := cmd.Flags().GetBool("has-password")
		noPassword, _ := cmd.Flags().GetBool("no-password")
		output, _ := cmd.Flags().GetString("output")
		formatFlag, _ := cmd.Flags().GetString("format")
		noColor, _ := cmd.Flags().GetBool("no-color")

		setupColor(noColor)

		if cfg == nil {
			return fmt.Errorf("config not loaded. Run 'wlankeys init' first to create config")
		}

		opts, err := filterOptionsFromFlags(hasPassword, noPassword, ssid)
		if err != nil {
			return err
		}

		format, err := models.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		fmt.Printf("[*] Extracting wireless profiles...\n")

		result, meta, err := runExtraction(context.Background(), cfg)
		if err != nil {
			return err
		}

		filtered := profiles.Filter(result.Profiles, opts)

		path := output
		if path == "" {
			if err := storage.EnsureDir(cfg.ExportDir); err != nil {
				return fmt.Errorf("creating export directory: %w", err)
			}
			path = storage.ExportFilePath(cfg.ExportDir, format, meta.StartedAt)
		}

		if err := export.WriteFile(path, filtered, format); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("%s Exported %d of %d profiles to %s\n",
			markOK("[+]"), len(filtered), len(result.Profiles), path)

		return nil
	},
}

func init() {
	exportCmd.Flags().String("ssid", "", "filter by SSID substring (case-insensitive)")
	exportCmd.Flags().Bool("has-password", false, "only profiles with a recovered key")
	exportCmd.Flags().Bool("no-password", false, "only profiles without a recovered key")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: timestamped name in export_dir)")
	exportCmd.Flags().StringP("format", "f", "txt", "export format: txt, csv, json")
	exportCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(exportCmd)
}
