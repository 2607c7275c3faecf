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

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Enumerate saved wireless profiles and recover their keys",
	Long: `Run a full extraction: list every saved wireless profile, query each one
with its stored key revealed, and print the results as a table.

Keys are masked in the table by default — pass --show-keys to reveal them.
The collection can be narrowed with --ssid (case-insensitive substring) and
--has-password / --no-password before display and export.

Each run is recorded in the local database (metadata only, never keys) so
'wlankeys history' can show past extractions.

Requires an elevated (administrator) console.

Examples:
  wlankeys extract
  wlankeys extract --show-keys
  wlankeys extract --ssid home --has-password
  wlankeys extract --output keys.json --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// ── 1. Read all flags ──────────────────────────────────────────────────
		ssid, _ := cmd.Flags().GetString("ssid")
		hasPassword, _ := cmd.Flags().GetBool("has-password")
		noPassword, _ := cmd.Flags().GetBool("no-password")
		showKeys, _ := cmd.Flags().GetBool("show-keys")
		output, _ := cmd.Flags().GetString("output")
		formatFlag, _ := cmd.Flags().GetString("format")
		noColor, _ := cmd.Flags().GetBool("no-color")

		setupColor(noColor)

		// ── 2. Config check ────────────────────────────────────────────────────
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

		// ── 3. Run the extraction ──────────────────────────────────────────────
		fmt.Printf("[*] Extracting wireless profiles...\n")

		result, meta, err := runExtraction(context.Background(), cfg)
		if err != nil {
			return err
		}

		fmt.Printf("%s Extraction %s complete: %d profiles, %d failed queries\n",
			markOK("[+]"), meta.ID[:8], meta.TotalProfiles, result.Failed)

		// ── 4. Filter and display ──────────────────────────────────────────────
		filtered := profiles.Filter(result.Profiles, opts)

		if len(filtered) == 0 {
			fmt.Println("No profiles match the given filters.")
		} else {
			fmt.Println()
			printProfileTable(filtered, showKeys)
		}

		stats := profiles.Compute(result.Profiles)
		fmt.Printf("\nTotal: %d | Filtered: %d | With password: %d | Without password: %d\n",
			stats.Total, len(filtered), stats.WithPassword, stats.WithoutPassword)

		// ── 5. Optional export (raw, unmasked) ─────────────────────────────────
		if output != "" || cmd.Flags().Changed("format") {
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
			fmt.Printf("%s Exported %d profiles to %s\n", markOK("[+]"), len(filtered), path)
		}

		return nil
	},
}

func init() {
	extractCmd.Flags().String("ssid", "", "filter by SSID substring (case-insensitive)")
	extractCmd.Flags().Bool("has-password", false, "only profiles with a recovered key")
	extractCmd.Flags().Bool("no-password", false, "only profiles without a recovered key")
	extractCmd.Flags().Bool("show-keys", false, "print keys unmasked")
	extractCmd.Flags().StringP("output", "o", "", "export the filtered profiles to this file")
	extractCmd.Flags().StringP("format", "f", "txt", "export format: txt, csv, json")
	extractCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(extractCmd)
}
