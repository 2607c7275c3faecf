package main

import (
	"fmt"
	"os"

	"github.com/hakim/wlankeys/internal/storage"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past extraction runs for this host",
	Long: `Display a formatted table of past extraction runs recorded in the local
database. Runs are listed newest-first. Each row shows the run ID (truncated),
start time, completion status, and profile counts.

Only run metadata is stored — recovered keys never touch the database.

Use --limit to cap the number of rows shown (default: 10).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		host, _ := cmd.Flags().GetString("host")
		limit, _ := cmd.Flags().GetInt("limit")

		// Step 2: Config check
		if cfg == nil {
			return fmt.Errorf("config not loaded. Run 'wlankeys init' first to create config")
		}

		if host == "" {
			var err error
			host, err = os.Hostname()
			if err != nil {
				host = "unknown"
			}
		}

		// Step 3: Open bbolt store
		store, err := storage.NewStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		// Step 4: List runs (sorted newest-first by store.ListExtractions)
		runs, err := store.ListExtractions(host)
		if err != nil {
			return fmt.Errorf("listing extractions for %s: %w", host, err)
		}

		if len(runs) == 0 {
			fmt.Printf("No extraction history found for %s\n", host)
			return nil
		}

		// Step 5: Apply limit
		if limit > 0 && len(runs) > limit {
			runs = runs[:limit]
		}

		// Step 6: Print formatted table
		const separator = "──────────────────────────────────────────────────────────────────────────"

		fmt.Printf("\nExtraction History for %s\n", host)
		fmt.Println(separator)
		fmt.Printf("  %-3s  %-12s  %-20s  %-10s  %-8s  %-8s  %s\n",
			"#", "Run ID", "Started", "Status", "Profiles", "W/ Pass", "Failed")
		fmt.Println(separator)

		for i, run := range runs {
			id := run.ID
			if len(id) > 12 {
				id = id[:12]
			}
			fmt.Printf("  %-3d  %-12s  %-20s  %-10s  %-8d  %-8d  %d\n",
				i+1,
				id,
				run.StartedAt.Format("2006-01-02 15:04:05"),
				run.Status,
				run.TotalProfiles,
				run.WithPassword,
				run.FailedProfiles)
		}

		fmt.Println(separator)
		return nil
	},
}

func init() {
	historyCmd.Flags().String("host", "", "host to list runs for (default: this host)")
	historyCmd.Flags().Int("limit", 10, "maximum number of runs to show")

	rootCmd.AddCommand(historyCmd)
}
