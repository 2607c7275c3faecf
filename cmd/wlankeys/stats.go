package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/hakim/wlankeys/internal/profiles"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the saved profiles",
	Long: `Run a fresh extraction and print summary statistics: total profile count,
how many carry a recovered key, and a histogram of authentication types.

Requires an elevated (administrator) console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		setupColor(noColor)

		if cfg == nil {
			return fmt.Errorf("config not loaded. Run 'wlankeys init' first to create config")
		}

		fmt.Printf("[*] Extracting wireless profiles...\n")

		result, _, err := runExtraction(context.Background(), cfg)
		if err != nil {
			return err
		}

		stats := profiles.Compute(result.Profiles)

		fmt.Println()
		fmt.Printf("Total profiles:    %d\n", stats.Total)
		fmt.Printf("With password:     %d\n", stats.WithPassword)
		fmt.Printf("Without password:  %d\n", stats.WithoutPassword)
		fmt.Printf("Failed queries:    %d\n", result.Failed)

		if len(stats.AuthTypes) > 0 {
			// Deterministic order for the histogram
			types := make([]string, 0, len(stats.AuthTypes))
			for t := range stats.AuthTypes {
				types = append(types, t)
			}
			sort.Strings(types)

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Authentication\tCount")
			fmt.Fprintln(w, "--------------\t-----")
			for _, t := range types {
				fmt.Fprintf(w, "%s\t%d\n", t, stats.AuthTypes[t])
			}
			w.Flush()
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(statsCmd)
}
