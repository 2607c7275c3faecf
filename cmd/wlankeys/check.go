package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hakim/wlankeys/internal/privilege"
	"github.com/hakim/wlankeys/internal/tools"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the external tool and elevation status",
	Long: `Verify that the wireless tool is available and whether this process runs
with the elevation needed to read stored keys. Nothing is extracted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Tool availability
		results := tools.CheckTools(tools.DefaultTools())

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Tool\tStatus\tPath\tPurpose")
		fmt.Fprintln(w, "----\t------\t----\t-------")

		requiredMissing := 0
		for _, result := range results {
			status := "[-]"
			path := "-"

			if result.Found {
				status = "[+]"
				path = result.Path
			} else if result.Tool.Required {
				requiredMissing++
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				result.Tool.Name, status, path, result.Tool.Purpose)
		}
		w.Flush()

		for _, result := range results {
			if !result.Found {
				fmt.Printf("\n  %s not found — %s\n", result.Tool.Name, result.Tool.InstallCmd)
			}
		}

		// Elevation
		fmt.Println()
		elevated, err := privilege.IsElevated()
		switch {
		case errors.Is(err, privilege.ErrUnsupportedPlatform):
			fmt.Println("Elevation: [-] not a Windows host; extraction unavailable here")
		case err != nil:
			fmt.Printf("Elevation: [-] check failed: %v\n", err)
		case elevated:
			fmt.Println("Elevation: [+] running with administrator rights")
		default:
			fmt.Println("Elevation: [-] not elevated — stored keys cannot be read")
		}

		if requiredMissing > 0 {
			return fmt.Errorf("%d required tool(s) missing", requiredMissing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
