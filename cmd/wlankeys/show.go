package main

import (
	"context"
	"fmt"

	"github.com/hakim/wlankeys/internal/parser"
	"github.com/hakim/wlankeys/internal/privilege"
	"github.com/hakim/wlankeys/internal/profiles"
	"github.com/hakim/wlankeys/internal/tools"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <profile-name>",
	Short: "Show one saved profile's security parameters",
	Long: `Query a single saved profile by name with its stored key revealed and
print the parsed fields. The key is masked unless --show-keys is passed.

Requires an elevated (administrator) console.

Examples:
  wlankeys show Home-Net
  wlankeys show Home-Net --show-keys`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		showKeys, _ := cmd.Flags().GetBool("show-keys")
		noColor, _ := cmd.Flags().GetBool("no-color")

		setupColor(noColor)

		if cfg == nil {
			return fmt.Errorf("config not loaded. Run 'wlankeys init' first to create config")
		}

		elevated, err := privilege.IsElevated()
		if err != nil {
			return err
		}
		if !elevated {
			return profiles.ErrNotElevated
		}

		timeout, err := cfg.Netsh.TimeoutDuration()
		if err != nil {
			return fmt.Errorf("parsing netsh timeout: %w", err)
		}
		netsh, err := tools.NewNetsh(cfg.Netsh.Path, timeout, cfg.Netsh.Codepage)
		if err != nil {
			return err
		}
		labels, err := parser.ResolveLabelSets(cfg.Locales)
		if err != nil {
			return err
		}

		detail, err := netsh.ShowProfile(context.Background(), name)
		if err != nil {
			return err
		}

		profile := parser.ParseProfileDetail(detail, name, labels)

		key := profile.Key
		if !showKeys {
			key = maskKey(key)
		}

		fmt.Printf("SSID:           %s\n", profile.SSID)
		fmt.Printf("Authentication: %s\n", profile.Authentication)
		fmt.Printf("Encryption:     %s\n", profile.Encryption)
		fmt.Printf("Key:            %s\n", key)
		fmt.Printf("Key Type:       %s\n", profile.KeyType)
		fmt.Printf("Profile Type:   %s\n", profile.ProfileType)

		return nil
	},
}

func init() {
	showCmd.Flags().Bool("show-keys", false, "print the key unmasked")
	showCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(showCmd)
}
