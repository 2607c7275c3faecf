package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/hakim/wlankeys/internal/config"
	"github.com/hakim/wlankeys/internal/models"
	"github.com/hakim/wlankeys/internal/parser"
	"github.com/hakim/wlankeys/internal/privilege"
	"github.com/hakim/wlankeys/internal/profiles"
	"github.com/hakim/wlankeys/internal/storage"
	"github.com/hakim/wlankeys/internal/tools"
)

var (
	markOK   = color.New(color.FgGreen).SprintFunc()
	markWarn = color.New(color.FgYellow).SprintFunc()
	markFail = color.New(color.FgRed).SprintFunc()
)

// setupColor disables colored markers when asked to or when stdout is not a
// terminal.
func setupColor(noColor bool) {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// buildPipeline wires the extraction pipeline from configuration.
func buildPipeline(cfg *config.Config) (*profiles.Pipeline, error) {
	timeout, err := cfg.Netsh.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("parsing netsh timeout: %w", err)
	}

	netsh, err := tools.NewNetsh(cfg.Netsh.Path, timeout, cfg.Netsh.Codepage)
	if err != nil {
		return nil, err
	}

	labels, err := parser.ResolveLabelSets(cfg.Locales)
	if err != nil {
		return nil, err
	}

	pipe := &profiles.Pipeline{
		Tool:           netsh,
		Labels:         labels,
		CheckElevation: privilege.IsElevated,
	}

	if verbose {
		pipe.OnProfileStart = func(name string, index, total int) {
			fmt.Printf("[*] Querying profile %d/%d: %s\n", index+1, total, name)
		}
	}
	pipe.OnProfileDone = func(name string, index, total int, err error) {
		if err != nil {
			fmt.Printf("%s profile %q query failed: %v\n", markFail("[!]"), name, err)
		}
	}

	return pipe, nil
}

// runExtraction performs one full extraction run on a background worker,
// records its metadata in the store, and hands the result back here.
func runExtraction(ctx context.Context, cfg *config.Config) (*profiles.Result, *models.ExtractionMeta, error) {
	pipe, err := buildPipeline(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewStore(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	meta := models.NewExtraction(host)
	meta.Status = models.StatusRunning
	if err := store.SaveExtraction(meta); err != nil {
		return nil, nil, fmt.Errorf("saving extraction record: %w", err)
	}

	// Single-shot background worker; this loop just waits for the one
	// result message.
	async := <-pipe.RunAsync(ctx)
	if async.Err != nil {
		if err := store.UpdateExtractionStatus(meta.ID, models.StatusFailed); err != nil {
			fmt.Printf("%s Warning: could not update extraction status: %v\n", markWarn("[!]"), err)
		}
		return nil, nil, async.Err
	}

	result := async.Result
	stats := profiles.Compute(result.Profiles)
	meta.TotalProfiles = stats.Total
	meta.WithPassword = stats.WithPassword
	meta.WithoutPassword = stats.WithoutPassword
	meta.FailedProfiles = result.Failed
	meta.Status = models.StatusComplete
	if err := store.SaveExtraction(meta); err != nil {
		fmt.Printf("%s Warning: could not persist extraction counts: %v\n", markWarn("[!]"), err)
	}
	if err := store.UpdateExtractionStatus(meta.ID, models.StatusComplete); err != nil {
		fmt.Printf("%s Warning: could not update extraction status: %v\n", markWarn("[!]"), err)
	}

	return result, meta, nil
}

// maskKey hides the middle of a recovered key for terminal display.
// Sentinel values pass through untouched — they are not secrets.
func maskKey(key string) string {
	if key == models.KeyNoPassword || key == models.KeyNotFound || key == "" {
		return key
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// printProfileTable renders the collection as an aligned table. Keys are
// masked unless showKeys is set.
func printProfileTable(list []models.WifiProfile, showKeys bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SSID\tAuthentication\tEncryption\tKey\tKey Type\tProfile Type")
	fmt.Fprintln(w, "----\t--------------\t----------\t---\t--------\t------------")

	for _, p := range list {
		key := p.Key
		if !showKeys {
			key = maskKey(key)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.SSID, p.Authentication, p.Encryption, key, p.KeyType, p.ProfileType)
	}

	w.Flush()
}

// filterOptionsFromFlags builds FilterOptions from the shared filter flags.
func filterOptionsFromFlags(hasPassword, noPassword bool, ssid string) (profiles.FilterOptions, error) {
	opts := profiles.FilterOptions{SSID: ssid}

	if hasPassword && noPassword {
		return opts, fmt.Errorf("--has-password and --no-password are mutually exclusive")
	}
	if hasPassword {
		v := true
		opts.HasPassword = &v
	}
	if noPassword {
		v := false
		opts.HasPassword = &v
	}

	return opts, nil
}
