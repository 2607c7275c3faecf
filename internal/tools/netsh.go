package tools

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// Netsh wraps the two invocations of the OS wireless-profile tool. Each call
// runs one external process to completion; there is no batch query.
type Netsh struct {
	// Binary is the tool path. Empty means "netsh" from PATH.
	Binary string

	// Timeout caps each invocation. Zero means no per-call deadline
	// beyond the caller's context.
	Timeout time.Duration

	// Decode converts console output to UTF-8. Localized Windows
	// consoles emit OEM code pages (cp866 on Russian hosts).
	Decode DecodeFunc
}

// NewNetsh builds a Netsh wrapper. codepage selects the console output
// decoder: "cp866" or "" installs the Russian OEM decoder, "none" disables
// decoding.
func NewNetsh(binary string, timeout time.Duration, codepage string) (*Netsh, error) {
	n := &Netsh{Binary: binary, Timeout: timeout}

	switch codepage {
	case "", "cp866":
		n.Decode = func(b []byte) ([]byte, error) {
			return charmap.CodePage866.NewDecoder().Bytes(b)
		}
	case "none":
		// Output used as-is.
	default:
		return nil, fmt.Errorf("unknown console codepage %q (expected cp866 or none)", codepage)
	}

	return n, nil
}

// ListProfiles runs the profile-enumeration command and returns its raw
// localized report.
func (n *Netsh) ListProfiles(ctx context.Context) (string, error) {
	result, err := n.run(ctx, "wlan", "show", "profiles")
	if err != nil {
		return "", fmt.Errorf("listing wireless profiles: %w", err)
	}
	return string(result.Stdout), nil
}

// ShowProfile runs the per-profile query with the stored key revealed and
// returns its raw localized report.
func (n *Netsh) ShowProfile(ctx context.Context, name string) (string, error) {
	result, err := n.run(ctx, "wlan", "show", "profile", "name="+name, "key=clear")
	if err != nil {
		return "", fmt.Errorf("querying profile %q: %w", name, err)
	}
	return string(result.Stdout), nil
}

func (n *Netsh) run(ctx context.Context, args ...string) (*ToolResult, error) {
	binary := "netsh"
	if n.Binary != "" {
		binary = n.Binary
	}

	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	return RunTool(ctx, n.Decode, binary, args...)
}
