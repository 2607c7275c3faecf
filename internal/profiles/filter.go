package profiles

import (
	"strings"

	"github.com/hakim/wlankeys/internal/models"
)

// FilterOptions are two independent optional predicates, ANDed together.
// A nil HasPassword or empty SSID leaves that axis unconstrained.
type FilterOptions struct {
	// HasPassword selects profiles with (true) or without (false) a
	// recovered secret, per WifiProfile.HasPassword.
	HasPassword *bool

	// SSID is a case-insensitive substring match on the profile name.
	SSID string
}

// Filter returns the profiles satisfying the options. The source slice is
// never mutated; the two HasPassword values partition the input with no
// overlap and no omission.
func Filter(in []models.WifiProfile, opts FilterOptions) []models.WifiProfile {
	ssid := strings.ToLower(opts.SSID)

	var out []models.WifiProfile
	for _, p := range in {
		if opts.HasPassword != nil && p.HasPassword() != *opts.HasPassword {
			continue
		}
		if ssid != "" && !strings.Contains(strings.ToLower(p.SSID), ssid) {
			continue
		}
		out = append(out, p)
	}

	return out
}
