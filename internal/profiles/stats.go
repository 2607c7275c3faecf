package profiles

import "github.com/hakim/wlankeys/internal/models"

// Stats summarises a profile collection.
type Stats struct {
	Total           int            `json:"total_profiles"`
	WithPassword    int            `json:"with_password"`
	WithoutPassword int            `json:"without_password"`
	AuthTypes       map[string]int `json:"authentication_types"`
}

// Compute builds statistics over the given profiles.
func Compute(in []models.WifiProfile) Stats {
	stats := Stats{
		Total:     len(in),
		AuthTypes: make(map[string]int),
	}

	for _, p := range in {
		if p.HasPassword() {
			stats.WithPassword++
		}
		stats.AuthTypes[p.Authentication]++
	}
	stats.WithoutPassword = stats.Total - stats.WithPassword

	return stats
}
