package parser

import (
	"strings"

	"github.com/hakim/wlankeys/internal/models"
)

// ParseProfileDetail extracts a structured profile from the raw output of
// the per-profile query command.
//
// Each line is tested against the field labels in fixed priority order:
// authentication, cipher, key content, key type, profile type. The first
// matching label wins the line and the value after its first colon is
// stored. Fields no line matches keep their defaults, and output with no
// recognizable labels at all still yields a usable profile for the name.
//
// The key field is special: a key line whose value is empty or equals the
// locale's "absent" word stores the no-password sentinel, while a report
// with no key line at all leaves the not-found default. The two cases never
// collapse.
func ParseProfileDetail(output, name string, sets []LabelSet) models.WifiProfile {
	profile := models.NewProfile(name)

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case containsLabel(line, sets, func(s LabelSet) string { return s.Authentication }):
			if v, ok := valueAfterColon(line); ok && v != "" {
				profile.Authentication = v
			}
		case containsLabel(line, sets, func(s LabelSet) string { return s.Cipher }):
			if v, ok := valueAfterColon(line); ok && v != "" {
				profile.Encryption = v
			}
		case containsLabel(line, sets, func(s LabelSet) string { return s.KeyContent }):
			if v, ok := valueAfterColon(line); ok {
				if v == "" || isAbsent(v, sets) {
					profile.Key = models.KeyNoPassword
				} else {
					profile.Key = v
				}
			}
		case containsLabel(line, sets, func(s LabelSet) string { return s.KeyType }):
			if v, ok := valueAfterColon(line); ok && v != "" {
				profile.KeyType = v
			}
		case containsLabel(line, sets, func(s LabelSet) string { return s.ProfileType }):
			if v, ok := valueAfterColon(line); ok && v != "" {
				profile.ProfileType = v
			}
		}
	}

	return profile
}

func containsLabel(line string, sets []LabelSet, label func(LabelSet) string) bool {
	for _, set := range sets {
		if l := label(set); l != "" && strings.Contains(line, l) {
			return true
		}
	}
	return false
}

func isAbsent(value string, sets []LabelSet) bool {
	for _, set := range sets {
		if set.Absent != "" && value == set.Absent {
			return true
		}
	}
	return false
}
