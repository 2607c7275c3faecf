package parser

import "strings"

// ParseProfileList extracts profile names from the raw output of the
// profile-enumeration command.
//
// The scanner enters capture mode at the user-profiles section header and
// leaves it at the first blank line or at the group-policy section header.
// Inside capture mode, every line shaped `<entry label> : <name>` yields the
// trimmed name. Duplicates are kept and emission order is preserved. Output
// without a recognizable header produces an empty list, not an error.
func ParseProfileList(output string, sets []LabelSet) []string {
	var names []string
	capturing := false

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)

		if !capturing {
			if matchesHeader(line, sets) {
				capturing = true
			}
			continue
		}

		if line == "" || matchesGroupPolicy(line, sets) {
			break
		}

		for _, set := range sets {
			if !strings.HasPrefix(line, set.ProfileEntry) {
				continue
			}
			if name, ok := valueAfterColon(line); ok && name != "" {
				names = append(names, name)
			}
			break
		}
	}

	return names
}

func matchesHeader(line string, sets []LabelSet) bool {
	for _, set := range sets {
		if strings.HasPrefix(line, set.UserProfilesHeader) {
			return true
		}
	}
	return false
}

func matchesGroupPolicy(line string, sets []LabelSet) bool {
	for _, set := range sets {
		if strings.HasPrefix(line, set.GroupPolicyHeader) {
			return true
		}
	}
	return false
}
