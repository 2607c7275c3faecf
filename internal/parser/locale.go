// Package parser extracts wireless profile data from the localized text
// reports emitted by the OS wireless tool. Section and field labels differ
// per console language, so both parsers work off configurable label tables
// instead of hard-coded literals: each configured LabelSet is tried in turn
// and an unrecognized locale degrades to empty results, never an error.
package parser

import (
	"fmt"
	"strings"
)

// LabelSet holds the tool's section and field labels for one console
// language.
type LabelSet struct {
	// Name identifies the set in configuration ("en", "ru").
	Name string

	// UserProfilesHeader marks the start of the user profiles section in
	// the list report.
	UserProfilesHeader string

	// GroupPolicyHeader marks the section that follows it.
	GroupPolicyHeader string

	// ProfileEntry is the per-profile line label inside the section.
	ProfileEntry string

	// Detail report field labels, matched as substrings.
	Authentication string
	Cipher         string
	KeyContent     string
	KeyType        string
	ProfileType    string

	// Absent is the value the tool prints for a key line with no saved
	// secret.
	Absent string
}

// BuiltinLabelSets returns the label tables shipped with the binary, in
// default try order.
func BuiltinLabelSets() []LabelSet {
	return []LabelSet{
		{
			Name:               "en",
			UserProfilesHeader: "User profiles",
			GroupPolicyHeader:  "Group policy profiles",
			ProfileEntry:       "All User Profile",
			Authentication:     "Authentication",
			Cipher:             "Cipher",
			KeyContent:         "Key Content",
			KeyType:            "Key Type",
			ProfileType:        "Profile Type",
			Absent:             "Absent",
		},
		{
			Name:               "ru",
			UserProfilesHeader: "Профили пользователей",
			GroupPolicyHeader:  "Профили групповой политики",
			ProfileEntry:       "Все профили пользователей",
			Authentication:     "Проверка подлинности",
			Cipher:             "Шифр",
			KeyContent:         "Содержимое ключа",
			KeyType:            "Тип ключа",
			ProfileType:        "Тип профиля",
			Absent:             "Отсутствует",
		},
	}
}

// ResolveLabelSets maps configured locale names to label sets, preserving
// the configured order. An empty list means all builtins in default order.
func ResolveLabelSets(names []string) ([]LabelSet, error) {
	builtin := BuiltinLabelSets()
	if len(names) == 0 {
		return builtin, nil
	}

	byName := make(map[string]LabelSet, len(builtin))
	var known []string
	for _, set := range builtin {
		byName[set.Name] = set
		known = append(known, set.Name)
	}

	sets := make([]LabelSet, 0, len(names))
	for _, name := range names {
		set, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown locale %q (available: %s)", name, strings.Join(known, ", "))
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// valueAfterColon returns the trimmed text following the first colon of the
// line, and whether a colon was present at all.
func valueAfterColon(line string) (string, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+1:]), true
}
