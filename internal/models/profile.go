package models

// Sentinel values stored in a profile's Key field. KeyNotFound means the
// detail output never contained a key line at all; KeyNoPassword means a key
// line was present but the profile has no saved secret. The two cases must
// stay distinguishable.
const (
	KeyNotFound   = "Not found"
	KeyNoPassword = "No password saved"

	// ValueUnknown is the default for every field the detail parser
	// never matched.
	ValueUnknown = "Unknown"
)

// WifiProfile is one saved wireless network profile and its security
// parameters as reported by the OS wireless tool. A profile is immutable
// after parsing; collections are rebuilt wholesale per extraction.
type WifiProfile struct {
	SSID           string `json:"ssid"`
	Authentication string `json:"authentication"`
	Encryption     string `json:"encryption"`
	Key            string `json:"key"`
	KeyType        string `json:"key_type"`
	ProfileType    string `json:"profile_type"`

	// LastModified is reserved: no parsing path populates it today and
	// nothing may synthesize a value for it.
	LastModified string `json:"last_modified"`
}

// NewProfile returns a profile for the given SSID with every other field at
// its documented default.
func NewProfile(ssid string) WifiProfile {
	return WifiProfile{
		SSID:           ssid,
		Authentication: ValueUnknown,
		Encryption:     ValueUnknown,
		Key:            KeyNotFound,
		KeyType:        ValueUnknown,
		ProfileType:    ValueUnknown,
	}
}

// HasPassword reports whether the profile carries a recovered secret,
// i.e. the Key field is non-empty and not one of the sentinels.
func (p WifiProfile) HasPassword() bool {
	return p.Key != "" && p.Key != KeyNoPassword && p.Key != KeyNotFound
}

// ProfileResult pairs a parsed profile with the error, if any, from its
// detail command. A failed command still yields a profile of defaults so the
// caller can tell "tool failed for this profile" from "tool succeeded but had
// no matching fields".
type ProfileResult struct {
	Profile WifiProfile
	Err     error
}
