package export

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter writes a human-readable plain text report: a banner, the
// generation timestamp, a total count, then one block per profile in input
// order.
type TextFormatter struct{}

func (f *TextFormatter) Write(w io.Writer, snap *Snapshot) error {
	var b strings.Builder

	b.WriteString("=== Wi-Fi Profile Extractor Results ===\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", snap.Generated.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Total profiles: %d\n\n", len(snap.Profiles)))

	for i, p := range snap.Profiles {
		b.WriteString(fmt.Sprintf("Profile #%d\n", i+1))
		b.WriteString(fmt.Sprintf("SSID: %s\n", p.SSID))
		b.WriteString(fmt.Sprintf("Authentication: %s\n", p.Authentication))
		b.WriteString(fmt.Sprintf("Encryption: %s\n", p.Encryption))
		b.WriteString(fmt.Sprintf("Key: %s\n", p.Key))
		b.WriteString(fmt.Sprintf("Key Type: %s\n", p.KeyType))
		b.WriteString(fmt.Sprintf("Profile Type: %s\n", p.ProfileType))
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
