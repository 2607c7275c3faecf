package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hakim/wlankeys/internal/models"
)

// Document is the structured snapshot layout: generation timestamp, total
// count, and the ordered profile array. Each export is self-describing and
// complete, so no schema versioning is carried.
type Document struct {
	Generated     string               `json:"generated"`
	TotalProfiles int                  `json:"total_profiles"`
	Profiles      []models.WifiProfile `json:"profiles"`
}

// JSONFormatter writes the snapshot as a single pretty-printed JSON object.
type JSONFormatter struct{}

func (f *JSONFormatter) Write(w io.Writer, snap *Snapshot) error {
	doc := Document{
		Generated:     snap.Generated.Format(time.RFC3339),
		TotalProfiles: len(snap.Profiles),
		Profiles:      snap.Profiles,
	}
	if doc.Profiles == nil {
		doc.Profiles = []models.WifiProfile{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// ReadSnapshot parses a structured export back into a Document. Exports are
// lossless for the displayable fields, so reading one back yields the
// original profiles.
func ReadSnapshot(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
