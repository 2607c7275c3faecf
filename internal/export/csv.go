package export

import (
	"encoding/csv"
	"io"
)

// csvHeader is the fixed header row of the tabular format.
var csvHeader = []string{"SSID", "Authentication", "Encryption", "Key", "Key Type", "Profile Type"}

// CSVFormatter writes the collection as delimited rows with standard CSV
// quoting, one row per profile in input order.
type CSVFormatter struct{}

func (f *CSVFormatter) Write(w io.Writer, snap *Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range snap.Profiles {
		row := []string{p.SSID, p.Authentication, p.Encryption, p.Key, p.KeyType, p.ProfileType}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
