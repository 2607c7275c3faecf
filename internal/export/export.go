// Package export serializes a profile collection to flat snapshot files.
// Every format writes full, unmasked key values: masking is a display
// concern, an export is raw by contract.
package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hakim/wlankeys/internal/models"
)

// Snapshot is what a formatter renders: a profile collection plus its
// generation time.
type Snapshot struct {
	Generated time.Time
	Profiles  []models.WifiProfile
}

// Formatter writes a snapshot to the given writer.
type Formatter interface {
	Write(w io.Writer, snap *Snapshot) error
}

// ForFormat returns the formatter for an export format.
func ForFormat(format models.ExportFormat) (Formatter, error) {
	switch format {
	case models.FormatText:
		return &TextFormatter{}, nil
	case models.FormatCSV:
		return &CSVFormatter{}, nil
	case models.FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("no formatter for format %q", format)
	}
}

// WriteFile renders the profiles in the given format and writes the result
// to path. Expected I/O failures come back as errors, never panics; no
// partial-file guarantee is made.
func WriteFile(path string, in []models.WifiProfile, format models.ExportFormat) error {
	formatter, err := ForFormat(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %s: %w", path, err)
	}
	defer f.Close()

	snap := &Snapshot{Generated: time.Now(), Profiles: in}
	if err := formatter.Write(f, snap); err != nil {
		return fmt.Errorf("writing %s export to %s: %w", format, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file %s: %w", path, err)
	}
	return nil
}
