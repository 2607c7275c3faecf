package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/hakim/wlankeys/internal/models"
)

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]+`)

// SanitizeName replaces characters unsafe for filesystem paths.
// Allows alphanumeric, dots, and hyphens. Replaces everything else with underscore.
func SanitizeName(name string) string {
	return unsafePathChars.ReplaceAllString(name, "_")
}

// ExportFilePath generates the default timestamp-derived export path.
// Format: {baseDir}/wlankeys_{YYYYMMDD}_{HHMMSS}.{ext}
func ExportFilePath(baseDir string, format models.ExportFormat, at time.Time) string {
	filename := fmt.Sprintf("wlankeys_%s.%s", at.Format("20060102_150405"), format)
	return filepath.Join(baseDir, filename)
}

// EnsureDir creates a directory and all parent directories if they don't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
