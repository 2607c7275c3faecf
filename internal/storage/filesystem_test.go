package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hakim/wlankeys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "desktop-01", SanitizeName("desktop-01"))
	assert.Equal(t, "Cafe_Central_", SanitizeName(`Cafe "Central"`))
	assert.Equal(t, "a_b.c-d", SanitizeName("a b.c-d"))
}

func TestExportFilePath(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	path := ExportFilePath("exports", models.FormatJSON, at)

	assert.Equal(t, filepath.Join("exports", "wlankeys_20260314_150926.json"), path)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories are fine
	assert.NoError(t, EnsureDir(dir))
}
