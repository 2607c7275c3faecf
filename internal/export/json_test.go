package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hakim/wlankeys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_RoundTrip(t *testing.T) {
	snap := testSnapshot()

	var b strings.Builder
	err := (&JSONFormatter{}).Write(&b, snap)
	require.NoError(t, err)

	doc, err := ReadSnapshot(strings.NewReader(b.String()))
	require.NoError(t, err)

	assert.Equal(t, snap.Generated.Format(time.RFC3339), doc.Generated)
	assert.Equal(t, 2, doc.TotalProfiles)
	// Lossless: the profiles come back field-for-field identical.
	assert.Equal(t, snap.Profiles, doc.Profiles)
}

func TestJSONFormatter_Keys(t *testing.T) {
	var b strings.Builder
	err := (&JSONFormatter{}).Write(&b, testSnapshot())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(b.String()), &raw))

	assert.Contains(t, raw, "generated")
	assert.Contains(t, raw, "total_profiles")
	assert.Contains(t, raw, "profiles")

	profiles := raw["profiles"].([]any)
	first := profiles[0].(map[string]any)
	for _, key := range []string{"ssid", "authentication", "encryption", "key", "key_type", "profile_type", "last_modified"} {
		assert.Contains(t, first, key)
	}

	// Raw export: the full secret is present, unmasked.
	assert.Equal(t, "hunter2secret", first["key"])
	assert.Equal(t, "", first["last_modified"])
}

func TestJSONFormatter_Empty(t *testing.T) {
	var b strings.Builder
	err := (&JSONFormatter{}).Write(&b, &Snapshot{Generated: time.Now()})
	require.NoError(t, err)

	doc, err := ReadSnapshot(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Zero(t, doc.TotalProfiles)
	assert.NotNil(t, doc.Profiles)
	assert.Empty(t, doc.Profiles)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	snap := testSnapshot()

	for _, format := range []models.ExportFormat{models.FormatText, models.FormatCSV, models.FormatJSON} {
		path := filepath.Join(dir, "out."+string(format))
		err := WriteFile(path, snap.Profiles, format)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), nil, models.FormatJSON)

	assert.Error(t, err)
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "out.xml"), nil, models.ExportFormat("xml"))

	assert.Error(t, err)
}
