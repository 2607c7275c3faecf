package export

import (
	"strings"
	"testing"
	"time"

	"github.com/hakim/wlankeys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	home := models.NewProfile("HomeNet")
	home.Authentication = "WPA2-Personal"
	home.Encryption = "CCMP"
	home.Key = "hunter2secret"
	home.KeyType = "Passphrase"
	home.ProfileType = "All User Profile"

	open := models.NewProfile("CoffeeShop")
	open.Authentication = "Open"
	open.Key = models.KeyNoPassword

	return &Snapshot{
		Generated: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Profiles:  []models.WifiProfile{home, open},
	}
}

func TestTextFormatter(t *testing.T) {
	var b strings.Builder
	err := (&TextFormatter{}).Write(&b, testSnapshot())
	require.NoError(t, err)

	out := b.String()
	lines := strings.Split(out, "\n")

	assert.Equal(t, "=== Wi-Fi Profile Extractor Results ===", lines[0])
	assert.Equal(t, "Generated: 2026-03-14 15:09:26", lines[1])
	assert.Equal(t, "Total profiles: 2", lines[2])

	assert.Contains(t, out, "Profile #1\nSSID: HomeNet\n")
	assert.Contains(t, out, "Profile #2\nSSID: CoffeeShop\n")
	assert.Contains(t, out, "Authentication: WPA2-Personal\n")
	assert.Contains(t, out, "Key Type: Passphrase\n")
	assert.Contains(t, out, strings.Repeat("-", 40))

	// Keys are raw, never masked
	assert.Contains(t, out, "Key: hunter2secret\n")
	assert.Contains(t, out, "Key: No password saved\n")

	// Input order preserved
	assert.Less(t, strings.Index(out, "HomeNet"), strings.Index(out, "CoffeeShop"))
}

func TestTextFormatter_Empty(t *testing.T) {
	var b strings.Builder
	err := (&TextFormatter{}).Write(&b, &Snapshot{Generated: time.Now()})
	require.NoError(t, err)

	assert.Contains(t, b.String(), "Total profiles: 0")
	assert.NotContains(t, b.String(), "Profile #")
}
