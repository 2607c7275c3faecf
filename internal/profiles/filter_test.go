package profiles

import (
	"testing"

	"github.com/hakim/wlankeys/internal/models"
	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func sampleProfiles() []models.WifiProfile {
	secured := models.NewProfile("My-Home-Net")
	secured.Key = "hunter2"

	open := models.NewProfile("CoffeeShop")
	open.Key = models.KeyNoPassword

	unknown := models.NewProfile("Airport")
	// Key stays at the not-found default.

	return []models.WifiProfile{secured, open, unknown}
}

func TestFilter_NoConstraints(t *testing.T) {
	in := sampleProfiles()

	out := Filter(in, FilterOptions{})

	assert.Equal(t, in, out)
}

func TestFilter_HasPassword(t *testing.T) {
	out := Filter(sampleProfiles(), FilterOptions{HasPassword: boolPtr(true)})

	assert.Len(t, out, 1)
	assert.Equal(t, "My-Home-Net", out[0].SSID)
	for _, p := range out {
		assert.NotEqual(t, models.KeyNoPassword, p.Key)
		assert.NotEqual(t, models.KeyNotFound, p.Key)
	}
}

func TestFilter_NoPassword(t *testing.T) {
	out := Filter(sampleProfiles(), FilterOptions{HasPassword: boolPtr(false)})

	assert.Len(t, out, 2)
	assert.Equal(t, "CoffeeShop", out[0].SSID)
	assert.Equal(t, "Airport", out[1].SSID)
}

func TestFilter_PasswordAxisPartitionsInput(t *testing.T) {
	in := sampleProfiles()

	with := Filter(in, FilterOptions{HasPassword: boolPtr(true)})
	without := Filter(in, FilterOptions{HasPassword: boolPtr(false)})

	assert.Equal(t, len(in), len(with)+len(without))

	seen := map[string]int{}
	for _, p := range with {
		seen[p.SSID]++
	}
	for _, p := range without {
		seen[p.SSID]++
	}
	for _, p := range in {
		assert.Equal(t, 1, seen[p.SSID], "profile %s must appear in exactly one partition", p.SSID)
	}
}

func TestFilter_SSIDCaseInsensitive(t *testing.T) {
	out := Filter(sampleProfiles(), FilterOptions{SSID: "HOME"})

	assert.Len(t, out, 1)
	assert.Equal(t, "My-Home-Net", out[0].SSID)
}

func TestFilter_BothAxesAnded(t *testing.T) {
	out := Filter(sampleProfiles(), FilterOptions{
		HasPassword: boolPtr(false),
		SSID:        "coffee",
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "CoffeeShop", out[0].SSID)
}

func TestFilter_NoMatch(t *testing.T) {
	out := Filter(sampleProfiles(), FilterOptions{SSID: "nonexistent"})

	assert.Empty(t, out)
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	in := sampleProfiles()
	original := make([]models.WifiProfile, len(in))
	copy(original, in)

	Filter(in, FilterOptions{HasPassword: boolPtr(true), SSID: "net"})

	assert.Equal(t, original, in)
}
