package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProfile_Defaults(t *testing.T) {
	p := NewProfile("HomeNet")

	assert.Equal(t, "HomeNet", p.SSID)
	assert.Equal(t, ValueUnknown, p.Authentication)
	assert.Equal(t, ValueUnknown, p.Encryption)
	assert.Equal(t, KeyNotFound, p.Key)
	assert.Equal(t, ValueUnknown, p.KeyType)
	assert.Equal(t, ValueUnknown, p.ProfileType)
	assert.Empty(t, p.LastModified)
}

func TestHasPassword(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"recovered secret", "hunter2", true},
		{"no password sentinel", KeyNoPassword, false},
		{"not found sentinel", KeyNotFound, false},
		{"empty key", "", false},
		{"sentinel-like but different", "no password", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile("x")
			p.Key = tt.key
			assert.Equal(t, tt.want, p.HasPassword())
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"txt", "csv", "json"} {
		f, err := ParseFormat(valid)
		assert.NoError(t, err)
		assert.Equal(t, ExportFormat(valid), f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNewExtraction(t *testing.T) {
	meta := NewExtraction("desktop-01")

	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "desktop-01", meta.Host)
	assert.Equal(t, StatusPending, meta.Status)
	assert.False(t, meta.StartedAt.IsZero())
	assert.Nil(t, meta.CompletedAt)

	// IDs are unique per run
	assert.NotEqual(t, meta.ID, NewExtraction("desktop-01").ID)
}
