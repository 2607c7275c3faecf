package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetsh_DefaultsToCP866(t *testing.T) {
	n, err := NewNetsh("", 30*time.Second, "")
	require.NoError(t, err)
	require.NotNil(t, n.Decode)

	// "Шифр" in OEM code page 866
	decoded, err := n.Decode([]byte{0x98, 0xA8, 0xE4, 0xE0})
	require.NoError(t, err)
	assert.Equal(t, "Шифр", string(decoded))
}

func TestNewNetsh_DecodePassesASCIIThrough(t *testing.T) {
	n, err := NewNetsh("netsh", 0, "cp866")
	require.NoError(t, err)

	decoded, err := n.Decode([]byte("Key Content : secret"))
	require.NoError(t, err)
	assert.Equal(t, "Key Content : secret", string(decoded))
}

func TestNewNetsh_NoneDisablesDecoding(t *testing.T) {
	n, err := NewNetsh("netsh", 0, "none")
	require.NoError(t, err)

	assert.Nil(t, n.Decode)
}

func TestNewNetsh_UnknownCodepage(t *testing.T) {
	_, err := NewNetsh("netsh", 0, "cp1251")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cp1251")
}

func TestCheckTool_Missing(t *testing.T) {
	result := CheckTool(ToolRequirement{Name: "ghost", Binary: "definitely-not-a-real-binary"})

	assert.False(t, result.Found)
	assert.Empty(t, result.Path)
}
