//go:build !windows

package privilege

// IsElevated is not supported on this platform.
func IsElevated() (bool, error) {
	return false, ErrUnsupportedPlatform
}
