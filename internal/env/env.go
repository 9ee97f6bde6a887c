// Package env resolves confkit's directories on the host.
package env

import (
	"os"
	"path/filepath"
)

// WorkDir returns the default scratch directory for probe sources and
// binaries, under the user cache directory.
func WorkDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, "confkit"), nil
}
