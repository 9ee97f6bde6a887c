//go:build !windows

package toolchain

import (
	"os"

	"golang.org/x/sys/unix"
)

func canExec(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
