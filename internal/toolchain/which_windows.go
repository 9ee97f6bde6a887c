//go:build windows

package toolchain

import "os"

func canExec(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
