package toolchain

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LLVMDir locates the LLVM installation directory matching a detected
// compiler version, preferring the most specific suffix: "llvm-3.8.1",
// "llvm/3.8.1", then the two-component and one-component forms, then a
// bare "llvm" directory.
func LLVMDir(version VersionTuple) (string, bool) {
	return llvmDir("/usr/lib", version)
}

func llvmDir(base string, version VersionTuple) (string, bool) {
	var suffixes []string
	for n := len(version); n >= 1; n-- {
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = strconv.Itoa(version[i])
		}
		v := strings.Join(parts, ".")
		suffixes = append(suffixes, "-"+v, string(os.PathSeparator)+v)
	}
	suffixes = append(suffixes, "")

	for _, s := range suffixes {
		dir := filepath.Join(base, "llvm"+s)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}
