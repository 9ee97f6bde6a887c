package toolchain

import (
	"os"
	"path/filepath"
	"strings"
)

// Which returns every executable match for prog on PATH, in PATH
// order. Entries in env override the process environment (PATH and,
// on Windows, PATHEXT). A missing program yields an empty slice.
func Which(env map[string]string, prog string) []string {
	getenv := func(name string) string {
		if v, ok := env[name]; ok {
			return v
		}
		return os.Getenv(name)
	}

	path := getenv("PATH")
	if path == "" {
		return nil
	}

	var exts []string
	for _, e := range strings.Split(getenv("PATHEXT"), string(os.PathListSeparator)) {
		if e != "" {
			exts = append(exts, e)
		}
	}

	var matches []string
	for _, dir := range filepath.SplitList(path) {
		p := filepath.Join(dir, prog)
		if canExec(p) {
			matches = append(matches, p)
		}
		for _, e := range exts {
			if pext := p + e; canExec(pext) {
				matches = append(matches, pext)
			}
		}
	}
	return matches
}
