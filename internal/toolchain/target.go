package toolchain

import (
	"regexp"
	"strings"
)

var targetRE = regexp.MustCompile(`^Target:\s*(\S+)`)

// Target detects the target triple of a compiler by running it with
// "-v -E -" (verbose preprocess of an empty stdin) and scanning the
// output for a "Target:" line. The triple is returned in normalized
// form. It reports ok=false when the compiler cannot be run or prints
// no Target line.
func Target(r Runner, compiler string) (string, bool) {
	res, err := r.Run(compiler, "-v", "-E", "-")
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(res.Output, "\n") {
		if m := targetRE.FindStringSubmatch(line); m != nil {
			return NormalizeTriple(m[1]), true
		}
	}
	return "", false
}

// NormalizeTriple rewrites a target triple into the canonical
// arch-vendor-os-abi form. Recent config.guess versions default the
// vendor field to "pc"; older 3-component triples and triples with an
// "unknown" vendor are rewritten to match. Triples with any other
// component count pass through unchanged.
func NormalizeTriple(triple string) string {
	parts := strings.Split(triple, "-")
	switch len(parts) {
	case 3:
		parts = append([]string{parts[0], "pc"}, parts[1:]...)
	case 4:
		if parts[1] == "unknown" {
			parts[1] = "pc"
		}
	}
	return strings.Join(parts, "-")
}
