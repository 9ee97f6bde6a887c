package toolchain

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// VersionTuple is a compiler version, most-significant component first.
// It usually has two or three components.
type VersionTuple []int

// String returns the dotted form, e.g. "10.0.1".
func (v VersionTuple) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Semver returns the canonical "vX.Y.Z" form understood by
// golang.org/x/mod/semver. Missing components are left off; semver
// treats "v7" and "v7.0.0" as equal.
func (v VersionTuple) Semver() string {
	return "v" + v.String()
}

// AtLeast reports whether v is at least min, where min is a dotted
// version string such as "3.8" or "10.0.1".
func (v VersionTuple) AtLeast(min string) bool {
	return semver.Compare(v.Semver(), "v"+min) >= 0
}

// versionPatterns are tried in order: a dotted triple wins over a
// dotted pair.
var versionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d+\.\d+\.\d+\b`),
	regexp.MustCompile(`\b\d+\.\d+\b`),
}

// llvmPatterns anchor the version to the "LLVM version" / "clang
// version" token. Generic numbers elsewhere in clang banners are often
// wrong (a host OS version, a vendor build tag), so these take
// priority over versionPatterns.
var llvmPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:LLVM|clang)\s+version\s+(\d+\.\d+\.\d+\b)`),
	regexp.MustCompile(`(?:LLVM|clang)\s+version\s+(\d+\.\d+\b)`),
}

// parenRE matches parenthesized vendor annotations, e.g. distro tags
// or build hashes, which tend to contain spurious version numbers.
var parenRE = regexp.MustCompile(`\([^)]*\)`)

// Version detects the version of a compiler-like executable by running
// it with --version and -dumpversion and parsing the combined output.
// It reports ok=false when the executable cannot be run or no version
// can be extracted; it never fails hard.
func Version(r Runner, compiler string) (VersionTuple, bool) {
	full, err := r.Run(compiler, "--version")
	if err != nil {
		return nil, false
	}

	for _, re := range llvmPatterns {
		if m := re.FindStringSubmatch(full.Output); m != nil {
			return parseTuple(m[1])
		}
	}

	trunc := parenRE.ReplaceAllString(full.Output, "")

	dump, err := r.Run(compiler, "-dumpversion")
	if err != nil {
		return nil, false
	}

	for _, text := range []string{dump.Output, trunc, full.Output} {
		for _, re := range versionPatterns {
			if m := re.FindString(text); m != "" {
				return parseTuple(m)
			}
		}
	}
	return nil, false
}

func parseTuple(s string) (VersionTuple, bool) {
	parts := strings.Split(s, ".")
	tuple := make(VersionTuple, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		tuple[i] = n
	}
	return tuple, true
}
