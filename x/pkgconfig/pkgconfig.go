// Package pkgconfig folds pkg-config output into a build configuration.
package pkgconfig

import (
	"strings"

	"github.com/confkit/confkit/internal/buildcfg"
	"github.com/confkit/confkit/internal/toolchain"
)

// TryParse runs pkg-config with --cflags --libs for the given packages
// and merges the reported flags into cfg. The executable is taken from
// the configuration's PKG_CONFIG override, else found on PATH. It
// reports false, never an error, when the tool is missing or the
// packages are unknown.
func TryParse(cfg *buildcfg.Config, r toolchain.Runner, pkgs ...string) bool {
	pkgConfig := cfg.Getenv("PKG_CONFIG")
	if pkgConfig == "" {
		found := toolchain.Which(cfg.Env, "pkg-config")
		if len(found) == 0 {
			return false
		}
		pkgConfig = found[0]
	}

	args := append([]string{"--cflags", "--libs"}, pkgs...)
	res, err := r.Run(pkgConfig, args...)
	if err != nil || res.ExitCode != 0 {
		return false
	}

	apply(cfg, strings.Fields(res.Output))
	return true
}

func apply(cfg *buildcfg.Config, flags []string) {
	var cppPath, libPath, libs, defines []string
	for _, f := range flags {
		switch {
		case strings.HasPrefix(f, "-I"):
			cppPath = append(cppPath, f[2:])
		case strings.HasPrefix(f, "-L"):
			libPath = append(libPath, f[2:])
		case strings.HasPrefix(f, "-l"):
			libs = append(libs, f[2:])
		case strings.HasPrefix(f, "-D"):
			defines = append(defines, f[2:])
		default:
			cfg.CFlags = append(cfg.CFlags, f)
		}
	}
	cfg.PrependCppPath(cppPath...)
	cfg.PrependLibPath(libPath...)
	cfg.AppendLibs(libs...)
	cfg.AppendDefines(defines...)
}
