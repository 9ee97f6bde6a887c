// Package buildcfg holds the mutable state shared across a single
// build-configuration pass: link libraries, search paths, flags, and
// subprocess environment overrides.
//
// A Config has single-writer discipline: probes and dependency setup
// mutate it, and the orchestrator must serialize concurrent writers.
package buildcfg

import (
	"os"
	"slices"
)

// Config is the build configuration accumulated while probing the host.
type Config struct {
	// Env overrides the process environment for spawned tools.
	Env map[string]string

	Libs    []string // link libraries, unique, order preserved
	CppPath []string // header search paths
	LibPath []string // library search paths
	Defines []string // preprocessor definitions
	CFlags  []string // extra compile flags
	LDFlags []string // extra link flags
}

func New() *Config {
	return &Config{Env: make(map[string]string)}
}

// Getenv returns the Env override for name, falling back to the
// process environment.
func (c *Config) Getenv(name string) string {
	if v, ok := c.Env[name]; ok {
		return v
	}
	return os.Getenv(name)
}

// Setenv records a subprocess environment override.
func (c *Config) Setenv(name, value string) {
	if c.Env == nil {
		c.Env = make(map[string]string)
	}
	c.Env[name] = value
}

// HasLib reports whether lib is already in the link set.
func (c *Config) HasLib(lib string) bool {
	return slices.Contains(c.Libs, lib)
}

// AppendLibs adds libraries to the end of the link set, skipping ones
// already present.
func (c *Config) AppendLibs(libs ...string) {
	for _, lib := range libs {
		if !c.HasLib(lib) {
			c.Libs = append(c.Libs, lib)
		}
	}
}

// PrependLibs adds libraries to the front of the link set, skipping
// ones already present.
func (c *Config) PrependLibs(libs ...string) {
	c.Libs = prependUnique(c.Libs, libs)
}

// PrependCppPath adds header search paths to the front, skipping ones
// already present.
func (c *Config) PrependCppPath(dirs ...string) {
	c.CppPath = prependUnique(c.CppPath, dirs)
}

// PrependLibPath adds library search paths to the front, skipping ones
// already present.
func (c *Config) PrependLibPath(dirs ...string) {
	c.LibPath = prependUnique(c.LibPath, dirs)
}

// AppendDefines adds preprocessor definitions, skipping duplicates.
func (c *Config) AppendDefines(defs ...string) {
	c.Defines = appendUnique(c.Defines, defs)
}

// Merge appends every list-valued field of other into c, skipping
// values already present. Env overrides in other win.
func (c *Config) Merge(other *Config) {
	c.Libs = appendUnique(c.Libs, other.Libs)
	c.CppPath = appendUnique(c.CppPath, other.CppPath)
	c.LibPath = appendUnique(c.LibPath, other.LibPath)
	c.Defines = appendUnique(c.Defines, other.Defines)
	c.CFlags = appendUnique(c.CFlags, other.CFlags)
	c.LDFlags = appendUnique(c.LDFlags, other.LDFlags)
	for k, v := range other.Env {
		c.Setenv(k, v)
	}
}

func appendUnique(dst, src []string) []string {
	for _, s := range src {
		if !slices.Contains(dst, s) {
			dst = append(dst, s)
		}
	}
	return dst
}

func prependUnique(dst, src []string) []string {
	var fresh []string
	for _, s := range src {
		if !slices.Contains(dst, s) && !slices.Contains(fresh, s) {
			fresh = append(fresh, s)
		}
	}
	return append(fresh, dst...)
}
