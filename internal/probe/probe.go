// Package probe implements compile-and-run feature checks used during
// build configuration: does this library/header combination exist on
// the host, and does this expression evaluate to non-zero there?
package probe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/confkit/confkit/internal/buildcfg"
	"github.com/confkit/confkit/internal/toolchain"
)

// Language selects the source language of a probe program.
type Language int

const (
	C Language = iota
	CXX
)

func (l Language) String() string {
	if l == CXX {
		return "C++"
	}
	return "C"
}

// Ext returns the source file extension for the language.
func (l Language) Ext() string {
	if l == CXX {
		return ".cpp"
	}
	return ".c"
}

// Context carries everything a probe needs: the shared configuration
// it reads and mutates, the runner used to spawn the compiler and the
// probe binary, and the compiler itself.
//
// Probes are synchronous and mutate Config on success; callers running
// probes concurrently must serialize them.
type Context struct {
	Config   *buildcfg.Config
	Runner   toolchain.Runner
	Compiler string
	WorkDir  string
	Log      *log.Logger
}

// CheckLibWithHeaderExpr checks that a minimal program including the
// given headers, linked against the given libraries, compiles and runs
// with expr evaluating to non-zero. Libraries already in the link set
// are filtered from the newly-added set, but the check still runs. On
// success the filtered libraries are appended to Config.Libs.
//
// Any toolchain failure is reported as false, never as an error:
// absence of a library is a normal configuration outcome.
func (c *Context) CheckLibWithHeaderExpr(libs, headers []string, lang Language, expr string) bool {
	name := ""
	if len(libs) > 0 {
		name = libs[0]
	}

	var fresh []string
	for _, lib := range libs {
		if !c.Config.HasLib(lib) {
			fresh = append(fresh, lib)
		}
	}

	src := probeSource(headers, expr)
	ok := c.compileAndRun(src, lang, fresh)
	if ok {
		c.Config.AppendLibs(fresh...)
	}
	c.logResult(fmt.Sprintf("%s library %s", lang, name), ok)
	return ok
}

// CheckLibWithHeader is CheckLibWithHeaderExpr with the trivial
// expression "1": only compiling, linking and running are checked.
func (c *Context) CheckLibWithHeader(libs, headers []string, lang Language) bool {
	return c.CheckLibWithHeaderExpr(libs, headers, lang, "1")
}

func (c *Context) compileAndRun(src string, lang Language, extraLibs []string) bool {
	if err := os.MkdirAll(c.WorkDir, 0755); err != nil {
		return false
	}

	// The artifact name is derived from the probe source content, so
	// two different probe programs can never collide on one path, and
	// identical probes across runs land on the same one.
	base := filepath.Join(c.WorkDir, "probe_"+digest(src))
	srcFile := base + lang.Ext()
	binFile := base
	if runtime.GOOS == "windows" {
		binFile += ".exe"
	}

	if err := os.WriteFile(srcFile, []byte(src), 0644); err != nil {
		return false
	}

	args := []string{srcFile, "-o", binFile}
	for _, dir := range c.Config.CppPath {
		args = append(args, "-I"+dir)
	}
	for _, def := range c.Config.Defines {
		args = append(args, "-D"+def)
	}
	args = append(args, c.Config.CFlags...)
	for _, dir := range c.Config.LibPath {
		args = append(args, "-L"+dir)
	}
	for _, lib := range append(append([]string{}, c.Config.Libs...), extraLibs...) {
		args = append(args, "-l"+lib)
	}
	args = append(args, c.Config.LDFlags...)

	res, err := c.Runner.Run(c.Compiler, args...)
	if err != nil || res.ExitCode != 0 {
		return false
	}

	res, err = c.Runner.Run(binFile)
	if err != nil || res.ExitCode != 0 {
		return false
	}
	// "0" means the probed expression evaluated to false; any other
	// printed text counts as success, matching probe conventions.
	return strings.TrimSpace(res.Output) != "0"
}

// probeSource synthesizes the minimal program: include stdio.h plus
// the requested headers, print the expression's integer value.
func probeSource(headers []string, expr string) string {
	var b strings.Builder
	for _, h := range append([]string{"stdio.h"}, headers...) {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}
	fmt.Fprintf(&b, "\nint main() {\n    printf(\"%%d\\n\", (int)(%s));\n    return 0;\n}\n", expr)
	return b.String()
}

func digest(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:8])
}

func (c *Context) logResult(what string, ok bool) {
	if c.Log == nil {
		return
	}
	result := "no"
	if ok {
		result = "yes"
	}
	c.Log.Info("checking for "+what, "result", result)
}
