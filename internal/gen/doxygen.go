// Package gen wraps the code- and documentation-generation tools
// invoked during configuration. Unlike probes, a missing generator is
// a hard configuration error: the build cannot proceed without it.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/confkit/confkit/internal/toolchain"
)

// Doxygen runs the documentation generator on a config file and writes
// a ".done" marker into outputDir on success. With werror, any
// "warning:" line in the generator's output fails the run.
func Doxygen(r toolchain.Runner, env map[string]string, doxygen, outputDir, configFile string, werror bool) error {
	if len(toolchain.Which(env, doxygen)) == 0 {
		return fmt.Errorf("doxygen not found in PATH (looked for %q)", doxygen)
	}

	res, err := r.Run(doxygen, configFile)
	if err != nil {
		return fmt.Errorf("run %s: %w", doxygen, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%s exited with status %d:\n%s", doxygen, res.ExitCode, res.Output)
	}

	if warnings := collectWarnings(res.Output); werror && len(warnings) > 0 {
		return fmt.Errorf("doxygen reported %d warning(s):\n%s",
			len(warnings), strings.Join(warnings, "\n"))
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, ".done"), nil, 0644)
}

func collectWarnings(output string) []string {
	var warnings []string
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "warning:") {
			warnings = append(warnings, line)
		}
	}
	return warnings
}
