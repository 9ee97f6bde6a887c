package gen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/confkit/confkit/internal/toolchain"
)

// GenGetOpt generates an option parser from a .ggo declaration file.
// The generated <base>.c and <base>.h land next to the source; their
// paths are returned so the caller can feed them to the compiler.
func GenGetOpt(r toolchain.Runner, env map[string]string, gengetopt, source, version string) (cFile, hFile string, err error) {
	if len(toolchain.Which(env, gengetopt)) == 0 {
		return "", "", fmt.Errorf("gengetopt not found in PATH (looked for %q)", gengetopt)
	}

	dir := filepath.Dir(source)
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	cFile = filepath.Join(dir, base+".c")
	hFile = filepath.Join(dir, base+".h")

	res, err := r.Run(gengetopt,
		"-i", source,
		"-F", base,
		"--output-dir="+dir,
		"--set-version="+version)
	if err != nil {
		return "", "", fmt.Errorf("run %s: %w", gengetopt, err)
	}
	if res.ExitCode != 0 {
		return "", "", fmt.Errorf("%s exited with status %d:\n%s", gengetopt, res.ExitCode, res.Output)
	}
	return cFile, hFile, nil
}
