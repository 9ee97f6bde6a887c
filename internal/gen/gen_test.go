package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/confkit/confkit/internal/toolchain"
)

type fakeRunner struct {
	output string
	exit   int
	calls  [][]string
}

func (f *fakeRunner) Run(prog string, args ...string) (toolchain.Result, error) {
	f.calls = append(f.calls, append([]string{prog}, args...))
	return toolchain.Result{ExitCode: f.exit, Output: f.output}, nil
}

// toolOnPath drops an executable stub into a temp dir and returns an
// env overlay whose PATH contains only that dir.
func toolOnPath(t *testing.T, name string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return map[string]string{"PATH": dir}
}

func TestDoxygenMissingTool(t *testing.T) {
	env := map[string]string{"PATH": t.TempDir()}
	err := Doxygen(&fakeRunner{}, env, "doxygen", t.TempDir(), "Doxyfile", false)
	if err == nil || !strings.Contains(err.Error(), "not found in PATH") {
		t.Errorf("Doxygen error = %v, want missing-tool error", err)
	}
}

func TestDoxygenWritesDoneMarker(t *testing.T) {
	env := toolOnPath(t, "doxygen")
	outputDir := filepath.Join(t.TempDir(), "docs")

	r := &fakeRunner{output: "Searching for files...\n"}
	if err := Doxygen(r, env, "doxygen", outputDir, "Doxyfile", false); err != nil {
		t.Fatalf("Doxygen: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, ".done")); err != nil {
		t.Errorf("missing .done marker: %v", err)
	}
}

func TestDoxygenWerror(t *testing.T) {
	env := toolOnPath(t, "doxygen")
	out := "Searching...\nfoo.h:10: warning: undocumented member\ndone\n"

	// Warnings pass without werror.
	if err := Doxygen(&fakeRunner{output: out}, env, "doxygen", t.TempDir(), "Doxyfile", false); err != nil {
		t.Errorf("Doxygen without werror: %v", err)
	}

	// And fail with it.
	err := Doxygen(&fakeRunner{output: out}, env, "doxygen", t.TempDir(), "Doxyfile", true)
	if err == nil || !strings.Contains(err.Error(), "warning") {
		t.Errorf("Doxygen with werror = %v, want warning error", err)
	}
}

func TestDoxygenNonZeroExit(t *testing.T) {
	env := toolOnPath(t, "doxygen")
	err := Doxygen(&fakeRunner{exit: 2, output: "cannot open Doxyfile\n"}, env, "doxygen", t.TempDir(), "Doxyfile", false)
	if err == nil || !strings.Contains(err.Error(), "status 2") {
		t.Errorf("Doxygen error = %v, want exit-status error", err)
	}
}

func TestGenGetOpt(t *testing.T) {
	env := toolOnPath(t, "gengetopt")
	dir := t.TempDir()
	source := filepath.Join(dir, "options.ggo")

	r := &fakeRunner{}
	cFile, hFile, err := GenGetOpt(r, env, "gengetopt", source, "1.2.3")
	if err != nil {
		t.Fatalf("GenGetOpt: %v", err)
	}
	if want := filepath.Join(dir, "options.c"); cFile != want {
		t.Errorf("cFile = %q, want %q", cFile, want)
	}
	if want := filepath.Join(dir, "options.h"); hFile != want {
		t.Errorf("hFile = %q, want %q", hFile, want)
	}

	call := strings.Join(r.calls[0], " ")
	for _, want := range []string{
		"-i " + source,
		"-F options",
		"--output-dir=" + dir,
		"--set-version=1.2.3",
	} {
		if !strings.Contains(call, want) {
			t.Errorf("call %q missing %q", call, want)
		}
	}
}

func TestGenGetOptMissingTool(t *testing.T) {
	env := map[string]string{"PATH": t.TempDir()}
	_, _, err := GenGetOpt(&fakeRunner{}, env, "gengetopt", "options.ggo", "1.0")
	if err == nil || !strings.Contains(err.Error(), "not found in PATH") {
		t.Errorf("GenGetOpt error = %v, want missing-tool error", err)
	}
}
