// Package toolchain inspects compiler-like executables: it detects
// their version, their target triple, and their location on PATH.
//
// All detection functions are best-effort: a missing or broken tool is
// a normal outcome during configuration, so they report "not found"
// instead of returning errors.
package toolchain

import (
	"errors"
	"os"
	"os/exec"
)

// Result holds the outcome of a single external program invocation.
type Result struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Runner spawns an external program and blocks until it exits.
// The returned error is non-nil only when the program could not be
// started at all; a non-zero exit status is reported via Result.
type Runner interface {
	Run(prog string, args ...string) (Result, error)
}

type execRunner struct {
	env map[string]string
}

// NewRunner returns an exec-backed Runner. Entries in env override the
// process environment of spawned programs; a nil map inherits the
// caller's environment unchanged.
func NewRunner(env map[string]string) Runner {
	return &execRunner{env: env}
}

func (r *execRunner) Run(prog string, args ...string) (Result, error) {
	cmd := exec.Command(prog, args...)
	if len(r.env) > 0 {
		cmd.Env = overlayEnv(r.env)
	}
	// Stdin is left nil so spawned tools read from the null device.
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		return Result{ExitCode: exitErr.ExitCode(), Output: string(out)}, nil
	}
	return Result{Output: string(out)}, nil
}

// overlayEnv merges overrides on top of the current process environment.
func overlayEnv(overrides map[string]string) []string {
	env := os.Environ()
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}
