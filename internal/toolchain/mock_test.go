package toolchain

import "errors"

// mockRunner implements Runner for unit testing with canned output.
type mockRunner struct {
	runFunc func(prog string, args ...string) (Result, error)
	calls   [][]string
}

var errSpawn = errors.New("no such file or directory")

func (m *mockRunner) Run(prog string, args ...string) (Result, error) {
	m.calls = append(m.calls, append([]string{prog}, args...))
	if m.runFunc != nil {
		return m.runFunc(prog, args...)
	}
	return Result{}, nil
}

// cannedRunner returns canned output per flag: "--version",
// "-dumpversion" or "-v".
func cannedRunner(byFlag map[string]string) *mockRunner {
	return &mockRunner{
		runFunc: func(prog string, args ...string) (Result, error) {
			if len(args) == 0 {
				return Result{}, nil
			}
			out, ok := byFlag[args[0]]
			if !ok {
				return Result{ExitCode: 1}, nil
			}
			return Result{Output: out}, nil
		},
	}
}

// failingRunner simulates a missing executable: every spawn fails.
var failingRunner = &mockRunner{
	runFunc: func(prog string, args ...string) (Result, error) {
		return Result{}, errSpawn
	},
}
