package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkDir(t *testing.T) {
	workDir, err := WorkDir()
	if err != nil {
		t.Fatalf("WorkDir() returned error: %v", err)
	}
	if workDir == "" {
		t.Fatal("WorkDir() returned empty path")
	}

	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		t.Fatalf("os.UserCacheDir() returned error: %v", err)
	}
	if want := filepath.Join(userCacheDir, "confkit"); workDir != want {
		t.Errorf("WorkDir() = %q, want %q", workDir, want)
	}
}
