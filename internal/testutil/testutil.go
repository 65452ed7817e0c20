// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "dvrc-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})
	return dir
}

// CreateFakeExecutable creates a placeholder executable file for testing
func CreateFakeExecutable(t *testing.T, dir string, name string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("MZ"), 0o755); err != nil {
		t.Fatalf("Failed to create fake executable: %v", err)
	}

	return path
}
