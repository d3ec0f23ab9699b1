package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile writes content to fileName with owner-only permissions
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// TempFilePath returns a path inside a per-test directory that is removed after the test
func TempFilePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
