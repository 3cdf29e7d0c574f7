// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that should contain fileName, if it
// does not exist yet, and returns its path. A bare file name resolves to the
// working directory and needs no creation.
func EnsureParentDir(fileName string) (string, error) {
	dir := filepath.Dir(fileName)
	if dir == "." {
		return dir, nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
