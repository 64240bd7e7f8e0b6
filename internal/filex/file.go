// Package filex has small filesystem helpers for the client.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold the database file at
// dsn. In-memory and URI-style DSNs ("file:...") are left alone. It returns
// the directory, or "" when nothing had to be checked.
func EnsureParentDir(dsn string) (string, error) {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return "", nil
	}

	dir := filepath.Dir(dsn)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
