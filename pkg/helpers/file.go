/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package helpers

import (
	"os"
	"path/filepath"
)

func EnsureDirWithoutIds(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

// WriteFile writes content to target creating the missing parent
// directories.
func WriteFile(target, content string) error {
	err := EnsureDirWithoutIds(filepath.Dir(target), 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(target, []byte(content), 0644)
}
