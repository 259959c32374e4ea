package utils

import (
	"os"
	"path/filepath"
)

func EnsureParent(path string) error {
	return EnsureDir(filepath.Dir(path))
}

func EnsureDir(path string) error {
	// already exists
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.MkdirAll(path, 0o755)
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists reports whether anything (file, dir, symlink) exists at path.
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
