package utils

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// CopyFile copies a regular file from src to dst, creating parent
// directories and preserving the source's mode and modification time.
// Returns the number of bytes copied.
func CopyFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	if err := EnsureParent(dst); err != nil {
		return 0, err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dstFile, srcFile)
	if cerr := dstFile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}

	// O_CREATE mode is subject to umask, chmod settles it
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, err
	}
	if err := os.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		return n, err
	}

	return n, nil
}

// CopySymlink recreates the symlink at src as dst, keeping the original
// link target.
func CopySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(link, dst)
}

// CopyDir recursively copies the directory tree rooted at src to dst,
// preserving file modes and modification times. Symlinks are recreated,
// not followed. Returns the total number of bytes copied.
func CopyDir(src, dst string) (int64, error) {
	var total int64

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())

		case d.Type()&os.ModeSymlink != 0:
			return CopySymlink(path, target)

		default:
			n, err := CopyFile(path, target)
			total += n
			return err
		}
	})

	return total, err
}
