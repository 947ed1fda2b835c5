package util

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// PathSize returns the size in bytes of the file at path, or the recursive
// total of regular files for a directory.
func PathSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return uint64(info.Size()), nil
	}
	return DirSize(path)
}

// DirSize walks root and sums the sizes of all regular files. Unreadable
// entries are logged and skipped rather than failing the whole walk.
func DirSize(root string) (uint64, error) {
	var total uint64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("skipping unreadable entry", "path", path, "err", err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			slog.Debug("skipping entry without file info", "path", path, "err", ierr)
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking %s: %w", root, err)
	}
	return total, nil
}
