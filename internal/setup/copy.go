package setup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/wptools/themeclone/internal/utils"
)

// copyThemes copies each direct child of the clone's theme directory into
// the destination, skipping any entry whose name already exists there. An
// existing entry is never inspected further, only skipped wholesale.
// Returns the number of entries copied, skipped, and total bytes copied.
func (s *Setup) copyThemes() (int, int, int64, error) {
	src := filepath.Join(s.TempDir, "wp-content", "themes")

	if err := utils.EnsureDir(s.ThemesDir); err != nil {
		return 0, 0, 0, fmt.Errorf("create themes dir %q: %w", s.ThemesDir, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read themes source: %w", err)
	}

	var copied, skipped int
	var total int64

	for _, entry := range entries {
		dst := filepath.Join(s.ThemesDir, entry.Name())
		if utils.PathExists(dst) {
			slog.Warn("skipping existing theme", "name", entry.Name())
			skipped++
			continue
		}

		var n int64
		switch {
		case entry.Type()&os.ModeSymlink != 0:
			err = utils.CopySymlink(filepath.Join(src, entry.Name()), dst)
		case entry.IsDir():
			n, err = utils.CopyDir(filepath.Join(src, entry.Name()), dst)
		default:
			n, err = utils.CopyFile(filepath.Join(src, entry.Name()), dst)
		}
		if err != nil {
			return copied, skipped, total, fmt.Errorf("copy theme %q: %w", entry.Name(), err)
		}

		slog.Debug("copied theme", "name", entry.Name(), "size", humanize.Bytes(uint64(n)))
		copied++
		total += n
	}

	return copied, skipped, total, nil
}
