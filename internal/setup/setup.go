// Package setup orchestrates the one-time themes bootstrap: clone the
// WordPress repository, copy the bundled default themes into a local
// directory, remove the clone, and fix ownership and permissions on the
// result.
package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/wptools/themeclone/internal/utils"
)

const (
	// RepoURL is the upstream WordPress repository the themes ship in.
	RepoURL = "https://github.com/WordPress/WordPress.git"

	// TempDir is the staging directory for the clone, relative to the
	// working directory. It must not exist by the end of a successful run.
	TempDir = "temp-wp"

	// ThemesDir is the destination directory, relative to the working
	// directory.
	ThemesDir = "themes"

	lockFileName = ".themeclone.lock"
)

var ErrAlreadyRunning = errors.New("another themeclone run is in progress")

// Setup runs the bootstrap sequence against a fixed set of paths.
type Setup struct {
	RepoURL   string
	TempDir   string
	ThemesDir string

	shell    string
	permCmd  string
	lockPath string
}

func New() *Setup {
	return &Setup{
		RepoURL:   RepoURL,
		TempDir:   TempDir,
		ThemesDir: ThemesDir,
		shell:     zshPath,
		permCmd:   permFixCmd,
		lockPath:  lockFileName,
	}
}

// Run executes the four steps in order and stops at the first error.
// There is no rollback: a copy or cleanup failure leaves the temp clone in
// place, and a permission-fix failure leaves the copied themes as-is.
func (s *Setup) Run(ctx context.Context) (err error) {
	fl := flock.New(s.lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock %q: %w", s.lockPath, err)
	}
	if !locked {
		return ErrAlreadyRunning
	}
	defer func() {
		if uerr := releaseLock(fl); uerr != nil && err == nil {
			err = uerr
		}
	}()

	slog.Info("cloning WordPress repository", "url", s.RepoURL, "dir", s.TempDir)
	if err := s.fetch(ctx); err != nil {
		return err
	}

	slog.Info("copying themes", "dest", s.ThemesDir)
	copied, skipped, size, err := s.copyThemes()
	if err != nil {
		return err
	}
	slog.Info("themes copied", "copied", copied, "skipped", skipped, "size", humanize.Bytes(uint64(size)))

	slog.Info("removing temp clone", "dir", s.TempDir)
	if err := s.cleanup(); err != nil {
		return err
	}

	slog.Info("fixing ownership and permissions", "dir", s.ThemesDir)
	return s.fixPermissions(ctx)
}

// releaseLock drops the run lock and removes the lock file. Only the
// process that holds the lock may delete the file.
func releaseLock(fl *flock.Flock) error {
	if !fl.Locked() {
		return nil
	}
	if err := fl.Unlock(); err != nil {
		return fmt.Errorf("release run lock: %w", err)
	}
	return os.Remove(fl.Path())
}

// cleanup removes the temp clone. A missing temp directory is an error: it
// means the sequence ran out of order.
func (s *Setup) cleanup() error {
	if !utils.DirExists(s.TempDir) {
		return fmt.Errorf("temp dir %q does not exist", s.TempDir)
	}
	if err := os.RemoveAll(s.TempDir); err != nil {
		return fmt.Errorf("remove temp dir: %w", err)
	}
	return nil
}
