package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UsesFixedPaths(t *testing.T) {
	s := New()
	assert.Equal(t, RepoURL, s.RepoURL)
	assert.Equal(t, TempDir, s.TempDir)
	assert.Equal(t, ThemesDir, s.ThemesDir)
	assert.Equal(t, zshPath, s.shell)
	assert.Equal(t, permFixCmd, s.permCmd)
}

func TestRun_FullSequence(t *testing.T) {
	if !systemGitAvailable() {
		t.Skip("git not available")
	}

	repoDir := initThemesRepo(t)
	root := t.TempDir()
	s := &Setup{
		RepoURL:   repoDir,
		TempDir:   filepath.Join(root, "temp-wp"),
		ThemesDir: filepath.Join(root, "themes"),
		shell:     "sh",
		permCmd:   "true",
		lockPath:  filepath.Join(root, ".themeclone.lock"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	require.NoError(t, s.Run(ctx))

	// themes landed, temp clone gone, run lock released
	assert.FileExists(t, filepath.Join(s.ThemesDir, "twentytwenty", "style.css"))
	assert.FileExists(t, filepath.Join(s.ThemesDir, "twentyseventeen", "style.css"))
	assert.NoDirExists(t, s.TempDir)
	assert.NoFileExists(t, s.lockPath)
}

func TestRun_RefusesConcurrentRun(t *testing.T) {
	root := t.TempDir()
	lockPath := filepath.Join(root, ".themeclone.lock")

	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer fl.Unlock()

	s := &Setup{
		RepoURL:   "unused",
		TempDir:   filepath.Join(root, "temp-wp"),
		ThemesDir: filepath.Join(root, "themes"),
		lockPath:  lockPath,
	}

	err = s.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.NoDirExists(t, s.TempDir)
}

func TestCleanup_RemovesTempDir(t *testing.T) {
	root := t.TempDir()
	s := &Setup{TempDir: filepath.Join(root, "temp-wp")}

	require.NoError(t, os.MkdirAll(filepath.Join(s.TempDir, "wp-content"), 0o755))
	mustWrite(t, filepath.Join(s.TempDir, "wp-content", "index.php"), "<?php\n")

	require.NoError(t, s.cleanup())
	assert.NoDirExists(t, s.TempDir)
}

func TestCleanup_FailsWhenTempDirMissing(t *testing.T) {
	s := &Setup{TempDir: filepath.Join(t.TempDir(), "never-created")}
	require.Error(t, s.cleanup())
}

func TestFixPermissions_ShellMissing(t *testing.T) {
	s := &Setup{
		shell:   filepath.Join(t.TempDir(), "no-such-shell"),
		permCmd: "true",
	}

	err := s.fixPermissions(context.Background())
	require.ErrorIs(t, err, ErrShellNotAvailable)
	assert.True(t, IsMissingTool(err))
}

func TestFixPermissions_CommandFailure(t *testing.T) {
	s := &Setup{
		shell:   "sh",
		permCmd: "echo broken >&2; exit 3",
	}

	err := s.fixPermissions(context.Background())
	require.Error(t, err)
	assert.True(t, IsCommandFailure(err))
	assert.Contains(t, err.Error(), "broken")
}
