package setup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var ErrGitNotAvailable = errors.New("git is not available on this system")

// fetch shallow-clones the repository into the temp directory. Full history
// is never needed, the themes are taken from the latest checkout.
func (s *Setup) fetch(ctx context.Context) error {
	if !systemGitAvailable() {
		return ErrGitNotAvailable
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth=1", s.RepoURL, s.TempDir)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone failed: %q: %w", strings.TrimSpace(stderr.String()), err)
	}

	return nil
}

// systemGitAvailable checks if the "git" executable can be found in the system's PATH.
func systemGitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
