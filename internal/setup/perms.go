package setup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	zshPath = "/bin/zsh"

	// permFixCmd hands ownership of the themes tree back to the invoking
	// user. The clone runs as that user already, but sudo covers setups
	// where the working directory itself is root-owned.
	permFixCmd = "sudo chown -R $USER:$USER themes && chmod -R 775 themes"
)

var ErrShellNotAvailable = errors.New("zsh is not available on this system")

// fixPermissions runs the ownership/permission command line through the
// required shell.
func (s *Setup) fixPermissions(ctx context.Context) error {
	if _, err := exec.LookPath(s.shell); err != nil {
		return ErrShellNotAvailable
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.shell, "-c", s.permCmd)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("permission fix failed: %q: %w", strings.TrimSpace(stderr.String()), err)
	}

	return nil
}
