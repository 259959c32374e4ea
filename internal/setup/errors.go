package setup

import (
	"errors"
	"os/exec"
)

// IsMissingTool reports whether err means a required external binary (git,
// zsh) could not be located.
func IsMissingTool(err error) bool {
	return errors.Is(err, ErrGitNotAvailable) ||
		errors.Is(err, ErrShellNotAvailable) ||
		errors.Is(err, exec.ErrNotFound)
}

// IsCommandFailure reports whether err wraps a non-zero exit from an
// external command.
func IsCommandFailure(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
