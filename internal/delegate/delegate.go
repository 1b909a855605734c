// Package delegate resolves the launcher's own install directory and runs
// the delegate executable that performs the actual module-creation work.
// The delegate's argument grammar, output, and exit codes are opaque here:
// this package only finds it, starts it, and reports how it ended.
package delegate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrDirectoryResolution reports that the launcher could not determine
	// or enter its own containing directory.
	ErrDirectoryResolution = errors.New("directory resolution failed")

	// ErrDelegateNotFound reports that the delegate executable is missing
	// or not executable in the resolved directory.
	ErrDelegateNotFound = errors.New("delegate not found")
)

// ResolveBaseDir returns the directory containing the running executable,
// with symlinks resolved, independent of the caller's working directory.
func ResolveBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryResolution, err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryResolution, err)
	}
	return filepath.Dir(resolved), nil
}

// Enter changes the process's working directory to dir.
func Enter(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("%w: %v", ErrDirectoryResolution, err)
	}
	return nil
}

// Locate verifies that name exists in dir as an executable regular file
// and returns its full path. PATH is deliberately never searched: the
// delegate must sit next to the launcher.
func Locate(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDelegateNotFound, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrDelegateNotFound, path)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return "", fmt.Errorf("%w: %s is not executable", ErrDelegateNotFound, path)
	}
	return path, nil
}
