//go:build darwin

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
)

// macOS has no user-writable shell-link format; shortcuts are plain
// symlinks and carry no extension.
const linkExtension = ""

func createLink(targetPath, linkPath string) error {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("resolving target path: %w", err)
	}
	if err := os.Symlink(abs, linkPath); err != nil {
		return fmt.Errorf("creating symlink: %w", err)
	}
	return nil
}
