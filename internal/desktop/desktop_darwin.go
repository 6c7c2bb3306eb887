//go:build darwin

package desktop

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

func supported() bool {
	return true
}

func actionSupported(a Action) bool {
	switch a {
	case ActionBrowse, ActionOpen, ActionMoveToTrash:
		return true
	}
	return false
}

func browse(u *url.URL) error {
	return exec.Command("open", u.String()).Start()
}

func openDirectory(dir string) error {
	if output, err := exec.Command("open", dir).CombinedOutput(); err != nil {
		return fmt.Errorf("open %s: %w (output: %s)", dir, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// moveToTrash asks Finder to delete the file, which places it in the
// user's Trash rather than unlinking it.
func moveToTrash(path string) error {
	script := fmt.Sprintf("tell application %q to delete POSIX file %q", "Finder", path)
	if output, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("finder delete: %w (output: %s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}
