//go:build linux

package shortcut

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

const linkExtension = ".desktop"

// createLink writes a freedesktop.org Link entry pointing at the target.
// The file is marked executable so file managers treat it as trusted.
func createLink(targetPath, linkPath string) error {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("resolving target path: %w", err)
	}
	name := filepath.Base(linkPath)
	name = name[:len(name)-len(filepath.Ext(name))]
	if err := os.WriteFile(linkPath, desktopEntry(abs, name), 0o755); err != nil {
		return fmt.Errorf("writing desktop entry: %w", err)
	}
	return nil
}

// desktopEntry renders a [Desktop Entry] Link section for the absolute
// target path.
func desktopEntry(absTarget, name string) []byte {
	u := url.URL{Scheme: "file", Path: absTarget}
	return []byte(fmt.Sprintf(
		"[Desktop Entry]\nType=Link\nName=%s\nURL=%s\n",
		name, u.String(),
	))
}
