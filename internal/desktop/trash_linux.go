//go:build linux

package desktop

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// xdgTrash moves the file into the user trash directory per the
// freedesktop.org trash specification: the entry goes to Trash/files and a
// .trashinfo sidecar recording origin and deletion time goes to Trash/info.
func xdgTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	trashDir, err := userTrashDir()
	if err != nil {
		return err
	}
	filesDir := filepath.Join(trashDir, "files")
	infoDir := filepath.Join(trashDir, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating trash directory: %w", err)
		}
	}

	name := uniqueTrashName(filesDir, filepath.Base(abs))
	infoPath := filepath.Join(infoDir, name+".trashinfo")

	// The info file is written first and exclusively; freedesktop.org
	// defines it as what reserves the name against concurrent trashers.
	info, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("writing trash info: %w", err)
	}
	if _, err := info.Write(formatTrashInfo(abs, time.Now())); err != nil {
		info.Close()
		os.Remove(infoPath)
		return fmt.Errorf("writing trash info: %w", err)
	}
	if err := info.Close(); err != nil {
		os.Remove(infoPath)
		return fmt.Errorf("writing trash info: %w", err)
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		os.Remove(infoPath)
		return fmt.Errorf("moving file to trash: %w", err)
	}
	return nil
}

// userTrashDir returns $XDG_DATA_HOME/Trash, defaulting the data home to
// ~/.local/share.
func userTrashDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "Trash"), nil
}

// uniqueTrashName returns base if unused in dir, otherwise a name that
// cannot collide with existing trash entries.
func uniqueTrashName(dir, base string) string {
	if _, err := os.Stat(filepath.Join(dir, base)); os.IsNotExist(err) {
		return base
	}
	return uuid.NewString() + "-" + base
}

// formatTrashInfo renders a .trashinfo entry with a percent-encoded
// origin path.
func formatTrashInfo(absPath string, deletedAt time.Time) []byte {
	escaped := (&url.URL{Path: absPath}).EscapedPath()
	return []byte(fmt.Sprintf(
		"[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escaped, deletedAt.Format("2006-01-02T15:04:05"),
	))
}
