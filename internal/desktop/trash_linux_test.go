//go:build linux

package desktop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatTrashInfo(t *testing.T) {
	deletedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := string(formatTrashInfo("/home/user/old file.txt", deletedAt))

	if !strings.HasPrefix(got, "[Trash Info]\n") {
		t.Errorf("Expected [Trash Info] header, got %q", got)
	}
	if !strings.Contains(got, "Path=/home/user/old%20file.txt\n") {
		t.Errorf("Expected percent-encoded origin path, got %q", got)
	}
	if !strings.Contains(got, "DeletionDate=2025-03-14T09:26:53\n") {
		t.Errorf("Expected deletion date, got %q", got)
	}
}

func TestUniqueTrashName(t *testing.T) {
	dir := t.TempDir()

	if got := uniqueTrashName(dir, "file.txt"); got != "file.txt" {
		t.Errorf("Expected unused base name to pass through, got %q", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	got := uniqueTrashName(dir, "file.txt")
	if got == "file.txt" {
		t.Error("Expected a different name for a colliding entry")
	}
	if !strings.HasSuffix(got, "-file.txt") {
		t.Errorf("Expected original name kept as suffix, got %q", got)
	}
}

func TestXDGTrash(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	file := filepath.Join(t.TempDir(), "doomed.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := xdgTrash(file); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("Expected file to be gone from its origin")
	}
	if _, err := os.Stat(filepath.Join(dataHome, "Trash", "files", "doomed.txt")); err != nil {
		t.Errorf("Expected trashed file in Trash/files: %v", err)
	}

	info, err := os.ReadFile(filepath.Join(dataHome, "Trash", "info", "doomed.txt.trashinfo"))
	if err != nil {
		t.Fatalf("Expected a .trashinfo sidecar: %v", err)
	}
	if !strings.Contains(string(info), "Path=") {
		t.Errorf("Expected origin path in trash info, got %q", string(info))
	}
}
