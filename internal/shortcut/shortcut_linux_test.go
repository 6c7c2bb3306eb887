//go:build linux

package shortcut

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDesktopEntry(t *testing.T) {
	got := string(desktopEntry("/opt/my tool/run.sh", "run"))

	if !strings.HasPrefix(got, "[Desktop Entry]\n") {
		t.Errorf("Expected [Desktop Entry] header, got %q", got)
	}
	if !strings.Contains(got, "Type=Link\n") {
		t.Errorf("Expected a Link entry, got %q", got)
	}
	if !strings.Contains(got, "Name=run\n") {
		t.Errorf("Expected entry name, got %q", got)
	}
	if !strings.Contains(got, "URL=file:///opt/my%20tool/run.sh\n") {
		t.Errorf("Expected percent-encoded file URL, got %q", got)
	}
}

func TestWriter(t *testing.T) {
	w := NewWriter()

	if got := w.Extension(); got != ".desktop" {
		t.Errorf("Expected extension .desktop, got %q", got)
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "tool")
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("Failed to create target: %v", err)
	}
	link := filepath.Join(dir, "tool.desktop")

	if err := w.CreateLink(target, link); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(link)
	if err != nil {
		t.Fatalf("Expected link file to exist: %v", err)
	}
	if !strings.Contains(string(data), "Name=tool\n") {
		t.Errorf("Expected link named after the file, got %q", string(data))
	}

	info, err := os.Stat(link)
	if err != nil {
		t.Fatalf("Failed to stat link: %v", err)
	}
	if info.Mode()&0o100 == 0 {
		t.Error("Expected link file to be executable")
	}
}

func TestWriter_CreateLinkFailure(t *testing.T) {
	w := NewWriter()

	missingDir := filepath.Join(t.TempDir(), "no", "such", "dir")
	if err := w.CreateLink("/opt/tool", filepath.Join(missingDir, "tool.desktop")); err == nil {
		t.Error("Expected an error for an unwritable link path")
	}
}
