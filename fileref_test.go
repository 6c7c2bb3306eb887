package desktopactions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileRef_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	ref := NewFileRef(path)
	if ref.Exists() {
		t.Error("Expected ref not to exist yet")
	}

	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	// Existence is rechecked on every call, never cached.
	if !ref.Exists() {
		t.Error("Expected ref to exist after creation")
	}

	os.Remove(path)
	if ref.Exists() {
		t.Error("Expected ref to stop existing after removal")
	}
}

func TestFileRef_IsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if !NewFileRef(dir).IsDir() {
		t.Error("Expected directory ref to report IsDir")
	}
	if NewFileRef(file).IsDir() {
		t.Error("Expected file ref not to report IsDir")
	}
	if NewFileRef(filepath.Join(dir, "missing")).IsDir() {
		t.Error("Expected missing ref not to report IsDir")
	}
}

func TestFileRef_Parent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	parent := NewFileRef(file).Parent()
	abs, _ := filepath.Abs(dir)
	if parent.Path != abs {
		t.Errorf("Expected parent %s, got %s", abs, parent.Path)
	}
	if !parent.IsDir() {
		t.Error("Expected parent to be a directory")
	}
}
