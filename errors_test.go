package desktopactions

import (
	"errors"
	"strings"
	"testing"
)

func TestOpError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &OpError{Op: OpBrowse, Path: "https://example.com", Err: cause}

	if !strings.Contains(err.Error(), "browse") {
		t.Errorf("Expected message to name the operation, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "https://example.com") {
		t.Errorf("Expected message to include the target, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
}

func TestOpError_NoPath(t *testing.T) {
	err := &OpError{Op: OpOpen, Err: errors.New("boom")}

	if strings.Contains(err.Error(), "  ") {
		t.Errorf("Expected no doubled spaces without a path, got %q", err.Error())
	}
}

func TestOpError_ShortcutMessage(t *testing.T) {
	err := &OpError{Op: OpCreateShortcut, Path: "/home/x/Desktop/tool.lnk", Err: errors.New("disk full")}

	if !strings.Contains(err.Error(), "unable to create desktop shortcut") {
		t.Errorf("Expected the stable shortcut failure message, got %q", err.Error())
	}
}

func TestInvalidURLError(t *testing.T) {
	cause := errors.New("first path segment in URL cannot contain colon")
	err := &InvalidURLError{URL: "not a url", Err: cause}

	if !strings.Contains(err.Error(), "not a url") {
		t.Errorf("Expected message to carry the offending string, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the parse error")
	}
}
