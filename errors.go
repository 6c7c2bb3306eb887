package desktopactions

import (
	"errors"
	"fmt"
)

// Validation errors reported before any platform primitive is invoked.
// Callers can match them with errors.Is.
var (
	// ErrURLEmpty means a URL argument was empty or whitespace-only
	ErrURLEmpty = errors.New("url cannot be empty")

	// ErrPathEmpty means a file path argument was empty or whitespace-only
	ErrPathEmpty = errors.New("file path cannot be empty")

	// ErrTargetPathEmpty means a shortcut target path was empty or whitespace-only
	ErrTargetPathEmpty = errors.New("target path cannot be empty")

	// ErrLinkPathEmpty means a shortcut link path was empty or whitespace-only
	ErrLinkPathEmpty = errors.New("link path cannot be empty")

	// ErrFileNotFound means the referenced file or directory does not exist
	ErrFileNotFound = errors.New("file does not exist")

	// ErrNotADirectory means the path exists but a directory was required
	ErrNotADirectory = errors.New("file is not a directory")

	// ErrNotSupported means the platform lacks desktop services or the
	// specific action requested
	ErrNotSupported = errors.New("desktop actions not supported")
)

// Operation names recorded in OpError.
const (
	OpOpen           = "open"
	OpBrowse         = "browse"
	OpFileLocation   = "open file location"
	OpFileDirectory  = "open directory"
	OpMoveToTrash    = "move to trash"
	OpCreateShortcut = "create shortcut"
)

// OpError records a delegated platform call that failed during invocation.
// It always carries the underlying platform error as its cause.
type OpError struct {
	Op   string // one of the Op* constants
	Path string // file path or URL the operation was invoked on
	Err  error
}

// Error returns the formatted error message.
func (e *OpError) Error() string {
	if e.Op == OpCreateShortcut {
		// Message kept stable for callers that surface it directly.
		return "unable to create desktop shortcut: " + e.Err.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying platform error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// InvalidURLError means a URL string could not be parsed. It carries the
// offending string and the parse error as cause.
type InvalidURLError struct {
	URL string
	Err error
}

// Error returns the formatted error message.
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %v", e.URL, e.Err)
}

// Unwrap returns the parse error.
func (e *InvalidURLError) Unwrap() error {
	return e.Err
}
