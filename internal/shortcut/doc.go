package shortcut

// Package shortcut writes platform shortcut artifacts: .lnk shell links on
// Windows, .desktop Link entries on Linux, and plain symlinks on macOS.
