package desktopactions

import "net/url"

// std is the process-wide instance behind the package-level functions,
// wired to the host platform.
var std = New()

// Open starts the executable at the given path as a detached process.
func Open(executablePath string) error {
	return std.Open(executablePath)
}

// Browse opens the URL string in the default web browser.
func Browse(rawURL string) error {
	return std.Browse(rawURL)
}

// BrowseURL opens the parsed URL in the default web browser.
func BrowseURL(u *url.URL) error {
	return std.BrowseURL(u)
}

// OpenFileLocation opens the platform file manager with the file
// highlighted where the platform supports it.
func OpenFileLocation(path string) error {
	return std.OpenFileLocation(path)
}

// OpenFileLocationRef opens the platform file manager with the referenced
// file highlighted.
func OpenFileLocationRef(ref *FileRef) error {
	return std.OpenFileLocationRef(ref)
}

// OpenFileDirectory opens the directory at the given path in the platform
// file manager.
func OpenFileDirectory(path string) error {
	return std.OpenFileDirectory(path)
}

// OpenFileDirectoryRef opens the referenced directory in the platform file
// manager.
func OpenFileDirectoryRef(ref *FileRef) error {
	return std.OpenFileDirectoryRef(ref)
}

// MoveToTrash moves the file at the given path to the platform trash.
func MoveToTrash(path string) error {
	return std.MoveToTrash(path)
}

// MoveToTrashRef moves the referenced file to the platform trash.
func MoveToTrashRef(ref *FileRef) error {
	return std.MoveToTrashRef(ref)
}

// CreateShortcut creates a desktop shortcut to targetPath at the default
// Desktop location.
func CreateShortcut(targetPath string) error {
	return std.CreateShortcut(targetPath)
}

// CreateShortcutAt creates a shortcut to targetPath at the given link path.
func CreateShortcutAt(targetPath, linkPath string) error {
	return std.CreateShortcutAt(targetPath, linkPath)
}

// IsDesktopSupported reports whether desktop services are available on the
// host platform.
func IsDesktopSupported() bool {
	return std.IsDesktopSupported()
}
