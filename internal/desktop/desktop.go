package desktop

import "net/url"

// Action identifies a desktop-services capability
type Action string

const (
	// ActionBrowse opens URLs in the default web browser
	ActionBrowse Action = "browse"

	// ActionOpen opens directories in the file manager
	ActionOpen Action = "open"

	// ActionMoveToTrash moves files to the trash or recycle bin
	ActionMoveToTrash Action = "move_to_trash"
)

// String returns the string representation of the action.
func (a Action) String() string {
	return string(a)
}

// Desktop is the desktop-services capability of the host platform. The
// zero value is ready to use; all methods dispatch to the implementation
// compiled for the current GOOS.
type Desktop struct{}

// New creates a Desktop for the host platform.
func New() *Desktop {
	return &Desktop{}
}

// Supported reports whether desktop services are available at all.
func (d *Desktop) Supported() bool {
	return supported()
}

// ActionSupported reports whether the given action is available.
func (d *Desktop) ActionSupported(a Action) bool {
	return supported() && actionSupported(a)
}

// Browse opens the default web browser on the URL.
func (d *Desktop) Browse(u *url.URL) error {
	return browse(u)
}

// Open opens the directory in the platform file manager.
func (d *Desktop) Open(dir string) error {
	return openDirectory(dir)
}

// MoveToTrash moves the file to the platform trash or recycle bin.
func (d *Desktop) MoveToTrash(path string) error {
	return moveToTrash(path)
}
