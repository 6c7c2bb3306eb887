//go:build linux

package desktop

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"

	"github.com/godbus/dbus/v5"
)

// D-Bus endpoints used by the Linux implementation.
const (
	portalBusName    = "org.freedesktop.portal.Desktop"
	portalObjectPath = "/org/freedesktop/portal/desktop"
	portalOpenURI    = "org.freedesktop.portal.OpenURI.OpenURI"
	portalTrashFile  = "org.freedesktop.portal.Trash.TrashFile"

	fileManagerBusName     = "org.freedesktop.FileManager1"
	fileManagerObjectPath  = "/org/freedesktop/FileManager1"
	fileManagerShowFolders = "org.freedesktop.FileManager1.ShowFolders"
)

// supported reports whether a graphical session is reachable. Headless
// hosts have neither an X display nor a Wayland socket.
func supported() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func actionSupported(a Action) bool {
	switch a {
	case ActionBrowse, ActionOpen, ActionMoveToTrash:
		return true
	}
	return false
}

// browse asks the XDG desktop portal to open the URL, falling back to
// xdg-open when no portal answers the session bus.
func browse(u *url.URL) error {
	if err := portalCall(portalOpenURI, "", u.String(), map[string]dbus.Variant{}); err != nil {
		slog.Debug("portal OpenURI failed, falling back to xdg-open", "error", err)
		return exec.Command("xdg-open", u.String()).Start()
	}
	return nil
}

// openDirectory shows the directory through org.freedesktop.FileManager1,
// falling back to xdg-open when no file manager claims the bus name.
func openDirectory(dir string) error {
	conn, err := dbus.SessionBus()
	if err == nil {
		obj := conn.Object(fileManagerBusName, fileManagerObjectPath)
		call := obj.Call(fileManagerShowFolders, 0, []string{fileURI(dir)}, "")
		if call.Err == nil {
			return nil
		}
		slog.Debug("FileManager1 ShowFolders failed, falling back to xdg-open", "error", call.Err)
	}
	return exec.Command("xdg-open", dir).Run()
}

// moveToTrash trashes the file through the desktop portal, falling back to
// the XDG trash directory when the portal is unavailable.
func moveToTrash(path string) error {
	if err := portalTrash(path); err != nil {
		slog.Debug("portal TrashFile failed, falling back to XDG trash", "error", err)
		return xdgTrash(path)
	}
	return nil
}

func portalTrash(path string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file for trash portal: %w", err)
	}
	defer f.Close()

	var result uint32
	obj := conn.Object(portalBusName, portalObjectPath)
	if err := obj.Call(portalTrashFile, 0, dbus.UnixFD(f.Fd())).Store(&result); err != nil {
		return fmt.Errorf("calling trash portal: %w", err)
	}
	if result != 1 {
		return fmt.Errorf("trash portal refused the file (result %d)", result)
	}
	return nil
}

func portalCall(method string, args ...any) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	call := conn.Object(portalBusName, portalObjectPath).Call(method, 0, args...)
	if call.Err != nil {
		return fmt.Errorf("calling %s: %w", method, call.Err)
	}
	return nil
}

func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}
