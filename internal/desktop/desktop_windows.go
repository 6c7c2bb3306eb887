//go:build windows

package desktop

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32              = windows.NewLazySystemDLL("shell32.dll")
	procSHFileOperationW = shell32.NewProc("SHFileOperationW")
)

// SHFileOperationW constants.
const (
	foDelete          = 0x0003
	fofSilent         = 0x0004
	fofNoConfirmation = 0x0010
	fofAllowUndo      = 0x0040
	fofNoErrorUI      = 0x0400
)

type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

func supported() bool {
	return true
}

func actionSupported(a Action) bool {
	switch a {
	case ActionBrowse, ActionOpen, ActionMoveToTrash:
		return true
	}
	return false
}

func browse(u *url.URL) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", u.String()).Start()
}

// openDirectory spawns Explorer without waiting: explorer.exe reports a
// nonzero exit code even on success.
func openDirectory(dir string) error {
	return exec.Command("explorer", dir).Start()
}

// moveToTrash sends the file to the Recycle Bin via SHFileOperationW with
// FOF_ALLOWUNDO.
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	from, err := windows.UTF16FromString(abs)
	if err != nil {
		return fmt.Errorf("encoding path: %w", err)
	}
	// pFrom is a double-NUL-terminated list of paths.
	from = append(from, 0)

	op := shFileOpStruct{
		wFunc:  foDelete,
		pFrom:  &from[0],
		fFlags: fofAllowUndo | fofNoConfirmation | fofSilent | fofNoErrorUI,
	}
	ret, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return fmt.Errorf("shell file operation failed with code %#x", ret)
	}
	if op.fAnyOperationsAborted != 0 {
		return errors.New("shell file operation aborted")
	}
	return nil
}
