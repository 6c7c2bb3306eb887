//go:build !linux && !darwin && !windows

package desktop

import (
	"fmt"
	"net/url"
	"runtime"
)

func supported() bool {
	return false
}

func actionSupported(Action) bool {
	return false
}

func browse(*url.URL) error {
	return errUnsupported()
}

func openDirectory(string) error {
	return errUnsupported()
}

func moveToTrash(string) error {
	return errUnsupported()
}

func errUnsupported() error {
	return fmt.Errorf("desktop services unavailable on %s", runtime.GOOS)
}
