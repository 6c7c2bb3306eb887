//go:build !linux && !darwin && !windows

package shortcut

import (
	"fmt"
	"runtime"
)

const linkExtension = ""

func createLink(targetPath, linkPath string) error {
	return fmt.Errorf("desktop shortcuts unavailable on %s", runtime.GOOS)
}
