//go:build windows

package shortcut

import (
	"fmt"
	"os/exec"
	"strings"
)

const linkExtension = ".lnk"

// createLink writes a shell link by scripting WScript.Shell through
// PowerShell; there is no Win32 API reachable from the standard library
// that produces .lnk files.
func createLink(targetPath, linkPath string) error {
	script := fmt.Sprintf(
		"$s = (New-Object -ComObject WScript.Shell).CreateShortcut('%s'); $s.TargetPath = '%s'; $s.Save()",
		escapeSingleQuotes(linkPath), escapeSingleQuotes(targetPath),
	)
	cmd := exec.Command("powershell.exe",
		"-NoProfile", "-NonInteractive", "-Command", script,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("writing shell link: %w (output: %s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// escapeSingleQuotes doubles single quotes for PowerShell string literals.
func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
