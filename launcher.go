package desktopactions

import "os/exec"

// Launcher spawns external processes. It is consulted for OpenExecutable and
// for the Windows reveal-and-select branch of OpenFileLocation, and is
// substitutable in tests.
type Launcher interface {
	// Start spawns the command detached. It returns once the process has
	// been launched; it never waits for completion.
	Start(name string, args ...string) error
}

// execLauncher spawns processes with os/exec.
type execLauncher struct{}

func (execLauncher) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
