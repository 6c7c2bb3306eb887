// Package desktopactions is a thin cross-platform facade over native
// desktop-integration primitives: launching the default browser, starting
// an executable, revealing a file in the platform file manager, moving a
// file to the trash, and creating a desktop shortcut.
//
// Every operation is a short validate-then-delegate pipeline: validate
// input, probe the platform capability, delegate to the platform primitive,
// and translate any failure into the package error family. Operations hold
// no state between calls and are safe for concurrent use.
package desktopactions

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/SundenJaeger/DesktopActions/internal/desktop"
	"github.com/SundenJaeger/DesktopActions/internal/shortcut"
)

// Action identifies a desktop-services capability that can be probed
// before delegation.
type Action = desktop.Action

// Probe-able desktop-services actions.
const (
	ActionBrowse      = desktop.ActionBrowse
	ActionOpen        = desktop.ActionOpen
	ActionMoveToTrash = desktop.ActionMoveToTrash
)

// Services is the platform desktop-services capability consulted by the
// facade. Probing and delegation are separate steps so a failure before
// invocation is distinguishable from a failure during invocation.
type Services interface {
	// Supported reports whether desktop services are available at all
	Supported() bool

	// ActionSupported reports whether the specific action is available
	ActionSupported(a Action) bool

	// Browse opens the default web browser on the URL
	Browse(u *url.URL) error

	// Open opens the directory in the platform file manager
	Open(dir string) error

	// MoveToTrash moves the file to the platform trash or recycle bin
	MoveToTrash(path string) error
}

// ShortcutWriter produces a platform shortcut artifact from a
// (target, link) path pair.
type ShortcutWriter interface {
	// Extension returns the platform shortcut file extension, including
	// the leading dot, or "" when the artifact carries none
	Extension() string

	// CreateLink writes a shortcut at linkPath pointing at targetPath
	CreateLink(targetPath, linkPath string) error
}

// Providers carries the collaborators an Actions instance delegates to.
// Zero fields are replaced with the platform defaults, so tests inject only
// what they need to observe.
type Providers struct {
	Services  Services
	Shortcuts ShortcutWriter
	Launcher  Launcher
	GOOS      string                 // host OS, defaults to runtime.GOOS
	HomeDir   func() (string, error) // defaults to os.UserHomeDir
}

// Actions performs desktop operations through injected platform providers.
// The zero value is not usable; construct with New or NewWithProviders.
type Actions struct {
	services  Services
	shortcuts ShortcutWriter
	launcher  Launcher
	goos      string
	homeDir   func() (string, error)
}

// New creates an Actions wired to the host platform.
func New() *Actions {
	return NewWithProviders(Providers{})
}

// NewWithProviders creates an Actions from the given providers, filling in
// platform defaults for any zero field.
func NewWithProviders(p Providers) *Actions {
	if p.Services == nil {
		p.Services = desktop.New()
	}
	if p.Shortcuts == nil {
		p.Shortcuts = shortcut.NewWriter()
	}
	if p.Launcher == nil {
		p.Launcher = execLauncher{}
	}
	if p.GOOS == "" {
		p.GOOS = runtime.GOOS
	}
	if p.HomeDir == nil {
		p.HomeDir = os.UserHomeDir
	}
	return &Actions{
		services:  p.Services,
		shortcuts: p.Shortcuts,
		launcher:  p.Launcher,
		goos:      p.GOOS,
		homeDir:   p.HomeDir,
	}
}

// Open starts the executable at the given path as a detached process. The
// raw string is the command; no argument splitting is performed, so spaces
// remain part of the path. The call returns once the process has been
// spawned and never waits for it to exit.
func (a *Actions) Open(executablePath string) error {
	if isBlank(executablePath) {
		return ErrPathEmpty
	}
	if err := a.launcher.Start(executablePath); err != nil {
		return &OpError{Op: OpOpen, Path: executablePath, Err: err}
	}
	return nil
}

// Browse opens the URL string in the default web browser. The string must
// parse as an absolute URL; a parse failure is reported as
// *InvalidURLError carrying the offending string.
func (a *Actions) Browse(rawURL string) error {
	if isBlank(rawURL) {
		return ErrURLEmpty
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return &InvalidURLError{URL: rawURL, Err: err}
	}
	return a.BrowseURL(u)
}

// BrowseURL opens the parsed URL in the default web browser.
func (a *Actions) BrowseURL(u *url.URL) error {
	if u == nil {
		return ErrURLEmpty
	}
	if !a.services.Supported() || !a.services.ActionSupported(ActionBrowse) {
		return ErrNotSupported
	}
	if err := a.services.Browse(u); err != nil {
		return &OpError{Op: OpBrowse, Path: u.String(), Err: err}
	}
	return nil
}

// OpenFileLocation opens the platform file manager with the file
// highlighted where the platform supports it.
func (a *Actions) OpenFileLocation(path string) error {
	if isBlank(path) {
		return ErrPathEmpty
	}
	return a.OpenFileLocationRef(NewFileRef(path))
}

// OpenFileLocationRef opens the platform file manager with the referenced
// file highlighted. There is no universal reveal-and-select API: Windows
// Explorer accepts a /select, argument, everywhere else the call degrades
// to opening the containing folder without selection.
func (a *Actions) OpenFileLocationRef(ref *FileRef) error {
	if ref == nil || !ref.Exists() {
		return ErrFileNotFound
	}
	if a.goos == "windows" {
		if err := a.launcher.Start("explorer", "/select,", ref.Abs()); err != nil {
			return &OpError{Op: OpFileLocation, Path: ref.Path, Err: err}
		}
		return nil
	}
	return a.OpenFileDirectoryRef(ref.Parent())
}

// OpenFileDirectory opens the directory at the given path in the platform
// file manager.
func (a *Actions) OpenFileDirectory(path string) error {
	if isBlank(path) {
		return ErrPathEmpty
	}
	return a.OpenFileDirectoryRef(NewFileRef(path))
}

// OpenFileDirectoryRef opens the referenced directory in the platform file
// manager. The reference must exist and be a directory.
func (a *Actions) OpenFileDirectoryRef(ref *FileRef) error {
	if ref == nil || !ref.Exists() {
		return ErrFileNotFound
	}
	if !ref.IsDir() {
		return ErrNotADirectory
	}
	if !a.services.Supported() || !a.services.ActionSupported(ActionOpen) {
		return ErrNotSupported
	}
	if err := a.services.Open(ref.Abs()); err != nil {
		return &OpError{Op: OpFileDirectory, Path: ref.Path, Err: err}
	}
	return nil
}

// MoveToTrash moves the file at the given path to the platform trash or
// recycle bin, from where it can typically be restored.
func (a *Actions) MoveToTrash(path string) error {
	if isBlank(path) {
		return ErrPathEmpty
	}
	return a.MoveToTrashRef(NewFileRef(path))
}

// MoveToTrashRef moves the referenced file to the platform trash or
// recycle bin.
func (a *Actions) MoveToTrashRef(ref *FileRef) error {
	if ref == nil || !ref.Exists() {
		return ErrFileNotFound
	}
	if !a.services.Supported() || !a.services.ActionSupported(ActionMoveToTrash) {
		return ErrNotSupported
	}
	if err := a.services.MoveToTrash(ref.Abs()); err != nil {
		return &OpError{Op: OpMoveToTrash, Path: ref.Path, Err: err}
	}
	return nil
}

// CreateShortcut creates a desktop shortcut to targetPath at the default
// location: the user's Desktop directory, named after the target's base
// name with its last extension replaced by the platform shortcut extension.
func (a *Actions) CreateShortcut(targetPath string) error {
	if isBlank(targetPath) {
		return ErrTargetPathEmpty
	}
	linkPath, err := a.defaultLinkPath(targetPath)
	if err != nil {
		return &OpError{Op: OpCreateShortcut, Path: targetPath, Err: err}
	}
	return a.createLink(targetPath, linkPath)
}

// CreateShortcutAt creates a shortcut to targetPath at the given link path.
func (a *Actions) CreateShortcutAt(targetPath, linkPath string) error {
	if isBlank(targetPath) {
		return ErrTargetPathEmpty
	}
	if isBlank(linkPath) {
		return ErrLinkPathEmpty
	}
	return a.createLink(targetPath, linkPath)
}

// IsDesktopSupported reports whether desktop services are available on the
// host platform. It never fails.
func (a *Actions) IsDesktopSupported() bool {
	return a.services.Supported()
}

func (a *Actions) createLink(targetPath, linkPath string) error {
	if err := a.shortcuts.CreateLink(targetPath, linkPath); err != nil {
		return &OpError{Op: OpCreateShortcut, Path: linkPath, Err: err}
	}
	return nil
}

// defaultLinkPath computes <home>/Desktop/<base without last ext><ext of
// the shortcut writer>. Only the text after the final '.' is stripped, so
// "my.tool.v1.exe" keeps the base name "my.tool.v1".
func (a *Actions) defaultLinkPath(targetPath string) (string, error) {
	home, err := a.homeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	base := filepath.Base(targetPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(home, "Desktop", base+a.shortcuts.Extension()), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
