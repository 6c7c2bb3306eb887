package shortcut

// Writer produces shortcut files in the host platform's native format.
type Writer struct{}

// NewWriter creates a Writer for the host platform.
func NewWriter() *Writer {
	return &Writer{}
}

// Extension returns the platform shortcut file extension including the
// leading dot, or "" when the artifact carries none.
func (w *Writer) Extension() string {
	return linkExtension
}

// CreateLink writes a shortcut at linkPath pointing at targetPath.
func (w *Writer) CreateLink(targetPath, linkPath string) error {
	return createLink(targetPath, linkPath)
}
