package desktop

// Package desktop provides the host desktop-services capability: probing
// availability, opening the default browser, opening directories in the
// file manager, and moving files to the trash. Each supported GOOS has its
// own implementation file; everything else gets the unsupported stub.
