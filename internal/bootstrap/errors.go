// Package bootstrap brings the application to a servable state at process
// start: the default admin account, the singleton company settings, the
// pricing catalog and the upload directory. Every operation is idempotent
// and safe to run concurrently from multiple server processes against the
// same store.
package bootstrap

import (
	"errors"
	"fmt"
)

// Sentinel failure categories for the filesystem and store branches.
var (
	// ErrPathConflict means the resolved upload path exists but is not
	// a directory.
	ErrPathConflict = errors.New("path exists but is not a directory")

	// ErrPermissionDenied means the upload directory refused a write.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIOFailure covers any other filesystem failure around the
	// upload directory.
	ErrIOFailure = errors.New("i/o failure")

	// ErrStoreUnavailable means the document store could not be
	// reached within the startup retry budget.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// DirectoryError wraps a filesystem failure with the offending path so it
// is never surfaced without context.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("upload directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

func pathConflict(path string) error {
	return &DirectoryError{Path: path, Err: ErrPathConflict}
}

func classifyFsError(path string, err error, permission bool) error {
	if permission {
		return &DirectoryError{Path: path, Err: fmt.Errorf("%w: %v", ErrPermissionDenied, err)}
	}
	return &DirectoryError{Path: path, Err: fmt.Errorf("%w: %v", ErrIOFailure, err)}
}
