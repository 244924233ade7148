package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	ErrInvalid  = errors.New("invalid")
	// ErrFileMissing marks a NotFound caused by an absent backing file rather than an absent record.
	ErrFileMissing = errors.New("file_missing")
	// ErrCorrupt is used when a stored line cannot be decoded (StorageCorrupt).
	ErrCorrupt = errors.New("storage_corrupt")
	// ErrStorageIO wraps read/write failures at the filesystem boundary.
	ErrStorageIO = errors.New("storage_io")
)
