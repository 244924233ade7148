package jsonl

import (
	"fmt"

	"github.com/tinoosan/contas/internal/errs"
)

// LineError reports a record that could not be decoded. Line is 1-based and
// counts every physical line of the file, blank ones included.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Is lets callers match any decode failure with errors.Is(err, errs.ErrCorrupt).
func (e *LineError) Is(target error) bool { return target == errs.ErrCorrupt }

func fileMissing(path string) error {
	return fmt.Errorf("%w: %s: %w", errs.ErrNotFound, path, errs.ErrFileMissing)
}

func ioErr(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", errs.ErrStorageIO, op, path, err)
}
