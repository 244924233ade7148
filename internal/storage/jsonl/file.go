// Package jsonl stores accounts and movements as line-delimited JSON files.
// Every read-modify-write cycle holds the file's mutex end to end, and every
// rewrite goes through a temp file renamed over the target.
package jsonl

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// line is one non-empty physical line with its 1-based position.
type line struct {
	no  int
	raw []byte
}

// lineFile is the shared primitive behind both stores.
type lineFile struct {
	mu    sync.Mutex
	path  string
	label string
	log   *slog.Logger
}

func newLineFile(path, label string, logger *slog.Logger) *lineFile {
	if logger == nil {
		logger = slog.Default()
	}
	return &lineFile{path: path, label: label, log: logger.With("file", label)}
}

// read returns the non-empty lines of the file. exists is false when the file
// is absent, which is not an error. Callers hold mu.
func (f *lineFile) read() (lines []line, exists bool, err error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ioErr("read", f.path, err)
	}
	for i, raw := range bytes.Split(data, []byte{'\n'}) {
		if len(raw) == 0 {
			continue
		}
		lines = append(lines, line{no: i + 1, raw: raw})
	}
	storeRecords.WithLabelValues(f.label).Set(float64(len(lines)))
	return lines, true, nil
}

// append writes one record as a new line, creating the file if needed.
// Callers hold mu.
func (f *lineFile) append(rec any) error {
	b, err := encode(rec)
	if err != nil {
		return err
	}
	fh, err := os.OpenFile(f.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return ioErr("open", f.path, err)
	}
	st, err := fh.Stat()
	if err != nil {
		fh.Close()
		return ioErr("stat", f.path, err)
	}
	buf := make([]byte, 0, len(b)+2)
	if st.Size() > 0 && !endsWithNewline(f.path, st.Size()) {
		buf = append(buf, '\n')
	}
	buf = append(buf, b...)
	buf = append(buf, '\n')
	if _, err := fh.Write(buf); err != nil {
		fh.Close()
		return ioErr("append", f.path, err)
	}
	if err := fh.Close(); err != nil {
		return ioErr("close", f.path, err)
	}
	storeAppends.WithLabelValues(f.label).Inc()
	f.log.Debug("record appended", "path", f.path)
	return nil
}

// replace rewrites the whole file with records, one per line. An empty set
// leaves a zero-length file; otherwise the file ends with exactly one newline.
// Callers hold mu.
func (f *lineFile) replace(records [][]byte) error {
	var buf bytes.Buffer
	for _, r := range records {
		buf.Write(r)
		buf.WriteByte('\n')
	}
	dir, name := filepath.Split(f.path)
	tmp := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")
	if err := writeSync(tmp, buf.Bytes()); err != nil {
		_ = os.Remove(tmp)
		return ioErr("write", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return ioErr("rename", f.path, err)
	}
	storeRewrites.WithLabelValues(f.label).Inc()
	storeRecords.WithLabelValues(f.label).Set(float64(len(records)))
	f.log.Debug("file rewritten", "path", f.path, "records", len(records))
	return nil
}

func writeSync(path string, data []byte) error {
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := fh.Write(data); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Sync(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func endsWithNewline(path string, size int64) bool {
	fh, err := os.Open(path)
	if err != nil {
		return true
	}
	defer fh.Close()
	last := make([]byte, 1)
	if _, err := fh.ReadAt(last, size-1); err != nil {
		return true
	}
	return last[0] == '\n'
}

// encode renders one record without HTML escaping and without the trailing
// newline json.Encoder adds.
func encode(rec any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodeLines parses every line into T, failing on the first bad one.
func decodeLines[T any](path string, lines []line) ([]T, error) {
	out := make([]T, 0, len(lines))
	for _, l := range lines {
		var v T
		if err := json.Unmarshal(l.raw, &v); err != nil {
			return nil, &LineError{Path: path, Line: l.no, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// dirReady reports whether the directory holding path is reachable.
func dirReady(path string) error {
	dir := filepath.Dir(path)
	st, err := os.Stat(dir)
	if err != nil {
		return ioErr("stat", dir, err)
	}
	if !st.IsDir() {
		return ioErr("stat", dir, errors.New("not a directory"))
	}
	return nil
}
