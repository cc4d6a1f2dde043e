package readme

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrStale is returned by Check when the file on disk differs from the
// generated document.
var ErrStale = errors.New("generated document differs from file on disk")

// WriteOutput writes data to stdout when path is empty or "-", otherwise to
// the file at path, creating parent directories as needed.
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Check compares data with the current content of path.
func Check(path string, data []byte) error {
	current, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading current output")
	}
	if !bytes.Equal(current, data) {
		return errors.Wrap(ErrStale, path)
	}
	return nil
}
