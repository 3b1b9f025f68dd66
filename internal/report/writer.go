package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// openOutput returns the destination for a report: the file at path, or
// fallback when path is empty. Missing parent directories are created.
// The returned close function is always safe to call.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// writeTo renders into the destination chosen by openOutput.
func writeTo(path string, fallback io.Writer, render func(io.Writer) error) (err error) {
	w, closeFn, err := openOutput(path, fallback)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write output file: %w", cerr)
		}
	}()
	return render(w)
}
