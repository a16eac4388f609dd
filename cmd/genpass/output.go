package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// writeOutputFile writes through a temp file and renames it into place.
// Generated secrets are written with owner-only permissions.
func writeOutputFile(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create output dir")
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".genpass-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp output")
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := tmpFile.Chmod(0o600); err != nil {
		return errors.Wrap(err, "failed to restrict output permissions")
	}
	writer := bufio.NewWriter(tmpFile)
	if err := write(writer); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close output")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
