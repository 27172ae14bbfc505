// SPDX-License-Identifier: Apache-2.0

package export

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tracedump/tracedump/internal/progress"
	loglib "github.com/tracedump/tracedump/pkg/log"
)

type OutputKind string

const (
	OutputDir    OutputKind = "dir"
	OutputStdout OutputKind = "stdout"
)

func ParseOutputKind(s string) (OutputKind, error) {
	switch OutputKind(s) {
	case OutputDir, OutputStdout:
		return OutputKind(s), nil
	default:
		return "", fmt.Errorf("unknown output kind %q, expected dir or stdout", s)
	}
}

// Output hands out one writer per exported table: a `<db>.<table>.csv[.gz]`
// file in dir mode, or a section of the shared stdout stream.
type Output struct {
	kind     OutputKind
	dir      string
	compress bool
	logger   loglib.Logger
}

func NewOutput(kind OutputKind, dir string, compress bool, logger loglib.Logger) (*Output, error) {
	o := &Output{
		kind:     kind,
		dir:      dir,
		compress: compress,
		logger:   loglib.NewLogger(logger),
	}
	if kind == OutputDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating target directory %q: %w", dir, err)
		}
	}
	return o, nil
}

func (o *Output) Writer(database, table string) (io.WriteCloser, error) {
	switch o.kind {
	case OutputStdout:
		fmt.Printf("## %s.%s\n", database, table) //nolint:forbidigo
		return nopCloser{os.Stdout}, nil
	default:
		ext := "csv"
		if o.compress {
			ext = "csv.gz"
		}
		filename := filepath.Join(o.dir, fmt.Sprintf("%s.%s.%s", database, table, ext))
		o.logger.Info("creating file", loglib.Fields{"file": filename})

		fh, err := os.Create(filename)
		if err != nil {
			return nil, fmt.Errorf("creating %q: %w", filename, err)
		}
		if o.compress {
			return &gzipFileWriter{Writer: gzip.NewWriter(fh), file: fh}, nil
		}
		return fh, nil
	}
}

// Progress returns the progress reporter factory matching the output mode:
// real bars for dir mode, noop when the export stream owns the terminal.
func (o *Output) Progress() progress.Factory {
	if o.kind == OutputDir {
		return progress.BarFactory()
	}
	return progress.NoopFactory()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type gzipFileWriter struct {
	*gzip.Writer
	file *os.File
}

// Close flushes the gzip stream before closing the underlying file; both
// errors are fatal for the run.
func (w *gzipFileWriter) Close() error {
	if err := w.Writer.Close(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
