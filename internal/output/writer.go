package output

import (
	"encoding/csv"
	"io"
	"os"
	"sync"

	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
)

// Writer handles CSV output to a file or io.Writer.
// The header is written on creation, so an export with no rows still
// produces a valid, header-only file.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	csv       *csv.Writer
	path      string
	columns   int
	count     int
	closeFunc func() error
}

// NewWriter creates a new CSV writer that writes to the specified output.
func NewWriter(w io.Writer, header []string) (*Writer, error) {
	writer := &Writer{
		output:  w,
		csv:     csv.NewWriter(w),
		path:    "<stream>",
		columns: len(header),
	}
	if err := writer.writeHeader(header); err != nil {
		return nil, err
	}
	return writer, nil
}

// NewFileWriter creates a new CSV writer that writes to a file, truncating it.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string, header []string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, ghoaaerrors.NewIOError("create output file", filename, err)
	}

	writer := &Writer{
		output:    file,
		csv:       csv.NewWriter(file),
		path:      filename,
		columns:   len(header),
		closeFunc: file.Close,
	}
	if err := writer.writeHeader(header); err != nil {
		_ = file.Close()
		return nil, err
	}
	return writer, nil
}

func (w *Writer) writeHeader(header []string) error {
	if err := w.csv.Write(header); err != nil {
		return ghoaaerrors.NewIOError("write header to", w.path, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return ghoaaerrors.NewIOError("write header to", w.path, err)
	}
	return nil
}

// Write writes a single row.
func (w *Writer) Write(row Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	fields := row.Fields()
	if len(fields) != w.columns {
		return ghoaaerrors.NewIOError("write row to", w.path,
			csv.ErrFieldCount)
	}
	if err := w.csv.Write(fields); err != nil {
		return ghoaaerrors.NewIOError("write row to", w.path, err)
	}

	w.count++
	return nil
}

// Count returns the number of rows written, header excluded.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Path returns the output file name, or "<stream>" for NewWriter.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered rows and closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.csv.Flush()
	flushErr := w.csv.Error()

	if w.closeFunc != nil {
		closeFunc := w.closeFunc
		w.closeFunc = nil
		if err := closeFunc(); err != nil && flushErr == nil {
			return ghoaaerrors.NewIOError("close", w.path, err)
		}
	}
	if flushErr != nil {
		return ghoaaerrors.NewIOError("flush", w.path, flushErr)
	}
	return nil
}
