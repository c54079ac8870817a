package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Writer appends census rows to census.csv inside an output directory. A nil
// Writer is valid and discards everything, so callers can wire telemetry
// unconditionally and enable it with a flag.
type Writer struct {
	file *os.File

	headerWritten bool
}

// NewWriter creates the output directory and census.csv inside it. An empty
// dir disables output and returns a nil Writer.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "census.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating census.csv: %w", err)
	}
	return &Writer{file: f}, nil
}

// Write appends one census row, emitting the CSV header on the first call.
func (w *Writer) Write(c Census) error {
	if w == nil {
		return nil
	}
	records := []Census{c}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing census.csv: %w", err)
	}
	return nil
}
