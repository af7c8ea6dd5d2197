package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/pretext/pkg/reader"
)

// YAMLWriter buffers records and writes them as YAML.
type YAMLWriter struct {
	w    *bufio.Writer
	recs []reader.Record
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:    bufio.NewWriter(w),
		recs: make([]reader.Record, 0),
	}
}

// Write buffers a single record.
func (w *YAMLWriter) Write(rec reader.Record) error {
	w.recs = append(w.recs, rec)
	return nil
}

// WriteAll buffers multiple records.
func (w *YAMLWriter) WriteAll(recs []reader.Record) error {
	w.recs = append(w.recs, recs...)
	return nil
}

// Flush writes the buffered records as YAML. A single record is output
// directly, multiple records as a sequence.
func (w *YAMLWriter) Flush() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	var err error
	if len(w.recs) == 1 {
		err = encoder.Encode(w.recs[0])
	} else {
		err = encoder.Encode(w.recs)
	}
	if err != nil {
		return err
	}

	if err := encoder.Close(); err != nil {
		return err
	}

	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
