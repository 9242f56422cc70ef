// Package output writes batch replay results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ResultWriter is the interface for writing replay results.
type ResultWriter interface {
	// WriteResult writes a single result.
	WriteResult(r Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// TextWriter writes one tab separated line per result:
// job, placement (or "error"), ply count (or the error), flags.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult implements ResultWriter.
func (tw *TextWriter) WriteResult(r Result) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(tw.w, "%d\terror\t%v\n", r.Index+1, r.Err)
		return err
	}

	var flags []string
	if r.Duplicate {
		flags = append(flags, "duplicate")
	}
	if len(r.Skipped) > 0 {
		flags = append(flags, "skipped="+strings.Join(r.Skipped, ","))
	}
	line := fmt.Sprintf("%d\t%s\t%d", r.Index+1, r.Placement, r.Ply)
	if len(flags) > 0 {
		line += "\t" + strings.Join(flags, " ")
	}
	_, err := fmt.Fprintln(tw.w, line)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format. By default it buffers results
// and writes them as one document on Flush or Close.
type JSONWriter struct {
	w       io.Writer
	results []*JSONResult
	single  bool // write each result immediately as its own document
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult implements ResultWriter.
func (jw *JSONWriter) WriteResult(r Result) error {
	jr := ResultToJSON(r)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jr)
	}
	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})
	jw.results = jw.results[:0]
	return err
}

// Close flushes the writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
