package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/osintnexus/internal/execution"
)

// JSONWriter outputs results as JSON.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string

	version string
	now     func() time.Time
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables indented output with the given prefix and indent.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the application version in batch documents.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one result object.
func (w *JSONWriter) Write(result execution.Result) (int, error) {
	return w.writeJSON(result)
}

// BatchReport is the JSON document written by WriteBatch.
type BatchReport struct {
	Version     string             `json:"version,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
	Total       int                `json:"total"`
	Placeholder int                `json:"placeholder"`
	Results     []execution.Result `json:"results"`
}

// NewBatchReport wraps results with summary counters.
func NewBatchReport(results []execution.Result, version string, generatedAt time.Time) BatchReport {
	br := BatchReport{
		Version:     version,
		GeneratedAt: generatedAt,
		Total:       len(results),
		Results:     results,
	}
	if br.Results == nil {
		br.Results = []execution.Result{}
	}
	for _, r := range results {
		if r.Placeholder {
			br.Placeholder++
		}
	}
	return br
}

// WriteBatch outputs a BatchReport.
func (w *JSONWriter) WriteBatch(results []execution.Result) (int, error) {
	return w.writeJSON(NewBatchReport(results, w.version, w.now()))
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
