package report

import (
	"io"

	"github.com/nao1215/osintnexus/internal/execution"
)

// Writer writes execution results in some format.
type Writer interface {
	// Write outputs a single result and returns the number of bytes written.
	Write(result execution.Result) (int, error)

	// WriteBatch outputs several results as one document.
	WriteBatch(results []execution.Result) (int, error)
}

// MultiWriter writes to several Writers in turn, e.g. the terminal and a file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to every writer and stops on the first error.
func (m *MultiWriter) Write(result execution.Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteBatch outputs the results to every writer and stops on the first error.
func (m *MultiWriter) WriteBatch(results []execution.Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteBatch(results)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// sourceLabel says where a result came from.
func sourceLabel(r execution.Result) string {
	if r.Placeholder {
		return "Placeholder (backend unavailable)"
	}
	return "Backend"
}

// truncateString shortens s to maxLen runes, ending with "...".
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
