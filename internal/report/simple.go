package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/execution"
)

// SimpleWriter outputs plain text for the terminal.
type SimpleWriter struct {
	baseWriter
	verbose bool
	title   cases.Caser
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose adds the raw details of backend results.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one result.
func (w *SimpleWriter) Write(result execution.Result) (int, error) {
	var sb strings.Builder
	w.writeResult(&sb, result)
	return io.WriteString(w.output, sb.String())
}

// WriteBatch outputs the results one after another and a closing tally.
func (w *SimpleWriter) WriteBatch(results []execution.Result) (int, error) {
	var sb strings.Builder
	placeholders := 0
	for _, r := range results {
		w.writeResult(&sb, r)
		if r.Placeholder {
			placeholders++
		}
	}
	fmt.Fprintf(&sb, "%d result(s), %d placeholder(s)\n", len(results), placeholders)
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeResult(sb *strings.Builder, r execution.Result) {
	module := r.Module
	if m, ok := catalog.Lookup(r.Module); ok {
		module = m.ShortName()
	}

	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "%s / %s\n", module, r.Tool)
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Target:  %s (%s)\n", r.Target, r.TargetType.Label())
	fmt.Fprintf(sb, "Status:  %s\n", w.title.String(r.Status))
	fmt.Fprintf(sb, "Source:  %s\n", sourceLabel(r))
	sb.WriteString("\n")

	if len(r.Findings) == 0 {
		sb.WriteString("No findings.\n")
	}
	for _, f := range r.Findings {
		fmt.Fprintf(sb, "  * %s\n", f)
	}

	if m := r.Metadata; m != nil {
		fmt.Fprintf(sb, "\nTime: %s  Confidence: %s  Sources: %d  Alerts: %d\n",
			m.ExecutionTimeLabel(), m.ConfidenceLabel(), m.DataSources, m.Alerts)
	}

	if w.verbose && len(r.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, line := range execution.Summarize(r.Details) {
			fmt.Fprintf(sb, "  %s\n", line)
		}
	}
	sb.WriteString("\n")
}
