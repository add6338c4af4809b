package report

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/execution"
)

const dateLayout = "2006-01-02 15:04:05 MST"

// MarkdownWriter outputs results as a Markdown document.
type MarkdownWriter struct {
	baseWriter
	title cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
}

// Write outputs a report for one result.
func (w *MarkdownWriter) Write(result execution.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("OSINT Nexus Report")
	md.PlainText("")
	w.writeResult(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteBatch outputs a summary table followed by one section per result.
func (w *MarkdownWriter) WriteBatch(results []execution.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("OSINT Nexus Batch Report")
	md.PlainText("")

	rows := make([][]string, len(results))
	placeholders := 0
	kinds := map[string]uint64{}
	var order []string
	for i, r := range results {
		rows[i] = []string{
			"`" + truncateString(r.Target, 40) + "`",
			r.TargetType.Label(),
			w.title.String(r.Status),
			strconv.Itoa(len(r.Findings)),
			sourceLabel(r),
		}
		if r.Placeholder {
			placeholders++
		}
		label := r.TargetType.Label()
		if kinds[label] == 0 {
			order = append(order, label)
		}
		kinds[label]++
	}
	md.Table(markdown.TableSet{
		Header: []string{"Target", "Type", "Status", "Findings", "Source"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(results) > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Target Types"),
			piechart.WithShowData(true),
		)
		for _, label := range order {
			chart.LabelAndIntValue(label, kinds[label])
		}
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	if placeholders > 0 {
		md.Warningf("%d of %d results are placeholders because the backend was unavailable.", placeholders, len(results))
		md.PlainText("")
	}

	for _, r := range results {
		md.H2(r.Target)
		md.PlainText("")
		w.writeResult(md, r)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeResult(md *markdown.Markdown, r execution.Result) {
	module := r.Module
	if m, ok := catalog.Lookup(r.Module); ok {
		module = m.Title + " (" + m.ShortName() + ")"
	}
	executed := "-"
	if !r.ExecutedAt.IsZero() {
		executed = r.ExecutedAt.Format(dateLayout)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Module", module},
			{"Tool", r.Tool},
			{"Target", "`" + r.Target + "`"},
			{"Target Type", r.TargetType.Label()},
			{"Status", w.title.String(r.Status)},
			{"Executed At", executed},
			{"Source", sourceLabel(r)},
		},
	})
	md.PlainText("")

	if r.Placeholder {
		md.Warningf("The backend could not be reached. The values below are placeholders, not intelligence about %s.", r.Target)
		md.PlainText("")
	}

	md.H3("Findings")
	md.PlainText("")
	if len(r.Findings) == 0 {
		md.PlainText("No findings.")
	} else {
		md.BulletList(r.Findings...)
	}
	md.PlainText("")

	if r.Metadata != nil {
		w.writeMetadata(md, *r.Metadata)
	}
	if len(r.Details) > 0 {
		w.writeDetails(md, r.Details)
	}
}

func (w *MarkdownWriter) writeMetadata(md *markdown.Markdown, m execution.Metadata) {
	md.H3("Metadata")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Time", "Confidence", "Sources", "Alerts"},
		Rows: [][]string{{
			m.ExecutionTimeLabel(),
			m.ConfidenceLabel(),
			strconv.Itoa(m.DataSources),
			strconv.Itoa(m.Alerts),
		}},
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Signal Breakdown"),
		piechart.WithShowData(true),
	)
	if m.DataSources > 0 {
		chart.LabelAndIntValue("Data sources", uint64(m.DataSources))
	}
	if m.Alerts > 0 {
		chart.LabelAndIntValue("Alerts", uint64(m.Alerts))
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeDetails(md *markdown.Markdown, details map[string]any) {
	data, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return
	}
	md.H3("Details")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightJSON, string(data))
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by OSINT Nexus on %s*", time.Now().Format(dateLayout))
}
