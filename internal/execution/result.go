package execution

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/nao1215/osintnexus/internal/model"
	"github.com/nao1215/osintnexus/internal/target"
)

// Result is what the modal displays after a run.
type Result struct {
	Module     string      `json:"module"`
	Tool       string      `json:"tool"`
	Status     string      `json:"status"`
	Target     string      `json:"target"`
	TargetType target.Kind `json:"target_type"`
	Findings   []string    `json:"findings"`

	// Metadata is only set on placeholder results.
	Metadata *Metadata `json:"metadata,omitempty"`

	// Details is the module specific payload returned by the backend.
	Details map[string]any `json:"details,omitempty"`

	// Placeholder marks a result fabricated after a failed request.
	Placeholder bool `json:"placeholder"`

	ExecutedAt time.Time `json:"executed_at"`
}

// Metadata carries the summary counters of a placeholder result.
type Metadata struct {
	// ExecutionTime is in seconds with one decimal.
	ExecutionTime float64 `json:"execution_time"`
	// Confidence is a percentage in [70, 100).
	Confidence  int `json:"confidence"`
	DataSources int `json:"data_sources"`
	Alerts      int `json:"alerts"`
}

// ExecutionTimeLabel renders the execution time, e.g. "4.2s".
func (m Metadata) ExecutionTimeLabel() string {
	return fmt.Sprintf("%.1fs", m.ExecutionTime)
}

// ConfidenceLabel renders the confidence, e.g. "85%".
func (m Metadata) ConfidenceLabel() string {
	return fmt.Sprintf("%d%%", m.Confidence)
}

// tenths returns a random duration in seconds in [1.0, 6.0) with one decimal.
func tenths(r *rand.Rand) float64 {
	return float64(10+r.IntN(50)) / 10
}

// Fabricate builds the placeholder result shown when a run fails.
func Fabricate(moduleID, tool, tgt string, r *rand.Rand, now time.Time) Result {
	points := 1 + r.IntN(10)
	confidence := 70 + r.IntN(30)
	processing := tenths(r)

	return Result{
		Module:     moduleID,
		Tool:       tool,
		Status:     string(model.StatusCompleted),
		Target:     tgt,
		TargetType: target.Classify(tgt),
		Findings: []string{
			"Analysis completed for " + tgt,
			fmt.Sprintf("Found %d relevant data points", points),
			fmt.Sprintf("Confidence level: %d%%", confidence),
			fmt.Sprintf("Processing time: %.1fs", processing),
		},
		Metadata: &Metadata{
			ExecutionTime: tenths(r),
			Confidence:    70 + r.IntN(30),
			DataSources:   2 + r.IntN(5),
			Alerts:        r.IntN(3),
		},
		Placeholder: true,
		ExecutedAt:  now,
	}
}

// Summarize turns a results payload into one line per top level key,
// sorted by key.
func Summarize(details map[string]any) []string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, humanize(k)+": "+describe(details[k]))
	}
	return lines
}

func humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func describe(v any) string {
	switch val := v.(type) {
	case []any:
		if len(val) == 0 {
			return "none"
		}
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, describe(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, humanize(k)+"="+describe(val[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case nil:
		return "n/a"
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
