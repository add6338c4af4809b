package execution

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/osintnexus/internal/api"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/target"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeExecutor counts calls and answers with resp or err.
type fakeExecutor struct {
	calls atomic.Int32
	resp  api.ExecuteResponse
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, _, _, _ string) (api.ExecuteResponse, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return api.ExecuteResponse{}, err
	}
	return f.resp, f.err
}

func testOpts() []Option {
	return []Option{
		WithRand(rand.New(rand.NewPCG(7, 7))),
		WithClock(func() time.Time { return testNow }),
	}
}

func openSession(t *testing.T, exec Executor, opts ...Option) *Session {
	t.Helper()
	s := NewSession(exec, append(testOpts(), opts...)...)
	if err := s.Open("osint", "theHarvester"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

// TestSessionOpen tests tool selection.
func TestSessionOpen(t *testing.T) {
	t.Parallel()

	s := NewSession(nil)
	if err := s.Open("osint", "Sherlock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsOpen() || s.Module() != "osint" || s.Tool() != "Sherlock" {
		t.Errorf("unexpected state: open=%v module=%q tool=%q", s.IsOpen(), s.Module(), s.Tool())
	}
	if err := s.Open("osint", "Nmap"); !errors.Is(err, ErrNoTool) {
		t.Errorf("expected ErrNoTool for a foreign tool, got %v", err)
	}
	if err := s.Open("nope", "Nmap"); !errors.Is(err, ErrNoTool) {
		t.Errorf("expected ErrNoTool for an unknown module, got %v", err)
	}
}

// TestSessionEmptyTarget tests that a blank target issues no request.
func TestSessionEmptyTarget(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", " ", "\t\n"} {
		exec := &fakeExecutor{}
		s := openSession(t, exec)
		s.SetTarget(in)

		if _, err := s.Submit(context.Background()); !errors.Is(err, ErrEmptyTarget) {
			t.Errorf("target %q: expected ErrEmptyTarget, got %v", in, err)
		}
		if exec.calls.Load() != 0 {
			t.Errorf("target %q: expected no request, got %d", in, exec.calls.Load())
		}
		if s.Loading() {
			t.Errorf("target %q: session should not be loading", in)
		}
	}
}

// TestSessionSuccess tests that a backend result is shown as returned.
func TestSessionSuccess(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{resp: api.ExecuteResponse{
		Status:     "completed",
		TargetType: "domain",
		Results: map[string]any{
			"emails": []any{"admin@example.com", "info@example.com"},
			"ips":    []any{"10.0.0.1"},
		},
	}}
	s := openSession(t, exec)
	s.SetTarget("example.com")

	res, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if exec.calls.Load() != 1 {
		t.Errorf("expected exactly one request, got %d", exec.calls.Load())
	}
	if res.Placeholder {
		t.Error("backend result must not be a placeholder")
	}
	want := []string{"emails: admin@example.com, info@example.com", "ips: 10.0.0.1"}
	if diff := cmp.Diff(want, res.Findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	if res.TargetType != target.KindDomain {
		t.Errorf("target type = %q", res.TargetType)
	}
	shown, ok := s.Result()
	if !ok || shown.Target != "example.com" {
		t.Errorf("Result() = %+v, %v", shown, ok)
	}
}

// TestSessionFallback tests the placeholder result after any failure.
func TestSessionFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	exec := &fakeExecutor{err: api.ErrUnexpectedStatus}
	s := openSession(t, exec, WithLogger(applog.NewSecureLogger(&buf, false)))
	s.SetTarget("example.com")

	res, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("failures must not surface, got %v", err)
	}
	if !res.Placeholder {
		t.Error("expected placeholder result")
	}
	if len(res.Findings) == 0 || res.Findings[0] != "Analysis completed for example.com" {
		t.Errorf("unexpected findings: %v", res.Findings)
	}
	if res.Metadata == nil || res.Metadata.Confidence < 70 || res.Metadata.Confidence >= 100 {
		t.Errorf("confidence out of range: %+v", res.Metadata)
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

// TestSessionBusy tests that only one request can be in flight.
func TestSessionBusy(t *testing.T) {
	t.Parallel()

	s := openSession(t, &fakeExecutor{})
	s.SetTarget("example.com")

	req, err := s.Begin(context.Background())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := s.Begin(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if !s.Complete(req, s.Run(req)) {
		t.Error("expected the current request to complete")
	}
	if s.Loading() {
		t.Error("session should be idle after Complete")
	}
}

// TestSessionClose tests that Close clears everything regardless of state.
func TestSessionClose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		exec *fakeExecutor
		run  bool
	}{
		{name: "after success", exec: &fakeExecutor{resp: api.ExecuteResponse{Results: map[string]any{"a": 1}}}, run: true},
		{name: "after failure", exec: &fakeExecutor{err: errors.New("boom")}, run: true},
		{name: "while loading", exec: &fakeExecutor{}, run: false},
		{name: "with input only", exec: &fakeExecutor{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := openSession(t, tt.exec)
			s.SetTarget("example.com")
			switch {
			case tt.run:
				if _, err := s.Submit(context.Background()); err != nil {
					t.Fatalf("Submit: %v", err)
				}
			case tt.name == "while loading":
				if _, err := s.Begin(context.Background()); err != nil {
					t.Fatalf("Begin: %v", err)
				}
			}

			s.Close()
			if s.IsOpen() || s.Target() != "" || s.Loading() {
				t.Errorf("state not cleared: open=%v target=%q loading=%v", s.IsOpen(), s.Target(), s.Loading())
			}
			if _, ok := s.Result(); ok {
				t.Error("result not cleared")
			}
		})
	}
}

// TestSessionDropsStaleResponse tests that a response for a closed modal is
// discarded and its context is cancelled.
func TestSessionDropsStaleResponse(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{resp: api.ExecuteResponse{Results: map[string]any{"a": 1}}}
	s := openSession(t, exec)
	s.SetTarget("example.com")

	req, err := s.Begin(context.Background())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s.Close()
	if err := s.Open("osint", "Sherlock"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	res := s.Run(req)
	if !res.Placeholder {
		t.Error("a cancelled request should produce a placeholder")
	}
	if s.Complete(req, res) {
		t.Error("stale response must be dropped")
	}
	if _, ok := s.Result(); ok {
		t.Error("stale response must not be shown")
	}
}

// TestSessionReset tests "Run New Analysis".
func TestSessionReset(t *testing.T) {
	t.Parallel()

	s := openSession(t, nil)
	s.SetTarget("example.com")
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	s.Reset()

	if !s.IsOpen() || s.Tool() != "theHarvester" {
		t.Error("Reset must keep the tool selected")
	}
	if s.Target() != "" {
		t.Errorf("target = %q, expected empty", s.Target())
	}
	if _, ok := s.Result(); ok {
		t.Error("result not cleared")
	}
}

// TestFabricateRanges tests placeholder values over many seeds.
func TestFabricateRanges(t *testing.T) {
	t.Parallel()

	for seed := range uint64(200) {
		r := rand.New(rand.NewPCG(seed, seed+1))
		res := Fabricate("osint", "Sherlock", "@username", r, testNow)

		if len(res.Findings) != 4 {
			t.Fatalf("expected 4 findings, got %d", len(res.Findings))
		}
		n, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(res.Findings[1], "Found "), " relevant data points"))
		if n < 1 || n > 10 {
			t.Errorf("data points %d out of range", n)
		}
		c, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(res.Findings[2], "Confidence level: "), "%"))
		if c < 70 || c > 99 {
			t.Errorf("confidence %d out of range", c)
		}
		p, _ := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(res.Findings[3], "Processing time: "), "s"), 64)
		if p < 1.0 || p >= 6.0 {
			t.Errorf("processing time %v out of range", p)
		}

		m := res.Metadata
		if m.Confidence < 70 || m.Confidence >= 100 {
			t.Errorf("metadata confidence %d out of range", m.Confidence)
		}
		if m.DataSources < 2 || m.DataSources > 6 {
			t.Errorf("data sources %d out of range", m.DataSources)
		}
		if m.Alerts < 0 || m.Alerts > 2 {
			t.Errorf("alerts %d out of range", m.Alerts)
		}
		if m.ExecutionTime < 1.0 || m.ExecutionTime >= 6.0 {
			t.Errorf("execution time %v out of range", m.ExecutionTime)
		}
		if res.TargetType != target.KindHandle || res.Status != "completed" {
			t.Errorf("unexpected result header: %+v", res)
		}
	}
}

// TestMetadataLabels tests the metadata formatting.
func TestMetadataLabels(t *testing.T) {
	t.Parallel()

	m := Metadata{ExecutionTime: 4.2, Confidence: 85}
	if got := m.ExecutionTimeLabel(); got != "4.2s" {
		t.Errorf("ExecutionTimeLabel() = %q", got)
	}
	if got := m.ConfidenceLabel(); got != "85%" {
		t.Errorf("ConfidenceLabel() = %q", got)
	}
}

// TestSummarize tests the rendering of backend payloads.
func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize(map[string]any{
		"tor_status": "Connected",
		"hidden_services": []any{
			map[string]any{"name": "Market Alpha", "status": "Online"},
		},
		"topology":  map[string]any{"nodes": float64(25), "edges": float64(45)},
		"anomalies": nil,
		"empty":     []any{},
	})
	want := []string{
		"anomalies: n/a",
		"empty: none",
		"hidden services: {name=Market Alpha, status=Online}",
		"topology: {edges=45, nodes=25}",
		"tor status: Connected",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}
