package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/database"
	"github.com/nao1215/osintnexus/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func testOptions(extra ...Option) []Option {
	opts := []Option{
		WithLatencyScale(0),
		WithClock(func() time.Time { return fixedNow }),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	}
	return append(opts, extra...)
}

// newTestClient starts s behind httptest and returns an API client for it.
func newTestClient(t *testing.T, s *Server) *api.Client {
	t.Helper()

	srv := httptest.NewServer(s.Handler())
	c, err := api.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() {
		c.Close()
		srv.Close()
	})
	return c
}

// memoryStore is a Store kept in memory.
type memoryStore struct {
	mu      sync.Mutex
	records []database.Record
	saveErr error
}

func (m *memoryStore) SaveInvestigation(_ context.Context, rec database.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryStore) ListInvestigations(_ context.Context, limit int) ([]database.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]database.Record, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0; i-- {
		out = append(out, m.records[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// TestReadEndpoints tests the read-only routes through the API client.
func TestReadEndpoints(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, New(testOptions()...))
	ctx := context.Background()

	health, err := c.Health(ctx)
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("Health().Status = %q", health.Status)
	}

	overview, err := c.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if len(overview.Alerts) != 3 || len(overview.RecentActivities) != 5 || len(overview.ModuleStats) != len(catalog.All()) {
		t.Errorf("Overview() sizes = %d/%d/%d", len(overview.Alerts), len(overview.RecentActivities), len(overview.ModuleStats))
	}
	for _, a := range overview.Alerts {
		if len(a.ID) != 36 {
			t.Errorf("alert id %q is not a UUID", a.ID)
		}
	}

	modules, err := c.Modules(ctx)
	if err != nil {
		t.Fatalf("Modules() error = %v", err)
	}
	if len(modules) != len(catalog.IDs()) {
		t.Errorf("Modules() returned %d modules", len(modules))
	}

	invs, err := c.Investigations(ctx)
	if err != nil {
		t.Fatalf("Investigations() error = %v", err)
	}
	if len(invs) != 2 || invs[0].Target != "example.com" {
		t.Errorf("Investigations() = %+v", invs)
	}

	notes, err := c.Notifications(ctx)
	if err != nil {
		t.Fatalf("Notifications() error = %v", err)
	}
	if len(notes) != 2 || notes[0].Read {
		t.Errorf("Notifications() = %+v", notes)
	}

	profile, err := c.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.Username != "analyst_001" {
		t.Errorf("Profile().Username = %q", profile.Username)
	}
}

// TestRoot tests the welcome message.
func TestRoot(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	New(testOptions()...).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), WelcomeMessage) {
		t.Errorf("body = %s", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

// TestExecute tests canned tool results and target tagging.
func TestExecute(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, New(testOptions()...))

	tests := []struct {
		name     string
		module   string
		tool     string
		target   string
		wantType string
		wantKey  string
	}{
		{name: "harvester", module: "osint", tool: "theHarvester", target: "example.com", wantType: "domain", wantKey: "emails"},
		{name: "sherlock", module: "osint", tool: "Sherlock", target: "@osint_ninja", wantType: "handle", wantKey: "found_profiles"},
		{name: "other osint tool", module: "osint", tool: "SpiderFoot", target: "example.com", wantType: "domain", wantKey: "message"},
		{name: "geoint", module: "geoint", tool: "GPS Analysis", target: "40.7128,-74.0060", wantType: "coordinates", wantKey: "coordinates"},
		{name: "network", module: "network", tool: "Nmap", target: "192.168.1.0/24", wantType: "cidr", wantKey: "topology"},
		{name: "blockchain", module: "blockchain", tool: "Address Analysis", target: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", wantType: "btc-address", wantKey: "address_analysis"},
		{name: "darknet onion", module: "darknet", tool: "Hidden Services", target: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaam2dqd.onion", wantType: "onion", wantKey: "onion_address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := c.Execute(context.Background(), tt.module, tt.tool, tt.target)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if resp.Status != "completed" {
				t.Errorf("Status = %q", resp.Status)
			}
			if resp.TargetType != tt.wantType {
				t.Errorf("TargetType = %q, want %q", resp.TargetType, tt.wantType)
			}
			if _, ok := resp.Results[tt.wantKey]; !ok {
				t.Errorf("Results missing %q: %v", tt.wantKey, resp.Results)
			}
		})
	}
}

// TestExecuteErrors tests the error responses of the execute route.
func TestExecuteErrors(t *testing.T) {
	t.Parallel()

	h := New(testOptions()...).Handler()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "unknown module", path: "/api/modules/nope/execute", body: `{"tool":"x","target":"y"}`, wantStatus: http.StatusNotFound, wantBody: `"detail":"Module not found"`},
		{name: "malformed body", path: "/api/modules/osint/execute", body: `{"tool":`, wantStatus: http.StatusBadRequest, wantBody: `"detail"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %s", rec.Body.String(), tt.wantBody)
			}
		})
	}

	t.Run("unknown module through client", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, New(testOptions()...))
		_, err := c.Execute(context.Background(), "nope", "x", "y")
		if !errors.Is(err, api.ErrUnexpectedStatus) {
			t.Errorf("error = %v, want ErrUnexpectedStatus", err)
		}
	})
}

// TestExecutePreflight tests the CORS preflight of the execute route.
func TestExecutePreflight(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/modules/osint/execute", nil)
	New(testOptions()...).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("missing Access-Control-Allow-Methods")
	}
}

// TestExecuteCancelled tests that a cancelled request is abandoned during
// the simulated latency and not recorded.
func TestExecuteCancelled(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	h := New(testOptions(WithLatencyScale(100), WithStore(store))...).Handler()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/modules/humint/execute", strings.NewReader(`{"tool":"Persona Creation","target":"x"}`))

	done := make(chan struct{})
	go func() {
		h.ServeHTTP(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not return after cancellation")
	}

	if rec.Body.Len() != 0 {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
	if store.len() != 0 {
		t.Errorf("store has %d records, want 0", store.len())
	}
}

// TestInvestigationsFromStore tests that executions show up as investigations.
func TestInvestigationsFromStore(t *testing.T) {
	t.Parallel()

	db, err := database.Open(t.TempDir(), database.DefaultOptions())
	if err != nil {
		t.Fatalf("database.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	c := newTestClient(t, New(testOptions(WithStore(db))...))
	ctx := context.Background()

	if _, err := c.Execute(ctx, "socmint", "Sentiment Analysis", "@osint_ninja"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	invs, err := c.Investigations(ctx)
	if err != nil {
		t.Fatalf("Investigations() error = %v", err)
	}
	if len(invs) != 1 {
		t.Fatalf("Investigations() returned %d, want 1", len(invs))
	}
	got := invs[0]
	if got.Module != "SOCMINT" || got.Tool != "Sentiment Analysis" || got.Target != "@osint_ninja" || got.Status != model.StatusCompleted {
		t.Errorf("investigation = %+v", got)
	}

	n, err := db.CountInvestigations(ctx)
	if err != nil {
		t.Fatalf("CountInvestigations() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountInvestigations() = %d, want 1", n)
	}
}

// TestStoreFailureStillAnswers tests that a failing store does not fail the execution.
func TestStoreFailureStillAnswers(t *testing.T) {
	t.Parallel()

	store := &memoryStore{saveErr: errors.New("disk full")}
	c := newTestClient(t, New(testOptions(WithStore(store))...))

	resp, err := c.Execute(context.Background(), "humint", "Persona Creation", "x")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if resp.Results["persona_created"] != true {
		t.Errorf("Results = %v", resp.Results)
	}

	invs, err := c.Investigations(context.Background())
	if err != nil {
		t.Fatalf("Investigations() error = %v", err)
	}
	if len(invs) != 2 {
		t.Errorf("empty store should fall back to the canned investigations, got %d", len(invs))
	}
}

// TestLatencyFor tests latency scaling.
func TestLatencyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		module string
		scale  float64
		want   time.Duration
	}{
		{module: "cryptanalysis", scale: 1, want: 5 * time.Second},
		{module: "geoint", scale: 1, want: 1500 * time.Millisecond},
		{module: "blockchain", scale: 0.5, want: 1250 * time.Millisecond},
		{module: "darknet", scale: 0, want: 0},
		{module: "unknown", scale: 1, want: 0},
	}
	for _, tt := range tests {
		if got := latencyFor(tt.module, tt.scale); got != tt.want {
			t.Errorf("latencyFor(%q, %v) = %v, want %v", tt.module, tt.scale, got, tt.want)
		}
	}

	for _, id := range catalog.IDs() {
		if _, ok := latencies[id]; !ok {
			t.Errorf("module %q has no latency", id)
		}
		if _, ok := cannedResults(id, "", ""); !ok {
			t.Errorf("module %q has no canned results", id)
		}
	}
}

// TestServeShutdown tests graceful shutdown on context cancellation.
func TestServeShutdown(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- New(testOptions()...).Serve(ctx, l)
	}()

	c, err := api.NewClient("http://" + l.Addr().String())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	c.Close()

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
