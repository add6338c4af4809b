package sample

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/osintnexus/internal/catalog"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func counter() func() string {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

// TestFormatTimeAgo tests relative time labels.
func TestFormatTimeAgo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "0m ago"},
		{-5 * time.Minute, "0m ago"},
		{59 * time.Second, "0m ago"},
		{15 * time.Minute, "15m ago"},
		{59*time.Minute + 59*time.Second, "59m ago"},
		{time.Hour, "1h ago"},
		{120 * time.Minute, "2h ago"},
		{150 * time.Minute, "2h ago"},
		{30 * 24 * time.Hour, "720h ago"},
	}
	for _, tt := range tests {
		if got := FormatTimeAgo(testNow, testNow.Add(-tt.ago)); got != tt.want {
			t.Errorf("FormatTimeAgo(-%v) = %q, expected %q", tt.ago, got, tt.want)
		}
	}
}

// TestCannedData tests the fallback data sets.
func TestCannedData(t *testing.T) {
	t.Parallel()

	alerts := Alerts(testNow)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	wantAgo := []string{"15m ago", "45m ago", "2h ago"}
	for i, a := range alerts {
		if got := FormatTimeAgo(testNow, a.Timestamp); got != wantAgo[i] {
			t.Errorf("alert %d age = %q, expected %q", i, got, wantAgo[i])
		}
	}

	acts := Activities(testNow)
	if len(acts) != 5 {
		t.Fatalf("expected 5 activities, got %d", len(acts))
	}
	for i := 1; i < len(acts); i++ {
		if acts[i].Timestamp.After(acts[i-1].Timestamp) {
			t.Errorf("activities not ordered newest first at %d", i)
		}
	}
	for _, a := range acts {
		if !a.Status.Valid() {
			t.Errorf("activity %s has invalid status %q", a.ID, a.Status)
		}
	}

	if got := len(Investigations(testNow)); got != 2 {
		t.Errorf("expected 2 investigations, got %d", got)
	}
	for _, n := range Notifications(testNow) {
		if n.Read {
			t.Errorf("notification %s should start unread", n.ID)
		}
	}
	if p := Profile(testNow); p.Username != "analyst_001" || p.InvestigationsCount != 47 {
		t.Errorf("unexpected profile: %+v", p)
	}
	for _, w := range Widgets() {
		if !w.Enabled {
			t.Errorf("widget %q should start enabled", w.Name)
		}
	}
}

// TestModuleStatsRanges tests the random stat ranges over many seeds.
func TestModuleStatsRanges(t *testing.T) {
	t.Parallel()

	for seed := range uint64(50) {
		r := rand.New(rand.NewPCG(seed, seed))
		stats := ModuleStats(testNow, r)
		if len(stats) != len(catalog.All()) {
			t.Fatalf("expected one stat per module, got %d", len(stats))
		}
		for _, s := range stats {
			if s.SuccessRate < 0.70 || s.SuccessRate >= 0.95 {
				t.Errorf("success rate %v out of range", s.SuccessRate)
			}
			if s.TotalRuns < 50 || s.TotalRuns > 499 {
				t.Errorf("total runs %d out of range", s.TotalRuns)
			}
			if s.LastRun == nil || s.LastRun.After(testNow) || testNow.Sub(*s.LastRun) > 24*time.Hour {
				t.Errorf("last run %v out of range", s.LastRun)
			}
		}

		for _, s := range RandomModuleStats(testNow, r) {
			if s.TotalRuns < 50 || s.TotalRuns > 500 {
				t.Errorf("random total runs %d out of range", s.TotalRuns)
			}
			if age := testNow.Sub(*s.LastRun); age < time.Minute || age > 1440*time.Minute {
				t.Errorf("random last run age %v out of range", age)
			}
		}
	}
}

// TestRandomOverview tests the mock server generators.
func TestRandomOverview(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	o := RandomOverview(testNow, r, counter())

	if len(o.Alerts) != 3 || len(o.RecentActivities) != 5 || len(o.ModuleStats) != 10 {
		t.Fatalf("unexpected sizes: %d alerts, %d activities, %d stats",
			len(o.Alerts), len(o.RecentActivities), len(o.ModuleStats))
	}
	seen := map[string]bool{}
	for _, a := range o.Alerts {
		if seen[a.ID] {
			t.Errorf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
		if !strings.HasPrefix(a.Description, "Alert description for ") {
			t.Errorf("unexpected description %q", a.Description)
		}
		if age := testNow.Sub(a.Timestamp); age < 5*time.Minute || age > 120*time.Minute {
			t.Errorf("alert age %v out of range", age)
		}
	}
	for _, a := range o.RecentActivities {
		if !strings.HasPrefix(a.Target, "target_") || len(a.Target) != len("target_123") {
			t.Errorf("unexpected target %q", a.Target)
		}
		if age := testNow.Sub(a.Timestamp); age < time.Minute || age > time.Hour {
			t.Errorf("activity age %v out of range", age)
		}
	}
}
