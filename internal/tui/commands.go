package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/execution"
	"github.com/nao1215/osintnexus/internal/feed"
	"github.com/nao1215/osintnexus/internal/report"
)

// dashboardLoadedMsg carries the dashboard page data.
type dashboardLoadedMsg struct {
	result feed.Result[feed.Dashboard]
}

type investigationsLoadedMsg struct {
	result feed.Result[[]api.Investigation]
}

type notificationsLoadedMsg struct {
	result feed.Result[[]api.Notification]
}

type profileLoadedMsg struct {
	result feed.Result[api.Profile]
}

// executionDoneMsg is sent when a tool run returns, successful or not.
type executionDoneMsg struct {
	req    execution.Request
	result execution.Result
}

// authDoneMsg ends the simulated biometric check.
type authDoneMsg struct{}

// prefsChangedMsg is sent when the preferences file changed on disk.
type prefsChangedMsg struct{}

// reportSavedMsg reports the outcome of a report export.
type reportSavedMsg struct {
	path string
	err  error
}

func loadDashboardCmd(ctx context.Context, f *feed.Feed) tea.Cmd {
	return func() tea.Msg {
		return dashboardLoadedMsg{result: f.Dashboard(ctx)}
	}
}

func loadInvestigationsCmd(ctx context.Context, f *feed.Feed) tea.Cmd {
	return func() tea.Msg {
		return investigationsLoadedMsg{result: f.Investigations(ctx)}
	}
}

func loadNotificationsCmd(ctx context.Context, f *feed.Feed) tea.Cmd {
	return func() tea.Msg {
		return notificationsLoadedMsg{result: f.Notifications(ctx)}
	}
}

func loadProfileCmd(ctx context.Context, f *feed.Feed) tea.Cmd {
	return func() tea.Msg {
		return profileLoadedMsg{result: f.Profile(ctx)}
	}
}

// runExecutionCmd performs req off the update loop.
func runExecutionCmd(s *execution.Session, req execution.Request) tea.Cmd {
	return func() tea.Msg {
		return executionDoneMsg{req: req, result: s.Run(req)}
	}
}

func authDelayCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return authDoneMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return authDoneMsg{}
	})
}

// waitForPrefsChange blocks until the watcher reports a change. It returns
// nil when the watcher is closed, which ends the subscription.
func waitForPrefsChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return prefsChangedMsg{}
	}
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// reportFileName builds "<module>-<tool>-<timestamp>.md".
func reportFileName(res execution.Result) string {
	tool := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(res.Tool), "-"), "-")
	if tool == "" {
		tool = "tool"
	}
	return fmt.Sprintf("%s-%s-%s.md", res.Module, tool, res.ExecutedAt.Format("20060102-150405"))
}

// saveReportCmd writes res as a Markdown report into dir.
func saveReportCmd(dir string, res execution.Result) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return reportSavedMsg{err: fmt.Errorf("failed to create report directory: %w", err)}
		}
		path := filepath.Join(dir, reportFileName(res))
		f, err := os.Create(filepath.Clean(path))
		if err != nil {
			return reportSavedMsg{err: fmt.Errorf("failed to create report file: %w", err)}
		}
		if _, err := report.NewMarkdownWriter(f).Write(res); err != nil {
			_ = f.Close()
			return reportSavedMsg{err: fmt.Errorf("failed to write report: %w", err)}
		}
		if err := f.Close(); err != nil {
			return reportSavedMsg{err: fmt.Errorf("failed to write report: %w", err)}
		}
		return reportSavedMsg{path: path}
	}
}
