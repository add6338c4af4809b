package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nao1215/osintnexus/internal/feed"
	"github.com/nao1215/osintnexus/internal/nav"
	"github.com/nao1215/osintnexus/internal/prefs"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncViewport()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case dashboardLoadedMsg:
		m.dashboard = msg.result
		m.dashLoaded = true
		m.dashLoading = false
		if m.moduleCursor >= len(m.dashboard.Data.Modules) {
			m.moduleCursor = 0
		}
		return m, nil
	case investigationsLoadedMsg:
		m.investigations = msg.result
		m.invLoaded = true
		m.invLoading = false
		return m, nil
	case notificationsLoadedMsg:
		m.notifications = msg.result.Data
		m.notesFallback = msg.result.Fallback
		m.notesLoaded = true
		m.notesLoading = false
		m.noteCursor = 0
		return m, nil
	case profileLoadedMsg:
		m.profile = msg.result
		m.profileLoaded = true
		m.profileLoading = false
		return m, nil
	case executionDoneMsg:
		if !m.session.Complete(msg.req, msg.result) {
			m.logger.Debug("dropped stale execution result", "module", msg.req.Module, "tool", msg.req.Tool)
		}
		return m, nil
	case authDoneMsg:
		return m.handleAuthDone()
	case prefsChangedMsg:
		if _, err := m.store.Load(); err != nil {
			m.logger.Warn("failed to reload preferences", "path", m.store.Path(), "error", err)
		}
		m.applyPrefs()
		return m, waitForPrefsChange(m.prefsChanges)
	case reportSavedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to export report", "error", msg.err)
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Report saved to " + msg.path
		}
		return m, nil
	}
	return m, nil
}

// typing reports whether a text input has focus, in which case printable
// keys belong to the input.
func (m Model) typing() bool {
	return m.search.Focused() || m.toolFilter.Focused() || m.targetInput.Focused()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	}

	switch msg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.route.Page == nav.PageOnboarding {
		return m.updateOnboarding(msg)
	}

	if !m.typing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.session.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			return m.toggleTheme(), nil
		case key.Matches(msg, m.keys.Color):
			return m.cycleColor(), nil
		case key.Matches(msg, m.keys.NextPage):
			return m.cyclePage(1)
		case key.Matches(msg, m.keys.PrevPage):
			return m.cyclePage(-1)
		}
		if r := msg.Runes; len(r) == 1 && r[0] >= '1' && int(r[0]-'1') < len(nav.Items) && !m.session.IsOpen() {
			return m.navigate(nav.Items[r[0]-'1'].Path)
		}
	}

	switch m.route.Page {
	case nav.PageDashboard:
		return m.updateDashboard(msg)
	case nav.PageInvestigations:
		return m.updateInvestigations(msg)
	case nav.PageWidgets:
		return m.updateWidgets(msg)
	case nav.PageNotifications:
		return m.updateNotifications(msg)
	case nav.PageProfile:
		return m.updateProfile(msg)
	case nav.PageModule:
		if m.session.IsOpen() {
			return m.updateModal(msg)
		}
		return m.updateModule(msg)
	}
	return m, nil
}

// cyclePage moves through the navigation items. From a module screen it
// starts at the dashboard.
func (m Model) cyclePage(step int) (Model, tea.Cmd) {
	if m.session.IsOpen() {
		return m, nil
	}
	i := nav.IndexOf(m.route.Page)
	if i < 0 {
		i = 0
	} else {
		i = (i + step + len(nav.Items)) % len(nav.Items)
	}
	return m.navigate(nav.Items[i].Path)
}

func (m Model) toggleTheme() Model {
	mode, err := m.store.ToggleTheme()
	if err != nil {
		m.logger.Warn("failed to save theme", "error", err)
		m.status = "Theme changed but could not be saved"
	} else {
		m.status = "Theme: " + string(mode)
	}
	m.applyPrefs()
	return m
}

func (m Model) cycleColor() Model {
	next := prefs.NextColorScheme(m.store.Current().ColorScheme)
	if err := m.store.SetColorScheme(next.Name); err != nil {
		m.logger.Warn("failed to save color scheme", "error", err)
		m.status = "Color scheme changed but could not be saved"
	} else {
		m.status = "Color scheme: " + next.Name
	}
	m.applyPrefs()
	return m
}

func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m Model) updateDashboard(msg tea.KeyMsg) (Model, tea.Cmd) {
	modules := m.dashboard.Data.Modules
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moduleCursor = moveCursor(m.moduleCursor, -1, len(modules))
	case key.Matches(msg, m.keys.Down):
		m.moduleCursor = moveCursor(m.moduleCursor, 1, len(modules))
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Select):
		if m.moduleCursor < len(modules) {
			return m.navigate(nav.ModulePath(modules[m.moduleCursor].ID))
		}
	}
	return m, nil
}

func (m Model) updateInvestigations(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Back):
		m.search.Reset()
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	return m, nil
}

func (m Model) updateWidgets(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.widgetCursor = moveCursor(m.widgetCursor, -1, len(m.widgets))
	case key.Matches(msg, m.keys.Down):
		m.widgetCursor = moveCursor(m.widgetCursor, 1, len(m.widgets))
	case key.Matches(msg, m.keys.Select):
		if m.widgetCursor < len(m.widgets) {
			m.widgets[m.widgetCursor].Enabled = !m.widgets[m.widgetCursor].Enabled
		}
	}
	return m, nil
}

func (m Model) updateNotifications(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.noteCursor = moveCursor(m.noteCursor, -1, len(m.notifications))
	case key.Matches(msg, m.keys.Down):
		m.noteCursor = moveCursor(m.noteCursor, 1, len(m.notifications))
	case key.Matches(msg, m.keys.Select):
		if m.noteCursor < len(m.notifications) {
			feed.MarkRead(m.notifications, m.notifications[m.noteCursor].ID)
		}
	case key.Matches(msg, m.keys.ReadAll):
		feed.MarkAllRead(m.notifications)
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	return m, nil
}

func (m Model) updateProfile(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Reload) {
		return m.reload()
	}
	return m, nil
}
