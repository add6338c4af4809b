package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nao1215/osintnexus/internal/feed"
	"github.com/nao1215/osintnexus/internal/model"
	"github.com/nao1215/osintnexus/internal/prefs"
	"github.com/nao1215/osintnexus/internal/sample"
)

// Widget names that gate dashboard panels.
const (
	widgetThreatSummary = "Threat Summary Widget"
	widgetInvestigation = "Investigation Status"
)

func (m Model) widgetEnabled(name string) bool {
	for _, w := range m.widgets {
		if w.Name == name {
			return w.Enabled
		}
	}
	return true
}

func (m Model) loading(what string) string {
	return fmt.Sprintf("%s Loading %s...", m.spinner.View(), what)
}

// sampleNotice labels data that came from the local fallback.
func (m Model) sampleNotice(fallback bool) string {
	if !fallback {
		return ""
	}
	return m.styles.Warning.Render("⚠ Backend unavailable, showing sample data") + "\n\n"
}

func (m Model) viewDashboard() string {
	if !m.dashLoaded {
		return m.loading("dashboard")
	}

	s := m.styles
	now := m.now()
	data := m.dashboard.Data
	var b strings.Builder

	b.WriteString(m.sampleNotice(m.dashboard.Fallback))

	if m.widgetEnabled(widgetThreatSummary) {
		b.WriteString(s.Subtitle.Render("Threat Alerts"))
		b.WriteString("\n")
		if len(data.Overview.Alerts) == 0 {
			b.WriteString(s.Muted.Render("  No active alerts"))
			b.WriteString("\n")
		}
		for _, a := range data.Overview.Alerts {
			b.WriteString(fmt.Sprintf("  %-8s %s  %s\n", s.Severity(a.Severity), a.Title, s.Muted.Render(sample.FormatTimeAgo(now, a.Timestamp))))
		}
		b.WriteString("\n")
	}

	if m.widgetEnabled(widgetInvestigation) {
		b.WriteString(s.Subtitle.Render("Recent Activity"))
		b.WriteString("\n")
		for _, act := range data.Overview.RecentActivities {
			b.WriteString(fmt.Sprintf("  %-8s %-12s %s  %s\n", act.Module, act.Target, s.Status(act.Status), s.Muted.Render(sample.FormatTimeAgo(now, act.Timestamp))))
		}
		b.WriteString("\n")
	}

	if len(data.Overview.ModuleStats) > 0 {
		b.WriteString(s.Subtitle.Render("Module Performance"))
		b.WriteString("\n")
		for _, st := range data.Overview.ModuleStats {
			b.WriteString(fmt.Sprintf("  %-14s %3.0f%%  %4d runs\n", st.Module, st.SuccessRate*100, st.TotalRuns))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.Subtitle.Render("Intelligence Modules"))
	b.WriteString("\n")
	for i, mod := range data.Modules {
		line := fmt.Sprintf("%s %-14s %s", mod.Glyph, mod.ShortName(), mod.Title)
		if i == m.moduleCursor {
			b.WriteString(s.Selected.Render("› ") + s.ModuleAccent(mod, line))
		} else {
			b.WriteString("  " + s.Body.Render(line))
		}
		b.WriteString(s.Muted.Render(fmt.Sprintf("  %d tools", len(mod.Tools))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewInvestigations() string {
	if !m.invLoaded {
		return m.loading("investigations")
	}

	s := m.styles
	var b strings.Builder
	b.WriteString(m.sampleNotice(m.investigations.Fallback))
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	list := feed.FilterInvestigations(m.investigations.Data, m.search.Value())
	if len(list) == 0 {
		b.WriteString(s.Muted.Render("No investigations found"))
		return b.String()
	}

	now := m.now()
	for _, inv := range list {
		title := inv.Target
		if inv.Tool != "" {
			title += s.Muted.Render("  " + inv.Tool)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Subtitle.Render(title),
			fmt.Sprintf("%s  %s", s.Badge.Render(inv.Module), s.Status(inv.Status)),
			s.Muted.Render(fmt.Sprintf("Created %s • Updated %s", sample.FormatTimeAgo(now, inv.CreatedAt), sample.FormatTimeAgo(now, inv.UpdatedAt))),
		)
		b.WriteString(s.Card.Width(min(m.contentWidth(), 76)).Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewWidgets() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Muted.Render("Choose which panels appear on the dashboard."))
	b.WriteString("\n\n")
	for i, w := range m.widgets {
		box := "[ ]"
		if w.Enabled {
			box = s.Success.Render("[✓]")
		}
		name := s.Body.Render(w.Name)
		prefix := "  "
		if i == m.widgetCursor {
			name = s.Selected.Render(w.Name)
			prefix = s.Selected.Render("› ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, name))
		b.WriteString("      " + s.Muted.Render(w.Description) + "\n")
	}
	return b.String()
}

func (m Model) viewNotifications() string {
	if !m.notesLoaded {
		return m.loading("notifications")
	}

	s := m.styles
	var b strings.Builder
	b.WriteString(m.sampleNotice(m.notesFallback))
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d unread", feed.UnreadCount(m.notifications))))
	b.WriteString("\n\n")

	now := m.now()
	for i, n := range m.notifications {
		marker := "  "
		if !n.Read {
			marker = s.Info.Render("● ")
		}
		title := s.Body.Render(n.Title)
		if i == m.noteCursor {
			title = s.Selected.Render(n.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, notificationIcon(s, n.Type), title, s.Muted.Render(sample.FormatTimeAgo(now, n.Timestamp))))
		b.WriteString("     " + s.Muted.Render(n.Message) + "\n")
	}
	return b.String()
}

func notificationIcon(s Styles, kind model.NotificationKind) string {
	switch kind {
	case model.NotificationSuccess:
		return s.Success.Render("✓")
	case model.NotificationWarning:
		return s.Warning.Render("!")
	case model.NotificationError:
		return s.Error.Render("✗")
	default:
		return s.Info.Render("i")
	}
}

func (m Model) viewProfile() string {
	if !m.profileLoaded {
		return m.loading("profile")
	}

	s := m.styles
	p := m.profile.Data
	current := m.store.Current()
	var b strings.Builder

	b.WriteString(m.sampleNotice(m.profile.Fallback))
	card := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(p.Username),
		s.Body.Render(p.Email),
		s.Muted.Render("Member since "+p.CreatedAt.Format("January 2006")),
		"",
		fmt.Sprintf("Investigations  %d", p.InvestigationsCount),
		fmt.Sprintf("Success rate    %.0f%%", p.SuccessRate*100),
	)
	b.WriteString(s.Card.Width(min(m.contentWidth(), 60)).Render(card))
	b.WriteString("\n\n")

	b.WriteString(s.Subtitle.Render("Appearance"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Theme         %s\n", titleCase(string(current.Theme))))
	b.WriteString("  Color scheme\n")
	for _, cs := range prefs.ColorSchemes {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Primary)).Render("■")
		name := s.Body.Render(cs.Name)
		if cs.Name == current.Scheme().Name {
			name = s.Selected.Render(cs.Name + " ✓")
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", swatch, name))
	}
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("t toggle theme • c next color scheme"))
	return b.String()
}
