package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nao1215/osintnexus/internal/feed"
	"github.com/nao1215/osintnexus/internal/nav"
)

// chromeHeight is the number of lines taken by the header, the navigation
// bar, the status line and the short help.
const chromeHeight = 5

// fullHelpExtra is the additional height of the expanded help.
const fullHelpExtra = 5

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.viewHeader()}
	if m.route.Page != nav.PageOnboarding {
		sections = append(sections, m.viewNav())
	} else {
		sections = append(sections, "")
	}
	sections = append(sections, m.viewport.View(), m.viewStatus(), m.viewHelp())
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// body renders the content of the current page.
func (m Model) body() string {
	switch m.route.Page {
	case nav.PageOnboarding:
		if m.flow == nil {
			return ""
		}
		return m.viewOnboarding()
	case nav.PageDashboard:
		return m.viewDashboard()
	case nav.PageInvestigations:
		return m.viewInvestigations()
	case nav.PageWidgets:
		return m.viewWidgets()
	case nav.PageNotifications:
		return m.viewNotifications()
	case nav.PageProfile:
		return m.viewProfile()
	case nav.PageModule:
		if m.session.IsOpen() {
			return m.viewModal()
		}
		return m.viewModule()
	}
	return ""
}

func (m Model) contentWidth() int {
	if m.width <= 4 {
		return 80
	}
	return m.width - 4
}

func (m Model) viewHeader() string {
	title := nav.Title(m.route)
	if m.route.Page == nav.PageModule {
		title = m.currentModule().ShortName()
	}
	left := "◆ OSINT Nexus"
	if title != nav.DefaultTitle {
		left += " · " + title
	}
	if n := feed.UnreadCount(m.notifications); n > 0 {
		left += fmt.Sprintf("  🔔 %d", n)
	}

	header := m.styles.Header
	if m.width > 0 {
		header = header.Width(m.width - 2)
	}
	return header.Render(left)
}

func (m Model) viewNav() string {
	items := make([]string, 0, len(nav.Items))
	for i, it := range nav.Items {
		label := fmt.Sprintf("%d %s", i+1, it.Label)
		if it.Page == m.route.Page {
			items = append(items, m.styles.NavActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}
	return strings.Join(items, " ")
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	return m.styles.Footer.Render(m.status)
}

func (m Model) viewHelp() string {
	return m.styles.Footer.Render(m.help.View(m.keys))
}
