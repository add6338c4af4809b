package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/execution"
	"github.com/nao1215/osintnexus/internal/nav"
	"github.com/nao1215/osintnexus/internal/target"
)

// currentModule returns the module of the route. The route only resolves to
// PageModule for catalog ids.
func (m Model) currentModule() catalog.Module {
	mod, _ := catalog.Lookup(m.route.ModuleID)
	return mod
}

func (m Model) visibleTools() []catalog.Tool {
	return m.currentModule().FilterTools(m.toolFilter.Value())
}

func (m Model) updateModule(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.toolFilter.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.toolFilter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.toolFilter, cmd = m.toolFilter.Update(msg)
		m.toolCursor = moveCursor(m.toolCursor, 0, len(m.visibleTools()))
		return m, cmd
	}

	tools := m.visibleTools()
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.toolFilter.Focus()
	case key.Matches(msg, m.keys.Up):
		m.toolCursor = moveCursor(m.toolCursor, -1, len(tools))
	case key.Matches(msg, m.keys.Down):
		m.toolCursor = moveCursor(m.toolCursor, 1, len(tools))
	case key.Matches(msg, m.keys.Back):
		if m.toolFilter.Value() != "" {
			m.toolFilter.Reset()
			m.toolCursor = 0
			return m, nil
		}
		return m.navigate(nav.PathDashboard)
	case key.Matches(msg, m.keys.Select):
		if m.toolCursor < len(tools) {
			return m.openTool(tools[m.toolCursor].Name)
		}
	}
	return m, nil
}

// openTool opens the execution modal for a tool of the current module.
func (m Model) openTool(tool string) (Model, tea.Cmd) {
	if err := m.session.Open(m.route.ModuleID, tool); err != nil {
		m.logger.Warn("failed to open tool", "module", m.route.ModuleID, "tool", tool, "error", err)
		return m, nil
	}
	m.status = ""
	m.targetInput.Reset()
	return m, m.targetInput.Focus()
}

// closeModal closes the modal and clears the target and any result.
func (m Model) closeModal() Model {
	m.session.Close()
	m.targetInput.Reset()
	m.targetInput.Blur()
	m.status = ""
	return m
}

func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		return m.closeModal(), nil
	}

	if m.session.Loading() {
		return m, nil
	}

	if res, ok := m.session.Result(); ok {
		switch {
		case key.Matches(msg, m.keys.Rerun):
			m.session.Reset()
			m.targetInput.Reset()
			m.status = ""
			return m, m.targetInput.Focus()
		case key.Matches(msg, m.keys.Save):
			m.status = "Saving report..."
			return m, saveReportCmd(m.reportDir, res)
		}
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.targetInput, cmd = m.targetInput.Update(msg)
	m.session.SetTarget(m.targetInput.Value())
	return m, cmd
}

// submit starts a run for the current target. A blank target issues no
// request.
func (m Model) submit() (Model, tea.Cmd) {
	m.session.SetTarget(m.targetInput.Value())
	req, err := m.session.Begin(m.ctx)
	switch {
	case errors.Is(err, execution.ErrEmptyTarget):
		m.status = "Enter a target to analyze"
		return m, nil
	case err != nil:
		m.logger.Debug("submit ignored", "error", err)
		return m, nil
	}
	m.status = ""
	m.targetInput.Blur()
	m.logger.Info("running tool", "module", req.Module, "tool", req.Tool)
	return m, tea.Batch(runExecutionCmd(m.session, req), m.spinner.Tick)
}

func (m Model) viewModule() string {
	mod := m.currentModule()
	s := m.styles
	var b strings.Builder

	b.WriteString(s.ModuleAccent(mod, mod.Glyph+" "+mod.Title))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(mod.Description))
	b.WriteString("\n\n")

	if m.toolFilter.Focused() || m.toolFilter.Value() != "" {
		b.WriteString(m.toolFilter.View())
		b.WriteString("\n\n")
	}

	tools := m.visibleTools()
	if len(tools) == 0 {
		b.WriteString(s.Muted.Render("No tools match the filter."))
		return b.String()
	}

	width := min(m.contentWidth(), 76)
	for i, tool := range tools {
		card := s.Card
		name := s.Subtitle.Render(tool.Name)
		if i == m.toolCursor {
			card = s.CardSelected
			name = s.Selected.Render("› " + tool.Name)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			name+"  "+s.ToolStatus(tool.Status),
			s.Muted.Render(titleCase(tool.Category)),
			s.Body.Render(tool.Description),
		)
		b.WriteString(card.Width(width).Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewModal() string {
	mod := m.currentModule()
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(m.session.Tool()))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(mod.Title))
	b.WriteString("\n\n")

	res, hasResult := m.session.Result()
	switch {
	case m.session.Loading():
		b.WriteString(fmt.Sprintf("Target: %s\n\n", m.session.Target()))
		b.WriteString(fmt.Sprintf("%s Running %s...", m.spinner.View(), m.session.Tool()))
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("esc cancel"))
	case hasResult:
		b.WriteString(m.viewResult(res))
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("n new analysis • s save report • esc close"))
	default:
		b.WriteString(m.targetInput.View())
		b.WriteString("\n")
		if v := strings.TrimSpace(m.targetInput.Value()); v != "" {
			b.WriteString(s.Muted.Render("Detected: " + target.Classify(v).Label()))
		}
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("enter run • esc close"))
	}

	return s.Modal.Width(min(m.contentWidth(), 80)).Render(b.String())
}

func (m Model) viewResult(res execution.Result) string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Success.Render("✓ " + titleCase(res.Status)))
	if res.Placeholder {
		b.WriteString("  ")
		b.WriteString(s.Warning.Render("placeholder data (backend unavailable)"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Target: %s", res.Target))
	if res.TargetType != "" {
		b.WriteString(s.Muted.Render(" (" + res.TargetType.Label() + ")"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.Subtitle.Render("Findings"))
	b.WriteString("\n")
	for _, f := range res.Findings {
		b.WriteString("  • ")
		b.WriteString(f)
		b.WriteString("\n")
	}

	if md := res.Metadata; md != nil {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render("Metadata"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Execution time  %s\n", md.ExecutionTimeLabel()))
		b.WriteString(fmt.Sprintf("  Confidence      %s\n", md.ConfidenceLabel()))
		b.WriteString(fmt.Sprintf("  Data sources    %d\n", md.DataSources))
		b.WriteString(fmt.Sprintf("  Alerts          %d", md.Alerts))
	}
	return strings.TrimRight(b.String(), "\n")
}
