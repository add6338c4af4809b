package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nao1215/osintnexus/internal/onboarding"
)

func (m Model) updateOnboarding(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.flow.State() {
	case onboarding.Step0, onboarding.Step1, onboarding.Step2:
		switch {
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Select):
			m.flow.Next()
		case key.Matches(msg, m.keys.Left):
			m.flow.Back()
		}
	case onboarding.BiometricPrompt:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.methodCursor = moveCursor(m.methodCursor, -1, len(onboarding.Methods))
		case key.Matches(msg, m.keys.Down):
			m.methodCursor = moveCursor(m.methodCursor, 1, len(onboarding.Methods))
		case key.Matches(msg, m.keys.Select):
			delay, err := m.flow.Authenticate(onboarding.Methods[m.methodCursor])
			if err != nil {
				m.logger.Warn("authentication could not start", "error", err)
				return m, nil
			}
			return m, authDelayCmd(delay)
		}
	}
	return m, nil
}

// handleAuthDone completes onboarding and enters the dashboard.
func (m Model) handleAuthDone() (Model, tea.Cmd) {
	if m.flow == nil {
		return m, nil
	}
	if err := m.flow.Confirm(); err != nil {
		if !m.flow.Done() {
			return m, nil
		}
		m.logger.Warn("onboarding completion was not saved", "error", err)
	}
	m.flow = nil
	return m.navigate(m.route.Requested)
}

func (m Model) viewOnboarding() string {
	var b strings.Builder
	s := m.styles

	switch state := m.flow.State(); state {
	case onboarding.Step0, onboarding.Step1, onboarding.Step2:
		slide, _ := m.flow.Slide()
		b.WriteString(s.Title.Render(slide.Title))
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render(slide.Subtitle))
		b.WriteString("\n\n")
		b.WriteString(s.Body.Width(min(m.contentWidth(), 72)).Render(slide.Description))
		b.WriteString("\n\n")
		for _, f := range slide.Features {
			b.WriteString(s.Success.Render("  ✓ "))
			b.WriteString(s.Body.Render(f))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.slideDots(int(state)))
		b.WriteString("\n\n")
		next := "→ Next"
		if m.flow.IsLastSlide() {
			next = "→ Get Started"
		}
		hint := s.Muted.Render(next)
		if state != onboarding.Step0 {
			hint = s.Muted.Render("← Back   ") + hint
		}
		b.WriteString(hint)

	case onboarding.BiometricPrompt:
		b.WriteString(s.Title.Render(onboarding.PromptTitle))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(onboarding.PromptSubtitle))
		b.WriteString("\n\n")
		for i, method := range onboarding.Methods {
			line := "  " + method.Label()
			if i == m.methodCursor {
				line = s.Selected.Render("› " + method.Label())
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("enter to authenticate"))

	case onboarding.Authenticating:
		b.WriteString(s.Title.Render(onboarding.PromptTitle))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s Authenticating with %s...", m.spinner.View(), m.flow.Method().Label()))

	case onboarding.Complete:
		b.WriteString(s.Success.Render(onboarding.DoneTitle))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(onboarding.DoneSubtitle))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// slideDots renders the carousel position, e.g. "● ○ ○".
func (m Model) slideDots(current int) string {
	dots := make([]string, len(onboarding.Slides))
	for i := range dots {
		if i == current {
			dots[i] = m.styles.Selected.Render("●")
		} else {
			dots[i] = m.styles.Muted.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
