package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/execution"
	"github.com/nao1215/osintnexus/internal/feed"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/nav"
	"github.com/nao1215/osintnexus/internal/onboarding"
	"github.com/nao1215/osintnexus/internal/prefs"
	"github.com/nao1215/osintnexus/internal/sample"
)

// Config wires the dashboard to its collaborators.
type Config struct {
	// Context is the parent of every backend request. Defaults to
	// context.Background.
	Context context.Context

	// Store holds the preferences. It must already be loaded.
	Store *prefs.Store

	// Feed loads page data. A feed without backend shows sample data.
	Feed *feed.Feed

	// Executor runs tools. Nil means every run produces a placeholder.
	Executor execution.Executor

	Logger *slog.Logger

	// ReportDir receives exported Markdown reports.
	ReportDir string

	// Route is the initial path, e.g. "/dashboard" or "/module/osint".
	Route string

	// PrefsChanges signals that the preferences file changed on disk.
	PrefsChanges <-chan struct{}

	// Now is the clock used for "time ago" labels.
	Now func() time.Time

	FlowOptions    []onboarding.Option
	SessionOptions []execution.Option
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	ctx          context.Context
	store        *prefs.Store
	feed         *feed.Feed
	session      *execution.Session
	flow         *onboarding.Flow
	flowOptions  []onboarding.Option
	logger       *slog.Logger
	reportDir    string
	prefsChanges <-chan struct{}
	now          func() time.Time

	route  nav.Route
	styles Styles
	keys   keyMap
	help   help.Model
	width  int
	height int

	// Onboarding
	methodCursor int

	// Dashboard
	dashboard    feed.Result[feed.Dashboard]
	dashLoaded   bool
	dashLoading  bool
	moduleCursor int

	// Investigations
	investigations feed.Result[[]api.Investigation]
	invLoaded      bool
	invLoading     bool
	search         textinput.Model

	// Widgets
	widgets      []sample.Widget
	widgetCursor int

	// Notifications
	notifications []api.Notification
	notesFallback bool
	notesLoaded   bool
	notesLoading  bool
	noteCursor    int

	// Profile
	profile        feed.Result[api.Profile]
	profileLoaded  bool
	profileLoading bool

	// Module screen and tool modal
	toolFilter  textinput.Model
	toolCursor  int
	targetInput textinput.Model
	spinner     spinner.Model

	viewport viewport.Model
	status   string
	quitting bool
}

// New creates the dashboard model.
func New(cfg Config) Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = applog.Discard()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	f := cfg.Feed
	if f == nil {
		f = feed.New(nil, feed.WithLogger(logger))
	}

	sessionOpts := append([]execution.Option{execution.WithLogger(logger)}, cfg.SessionOptions...)

	search := textinput.New()
	search.Placeholder = "Search by target or module"
	search.Prompt = "⌕ "
	search.CharLimit = 128

	toolFilter := textinput.New()
	toolFilter.Placeholder = "Filter tools"
	toolFilter.Prompt = "/ "
	toolFilter.CharLimit = 64

	target := textinput.New()
	target.Placeholder = "Enter target (domain, IP, username, ...)"
	target.Prompt = "› "
	target.CharLimit = 256

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}

	m := Model{
		ctx:          ctx,
		store:        cfg.Store,
		feed:         f,
		session:      execution.NewSession(cfg.Executor, sessionOpts...),
		flowOptions:  cfg.FlowOptions,
		logger:       logger,
		reportDir:    cfg.ReportDir,
		prefsChanges: cfg.PrefsChanges,
		now:          now,
		styles:       NewStyles(cfg.Store.Current()),
		keys:         newKeyMap(),
		help:         help.New(),
		widgets:      sample.Widgets(),
		search:       search,
		toolFilter:   toolFilter,
		targetInput:  target,
		spinner:      sp,
		viewport:     vp,
	}
	m.route = nav.Resolve(cfg.Route, m.store.OnboardingComplete())
	if m.route.Page == nav.PageOnboarding {
		m.flow = onboarding.NewFlow(m.store, m.flowOptions...)
	}
	m.syncViewport()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), waitForPrefsChange(m.prefsChanges), m.spinner.Tick)
}

// Route returns the current route.
func (m Model) Route() nav.Route {
	return m.route
}

// navigate resolves path and returns the command that loads the new page.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	prev := m.route
	m.route = nav.Resolve(path, m.store.OnboardingComplete())
	m.status = ""
	m.search.Blur()

	if m.route.Page == nav.PageOnboarding && m.flow == nil {
		m.flow = onboarding.NewFlow(m.store, m.flowOptions...)
	}

	if m.route.Page == nav.PageModule && (prev.Page != nav.PageModule || prev.ModuleID != m.route.ModuleID) {
		m.session.Close()
		m.targetInput.Reset()
		m.targetInput.Blur()
		m.toolFilter.Reset()
		m.toolFilter.Blur()
		m.toolCursor = 0
	}
	if m.route.Page != nav.PageModule && m.session.IsOpen() {
		m.session.Close()
		m.targetInput.Reset()
	}

	m.logger.Debug("navigate", "requested", path, "page", m.route.Page.String(), "path", m.route.Path)
	return m, m.loadCmd()
}

// loadCmd returns the command that fetches the current page, if it has not
// been loaded yet.
func (m *Model) loadCmd() tea.Cmd {
	switch m.route.Page {
	case nav.PageDashboard:
		if m.dashLoaded || m.dashLoading {
			return nil
		}
		m.dashLoading = true
		return loadDashboardCmd(m.ctx, m.feed)
	case nav.PageInvestigations:
		if m.invLoaded || m.invLoading {
			return nil
		}
		m.invLoading = true
		return loadInvestigationsCmd(m.ctx, m.feed)
	case nav.PageNotifications:
		if m.notesLoaded || m.notesLoading {
			return nil
		}
		m.notesLoading = true
		return loadNotificationsCmd(m.ctx, m.feed)
	case nav.PageProfile:
		if m.profileLoaded || m.profileLoading {
			return nil
		}
		m.profileLoading = true
		return loadProfileCmd(m.ctx, m.feed)
	default:
		return nil
	}
}

// reload forgets the current page data and fetches it again.
func (m Model) reload() (Model, tea.Cmd) {
	switch m.route.Page {
	case nav.PageDashboard:
		m.dashLoaded = false
	case nav.PageInvestigations:
		m.invLoaded = false
	case nav.PageNotifications:
		m.notesLoaded = false
	case nav.PageProfile:
		m.profileLoaded = false
	}
	return m, m.loadCmd()
}

// applyPrefs rebuilds the styles after a preference change.
func (m *Model) applyPrefs() {
	m.styles = NewStyles(m.store.Current())
}

// syncViewport sizes the viewport and refreshes its content.
func (m *Model) syncViewport() {
	if m.width > 0 {
		m.viewport.Width = m.width
	}
	if m.height > 0 {
		h := m.height - chromeHeight
		if m.help.ShowAll {
			h -= fullHelpExtra
		}
		if h < 3 {
			h = 3
		}
		m.viewport.Height = h
	}
	m.viewport.SetContent(m.body())
}
