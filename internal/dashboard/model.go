package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/droidtop/droidtop/internal/config"
	"github.com/droidtop/droidtop/internal/logger"
	"github.com/droidtop/droidtop/internal/metrics"
)

// sampleTimeout bounds one sampling pass so a stuck probe cannot pile up
// behind the refresh ticker.
const sampleTimeout = 5 * time.Second

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	cfg    *config.Config
	styles Styles
	log    logger.Logger

	source   metrics.Source
	history  *metrics.History
	snapshot *metrics.Snapshot

	tabs  TabSet
	cache *renderCache

	width      int
	height     int
	interval   time.Duration
	lastUpdate time.Time
	quitting   bool
	sampling   bool

	procViewport  viewport.Model
	viewportReady bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a freshly sampled snapshot.
type snapshotMsg struct {
	snapshot *metrics.Snapshot
	time     time.Time
}

// NewModel creates the dashboard model. The interval is clamped to the
// configured bounds so a bad value cannot spin the refresh loop.
func NewModel(cfg *config.Config, source metrics.Source, log logger.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Noop()
	}

	interval := cfg.Interval
	if interval < config.MinInterval {
		interval = config.MinInterval
	}
	if interval > config.MaxInterval {
		interval = config.MaxInterval
	}

	return Model{
		cfg:      cfg,
		styles:   NewStyles(ThemeByName(cfg.Theme), cfg.Thresholds.Warning, cfg.Thresholds.Critical),
		log:      log,
		source:   source,
		history:  metrics.NewHistory(metrics.DefaultHistorySize),
		tabs:     newDashboardTabs(),
		cache:    newRenderCache(),
		interval: interval,
	}
}

// Init starts the tick timer and triggers an initial sample.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.sampleCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.cache.Invalidate()

	case tickMsg:
		// Schedule the next tick from now: a late tick never causes a
		// catch-up burst.
		cmds := []tea.Cmd{m.tickCmd()}
		if !m.sampling {
			m.sampling = true
			cmds = append(cmds, m.sampleCmd())
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.sampling = false
		m.snapshot = msg.snapshot
		m.lastUpdate = msg.time
		m.history.Push(msg.snapshot)
		m.syncViewport()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Snapshot returns the most recent snapshot, or nil before the first sample.
func (m Model) Snapshot() *metrics.Snapshot {
	return m.snapshot
}

// SelectedTab returns the index of the active tab.
func (m Model) SelectedTab() int {
	return m.tabs.Selected()
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// sample arrived.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd returns a command that collects one snapshot off the UI loop.
func (m Model) sampleCmd() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sampleTimeout)
		defer cancel()
		snap := source.Sample(ctx)
		return snapshotMsg{snapshot: snap, time: time.Now()}
	}
}

// resizeViewport sizes the Processes viewport to the space below the chrome.
func (m *Model) resizeViewport() {
	headerHeight := 4
	footerHeight := 2
	viewportHeight := m.height - headerHeight - footerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.viewportReady {
		m.procViewport = viewport.New(m.width, viewportHeight)
		m.procViewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.procViewport.Width = m.width
		m.procViewport.Height = viewportHeight
	}
	m.syncViewport()
}

// tabChanged consumes the tab set's dirty flag in the same tick the
// selection moved, dropping the cached tab bar so the next render redraws
// it. A tick without navigation leaves the flag clean and the cache intact.
func (m *Model) tabChanged() {
	if m.tabs.TakeDirty() {
		m.cache.Drop(regionTabBar)
	}
	m.syncViewport()
}

// syncViewport refreshes the Processes viewport content when that tab is
// active.
func (m *Model) syncViewport() {
	if !m.viewportReady || m.tabs.Selected() != TabProcesses {
		return
	}
	m.procViewport.SetContent(m.renderProcessTable())
}
