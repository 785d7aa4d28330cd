package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitUpper  = "Q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyPrevTab    = "up"
	KeyPrevTabK   = "k"
	KeyPrevTabAlt = "shift+tab"
	KeyNextTab    = "down"
	KeyNextTabJ   = "j"
	KeyNextTabAlt = "tab"
	KeyEscape     = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled. Each message moves the tab
// selection at most one step.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	switch key {
	case KeyQuit, KeyQuitUpper, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.sampleCmd()

	case KeyPrevTab, KeyPrevTabK, KeyPrevTabAlt:
		m.tabs.Prev()
		m.tabChanged()
		return true, nil

	case KeyNextTab, KeyNextTabJ, KeyNextTabAlt:
		m.tabs.Next()
		m.tabChanged()
		return true, nil

	case KeyEscape:
		// A bare escape is deliberately inert; escape sequences for the
		// arrow keys arrive already decoded.
		return true, nil
	}

	// Digit keys jump straight to a tab.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		m.tabs.Select(int(key[0] - '1'))
		m.tabChanged()
		return true, nil
	}

	// The Processes tab claims scroll keys via its viewport.
	if m.tabs.Selected() == TabProcesses && m.viewportReady {
		switch key {
		case "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end":
			var cmd tea.Cmd
			m.procViewport, cmd = m.procViewport.Update(msg)
			return true, cmd
		}
	}

	return false, nil
}
