package dashboard

// Tab indexes into the fixed dashboard tab list.
const (
	TabOverview = iota
	TabCPU
	TabMemory
	TabStorage
	TabBattery
	TabNetwork
	TabProcesses
)

// tabTitles is the fixed tab order of the dashboard.
var tabTitles = []string{
	"Overview",
	"CPU",
	"Memory",
	"Storage",
	"Battery",
	"Network",
	"Processes",
}

// TabSet tracks the selected tab in an ordered, fixed tab list. Selection
// wraps cyclically in both directions. The dirty flag records that the
// selection changed since the tab bar was last rendered.
type TabSet struct {
	titles   []string
	selected int
	dirty    bool
}

// NewTabSet creates a tab set with the given titles and the first tab
// selected. The initial state is dirty so the tab bar renders once.
func NewTabSet(titles ...string) TabSet {
	return TabSet{titles: titles, dirty: true}
}

// newDashboardTabs returns the fixed seven-tab set.
func newDashboardTabs() TabSet {
	return NewTabSet(tabTitles...)
}

// Next advances the selection, wrapping from the last tab to the first.
func (t *TabSet) Next() {
	if len(t.titles) == 0 {
		return
	}
	t.selected = (t.selected + 1) % len(t.titles)
	t.dirty = true
}

// Prev moves the selection back, wrapping from the first tab to the last.
func (t *TabSet) Prev() {
	if len(t.titles) == 0 {
		return
	}
	t.selected = (t.selected - 1 + len(t.titles)) % len(t.titles)
	t.dirty = true
}

// Select jumps to the tab at index i. Out-of-range indexes are ignored.
func (t *TabSet) Select(i int) {
	if i < 0 || i >= len(t.titles) {
		return
	}
	if i != t.selected {
		t.dirty = true
	}
	t.selected = i
}

// Selected returns the index of the selected tab.
func (t TabSet) Selected() int {
	return t.selected
}

// Title returns the title of the selected tab.
func (t TabSet) Title() string {
	if len(t.titles) == 0 {
		return ""
	}
	return t.titles[t.selected]
}

// Titles returns the ordered tab titles.
func (t TabSet) Titles() []string {
	return t.titles
}

// Count returns the number of tabs.
func (t TabSet) Count() int {
	return len(t.titles)
}

// Dirty reports whether the selection changed since the last TakeDirty.
func (t TabSet) Dirty() bool {
	return t.dirty
}

// TakeDirty returns the dirty flag and clears it. The renderer calls this
// once per frame so an unchanged selection skips the tab bar re-render.
func (t *TabSet) TakeDirty() bool {
	d := t.dirty
	t.dirty = false
	return d
}
