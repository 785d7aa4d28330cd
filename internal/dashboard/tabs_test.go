package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTabSet(t *testing.T) {
	ts := NewTabSet("a", "b", "c")

	assert.Equal(t, 0, ts.Selected())
	assert.Equal(t, "a", ts.Title())
	assert.Equal(t, 3, ts.Count())
	assert.True(t, ts.Dirty(), "fresh tab set is dirty so the bar renders once")
}

func TestDashboardTabs(t *testing.T) {
	ts := newDashboardTabs()

	assert.Equal(t, 7, ts.Count())
	assert.Equal(t, "Overview", ts.Titles()[TabOverview])
	assert.Equal(t, "CPU", ts.Titles()[TabCPU])
	assert.Equal(t, "Memory", ts.Titles()[TabMemory])
	assert.Equal(t, "Storage", ts.Titles()[TabStorage])
	assert.Equal(t, "Battery", ts.Titles()[TabBattery])
	assert.Equal(t, "Network", ts.Titles()[TabNetwork])
	assert.Equal(t, "Processes", ts.Titles()[TabProcesses])
}

func TestTabSetNextWraps(t *testing.T) {
	ts := NewTabSet("a", "b", "c")

	ts.Next()
	assert.Equal(t, 1, ts.Selected())
	ts.Next()
	assert.Equal(t, 2, ts.Selected())
	ts.Next()
	assert.Equal(t, 0, ts.Selected(), "next from the last tab wraps to the first")
}

func TestTabSetPrevWraps(t *testing.T) {
	ts := NewTabSet("a", "b", "c")

	ts.Prev()
	assert.Equal(t, 2, ts.Selected(), "prev from the first tab wraps to the last")
	ts.Prev()
	assert.Equal(t, 1, ts.Selected())
}

func TestTabSetFiveTabSequence(t *testing.T) {
	ts := NewTabSet("one", "two", "three", "four", "five")

	expected := []int{1, 2, 3}
	for _, want := range expected {
		ts.Next()
		assert.Equal(t, want, ts.Selected())
	}
}

func TestTabSetSelect(t *testing.T) {
	ts := NewTabSet("a", "b", "c")
	ts.TakeDirty()

	ts.Select(2)
	assert.Equal(t, 2, ts.Selected())
	assert.True(t, ts.Dirty())
	ts.TakeDirty()

	// Out-of-range indexes are ignored and do not dirty the bar.
	ts.Select(-1)
	ts.Select(3)
	assert.Equal(t, 2, ts.Selected())
	assert.False(t, ts.Dirty())

	// Re-selecting the current tab does not dirty the bar.
	ts.Select(2)
	assert.False(t, ts.Dirty())
}

func TestTabSetDirtyLifecycle(t *testing.T) {
	ts := NewTabSet("a", "b")

	assert.True(t, ts.TakeDirty())
	assert.False(t, ts.Dirty(), "TakeDirty clears the flag")
	assert.False(t, ts.TakeDirty(), "a tick without navigation stays clean")

	ts.Next()
	assert.True(t, ts.Dirty(), "navigation dirties the bar in the same tick")
	assert.True(t, ts.TakeDirty())
	assert.False(t, ts.Dirty())
}

func TestTabSetEmpty(t *testing.T) {
	ts := NewTabSet()

	ts.Next()
	ts.Prev()
	assert.Equal(t, 0, ts.Selected())
	assert.Equal(t, "", ts.Title())
}
