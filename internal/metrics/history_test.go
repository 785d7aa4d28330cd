package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(cpuPct float64) *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		CPU:       &CPUStats{Percent: cpuPct, Cores: 8},
		Memory:    &MemoryStats{TotalBytes: 8 << 30, UsedBytes: 4 << 30, Percent: 50},
		Network:   &NetworkStats{UpBytesPerSec: 100, DownBytesPerSec: 200},
		Battery:   &BatteryStats{Percent: 80},
	}
}

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
		{"small size", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			assert.NotNil(t, h)
			assert.Equal(t, tt.expected, h.size)
		})
	}
}

func TestHistoryPush(t *testing.T) {
	h := NewHistory(10)

	h.Push(sampleSnapshot(50))
	assert.Equal(t, 1, h.Count())

	// Push nil should be ignored
	h.Push(nil)
	assert.Equal(t, 1, h.Count())
}

func TestHistoryPushMultiple(t *testing.T) {
	h := NewHistory(10)

	for i := 0; i < 5; i++ {
		h.Push(sampleSnapshot(float64(i * 10)))
	}

	assert.Equal(t, 5, h.Count())

	cpu := h.CPU(5)
	require.Len(t, cpu, 5)
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, cpu)
}

func TestHistoryRingBufferOverflow(t *testing.T) {
	h := NewHistory(5)

	for i := 0; i < 8; i++ {
		h.Push(sampleSnapshot(float64(i)))
	}

	// Only the newest 5 values survive, oldest first.
	assert.Equal(t, 5, h.Count())
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, h.CPU(10))
}

func TestHistorySkipsMissingSubsystems(t *testing.T) {
	h := NewHistory(10)

	h.Push(&Snapshot{Timestamp: time.Now()})
	assert.Equal(t, 0, h.Count())
	assert.Nil(t, h.Memory(5))
	assert.Nil(t, h.Battery(5))

	h.Push(&Snapshot{Memory: &MemoryStats{Percent: 42}})
	assert.Equal(t, 0, h.Count())
	assert.Equal(t, []float64{42}, h.Memory(5))
}

func TestHistoryNetworkRates(t *testing.T) {
	h := NewHistory(10)

	for i := 1; i <= 3; i++ {
		h.Push(&Snapshot{Network: &NetworkStats{
			UpBytesPerSec:   float64(i * 100),
			DownBytesPerSec: float64(i * 1000),
		}})
	}

	up, down := h.NetworkRates(2)
	assert.Equal(t, []float64{200, 300}, up)
	assert.Equal(t, []float64{2000, 3000}, down)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 3; i++ {
		h.Push(sampleSnapshot(float64(i)))
	}
	require.Equal(t, 3, h.Count())

	h.Clear()
	assert.Equal(t, 0, h.Count())
	assert.Nil(t, h.CPU(5))
}

func TestHistoryGetLastBounds(t *testing.T) {
	h := NewHistory(10)
	h.Push(sampleSnapshot(25))

	assert.Nil(t, h.CPU(0))
	assert.Nil(t, h.CPU(-1))
	assert.Equal(t, []float64{25}, h.CPU(100))
}

func TestHistoryConcurrentAccess(t *testing.T) {
	h := NewHistory(50)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			h.Push(sampleSnapshot(float64(n)))
		}(i)
		go func() {
			defer wg.Done()
			h.CPU(10)
			h.Memory(10)
			h.NetworkRates(10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, h.Count())
}
