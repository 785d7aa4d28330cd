package metrics

import "sync"

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 60

// History retains recent metric samples in fixed-size ring buffers for
// sparkline rendering. It is safe for concurrent use.
type History struct {
	mu   sync.RWMutex
	size int

	cpu  *ringBuffer
	mem  *ringBuffer
	up   *ringBuffer
	down *ringBuffer
	batt *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size: size,
		cpu:  newRingBuffer(size),
		mem:  newRingBuffer(size),
		up:   newRingBuffer(size),
		down: newRingBuffer(size),
		batt: newRingBuffer(size),
	}
}

// Push records the percentages and rates from a snapshot. Subsystems missing
// from the snapshot are skipped so their buffers keep only real samples.
func (h *History) Push(snap *Snapshot) {
	if snap == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if snap.CPU != nil {
		h.cpu.push(snap.CPU.Percent)
	}
	if snap.Memory != nil {
		h.mem.push(snap.Memory.Percent)
	}
	if snap.Network != nil {
		h.up.push(snap.Network.UpBytesPerSec)
		h.down.push(snap.Network.DownBytesPerSec)
	}
	if snap.Battery != nil {
		h.batt.push(snap.Battery.Percent)
	}
}

// CPU returns the last count CPU percentage values, oldest first.
// Returns fewer values if not enough history is available.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.getLast(count)
}

// Memory returns the last count memory percentage values, oldest first.
func (h *History) Memory(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mem.getLast(count)
}

// NetworkRates returns the last count upload and download rates in bytes per
// second, oldest first.
func (h *History) NetworkRates(count int) (up, down []float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.up.getLast(count), h.down.getLast(count)
}

// Battery returns the last count battery percentage values, oldest first.
func (h *History) Battery(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.batt.getLast(count)
}

// Count returns the number of CPU data points stored.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.count
}

// Clear removes all stored history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cpu = newRingBuffer(h.size)
	h.mem = newRingBuffer(h.size)
	h.up = newRingBuffer(h.size)
	h.down = newRingBuffer(h.size)
	h.batt = newRingBuffer(h.size)
}

// newRingBuffer creates a ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is at
	// head-1 and we want count values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
