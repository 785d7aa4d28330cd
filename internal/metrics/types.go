package metrics

import "time"

// Snapshot is one sampling pass over the device. Every pointer field may be
// nil, meaning that subsystem could not be read this tick; the dashboard
// renders nil fields as a fixed placeholder. A Snapshot is created fresh each
// tick and never mutated after Sample returns.
type Snapshot struct {
	Timestamp time.Time

	// Uptime is zero when the boot time could not be read.
	Uptime time.Duration

	CPU       *CPUStats
	Memory    *MemoryStats
	Swap      *SwapStats
	Storage   *StorageStats
	Battery   *BatteryStats
	Network   *NetworkStats
	Device    *DeviceInfo
	Processes []ProcessInfo
}

// CPUStats contains CPU usage and identity information.
type CPUStats struct {
	Percent float64
	Cores   int
	Model   string
	FreqMHz float64

	LoadAvg [3]float64
	HasLoad bool
}

// MemoryStats contains RAM usage in bytes.
type MemoryStats struct {
	TotalBytes     uint64
	UsedBytes      uint64
	AvailableBytes uint64
	CachedBytes    uint64
	BufferBytes    uint64
	Percent        float64
}

// SwapStats contains swap usage in bytes.
// TotalBytes == 0 means swap is not configured on the device.
type SwapStats struct {
	TotalBytes uint64
	UsedBytes  uint64
	Percent    float64
}

// StorageStats contains usage of a single mount point.
type StorageStats struct {
	Path       string
	TotalBytes uint64
	UsedBytes  uint64
	FreeBytes  uint64
	Percent    float64
}

// BatteryStats comes from termux-battery-status. String fields default to
// "N/A" when the tool omits them.
type BatteryStats struct {
	Percent     float64
	Status      string
	Health      string
	Plugged     string
	Temperature float64
	// CurrentMicroamps is negative while discharging.
	CurrentMicroamps int64
}

// NetworkStats contains cumulative interface counters plus rates derived from
// the previous sample. Addresses are "N/A" when no suitable interface is up.
type NetworkStats struct {
	IPv4 string
	IPv6 string

	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
	ErrIn       uint64
	ErrOut      uint64
	DropIn      uint64
	DropOut     uint64

	// Rates are zero on the first sample (no previous counters yet).
	UpBytesPerSec   float64
	DownBytesPerSec float64
}

// DeviceInfo is static device identity, sampled once at startup.
type DeviceInfo struct {
	Model        string
	Manufacturer string
	OSVersion    string
	Arch         string
	Kernel       string
}

// ProcessInfo is one row of the Processes tab.
type ProcessInfo struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float64
	Status     string
}
