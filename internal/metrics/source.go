package metrics

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/droidtop/droidtop/internal/logger"
)

// maxProcesses limits the Processes tab to the heaviest consumers.
const maxProcesses = 15

// Source produces metric snapshots. Sample never fails as a whole: a
// subsystem that cannot be read leaves its Snapshot field nil and the rest of
// the snapshot is still usable.
type Source interface {
	Sample(ctx context.Context) *Snapshot
}

// SystemSource reads live metrics from the local device via gopsutil plus the
// Termux command-line tools.
type SystemSource struct {
	log         logger.Logger
	storagePath string
	battery     *BatteryReader

	mu       sync.Mutex
	device   *DeviceInfo
	prevNet  *gopsnet.IOCountersStat
	prevTime time.Time
}

// NewSystemSource returns a source sampling storagePath for disk usage and
// batteryCommand for battery state. Device identity is resolved lazily on the
// first Sample and cached for the life of the source.
func NewSystemSource(storagePath, batteryCommand string, log logger.Logger) *SystemSource {
	if log == nil {
		log = logger.Noop()
	}
	return &SystemSource{
		log:         log,
		storagePath: storagePath,
		battery:     NewBatteryReader(batteryCommand, log),
	}
}

// Sample collects one snapshot. Each subsystem is tolerant of failure; an
// unreadable subsystem is logged at debug level and left nil.
func (s *SystemSource) Sample(ctx context.Context) *Snapshot {
	snap := &Snapshot{Timestamp: time.Now()}

	snap.CPU = s.sampleCPU(ctx)
	snap.Memory, snap.Swap = s.sampleMemory(ctx)
	snap.Storage = s.sampleStorage(ctx)
	snap.Battery = s.battery.Read(ctx)
	snap.Network = s.sampleNetwork(ctx)
	snap.Processes = s.sampleProcesses(ctx)

	if up, err := host.UptimeWithContext(ctx); err == nil {
		snap.Uptime = time.Duration(up) * time.Second
	} else {
		s.log.Debug("uptime unavailable: %v", err)
	}

	snap.Device = s.deviceInfo(ctx)
	return snap
}

func (s *SystemSource) sampleCPU(ctx context.Context) *CPUStats {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(pcts) == 0 {
		s.log.Debug("cpu percent unavailable: %v", err)
		return nil
	}

	stats := &CPUStats{Percent: pcts[0]}

	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		stats.Cores = n
	} else {
		stats.Cores = runtime.NumCPU()
	}

	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		stats.Model = strings.TrimSpace(infos[0].ModelName)
		stats.FreqMHz = infos[0].Mhz
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		stats.LoadAvg = [3]float64{avg.Load1, avg.Load5, avg.Load15}
		stats.HasLoad = true
	}

	return stats
}

func (s *SystemSource) sampleMemory(ctx context.Context) (*MemoryStats, *SwapStats) {
	var memory *MemoryStats
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		memory = &MemoryStats{
			TotalBytes:     vm.Total,
			UsedBytes:      vm.Used,
			AvailableBytes: vm.Available,
			CachedBytes:    vm.Cached,
			BufferBytes:    vm.Buffers,
			Percent:        vm.UsedPercent,
		}
	} else {
		s.log.Debug("memory unavailable: %v", err)
	}

	var swap *SwapStats
	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		swap = &SwapStats{
			TotalBytes: sw.Total,
			UsedBytes:  sw.Used,
			Percent:    sw.UsedPercent,
		}
	} else {
		s.log.Debug("swap unavailable: %v", err)
	}

	return memory, swap
}

func (s *SystemSource) sampleStorage(ctx context.Context) *StorageStats {
	usage, err := disk.UsageWithContext(ctx, s.storagePath)
	if err != nil {
		s.log.Debug("storage unavailable at %s: %v", s.storagePath, err)
		return nil
	}
	return &StorageStats{
		Path:       s.storagePath,
		TotalBytes: usage.Total,
		UsedBytes:  usage.Used,
		FreeBytes:  usage.Free,
		Percent:    usage.UsedPercent,
	}
}

func (s *SystemSource) sampleNetwork(ctx context.Context) *NetworkStats {
	counters, err := gopsnet.IOCountersWithContext(ctx, false)
	if err != nil || len(counters) == 0 {
		s.log.Debug("network counters unavailable: %v", err)
		return nil
	}
	now := time.Now()
	cur := counters[0]

	stats := &NetworkStats{
		IPv4:        "N/A",
		IPv6:        "N/A",
		BytesSent:   cur.BytesSent,
		BytesRecv:   cur.BytesRecv,
		PacketsSent: cur.PacketsSent,
		PacketsRecv: cur.PacketsRecv,
		ErrIn:       cur.Errin,
		ErrOut:      cur.Errout,
		DropIn:      cur.Dropin,
		DropOut:     cur.Dropout,
	}

	s.mu.Lock()
	if s.prevNet != nil {
		elapsed := now.Sub(s.prevTime).Seconds()
		if elapsed > 0 && cur.BytesSent >= s.prevNet.BytesSent && cur.BytesRecv >= s.prevNet.BytesRecv {
			stats.UpBytesPerSec = float64(cur.BytesSent-s.prevNet.BytesSent) / elapsed
			stats.DownBytesPerSec = float64(cur.BytesRecv-s.prevNet.BytesRecv) / elapsed
		}
	}
	s.prevNet = &cur
	s.prevTime = now
	s.mu.Unlock()

	ip4, ip6 := primaryAddrs(ctx)
	if ip4 != "" {
		stats.IPv4 = ip4
	}
	if ip6 != "" {
		stats.IPv6 = ip6
	}
	return stats
}

// primaryAddrs picks addresses from the first up, non-loopback interface,
// preferring wlan0 since that is the usual uplink on a phone.
func primaryAddrs(ctx context.Context) (ip4, ip6 string) {
	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		return "", ""
	}

	sort.SliceStable(ifaces, func(i, j int) bool {
		return ifaces[i].Name == "wlan0" && ifaces[j].Name != "wlan0"
	})

	for _, iface := range ifaces {
		if !ifaceUp(iface) {
			continue
		}
		for _, addr := range iface.Addrs {
			ip := strings.SplitN(addr.Addr, "/", 2)[0]
			if strings.Contains(ip, ":") {
				if ip6 == "" && !strings.HasPrefix(ip, "fe80") {
					ip6 = ip
				}
			} else if ip4 == "" {
				ip4 = ip
			}
		}
		if ip4 != "" {
			break
		}
	}
	return ip4, ip6
}

func ifaceUp(iface gopsnet.InterfaceStat) bool {
	up, loopback := false, false
	for _, flag := range iface.Flags {
		switch flag {
		case "up":
			up = true
		case "loopback":
			loopback = true
		}
	}
	return up && !loopback
}

func (s *SystemSource) sampleProcesses(ctx context.Context) []ProcessInfo {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		s.log.Debug("process list unavailable: %v", err)
		return nil
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		info := ProcessInfo{PID: p.Pid, Name: name}
		if cpuPct, err := p.CPUPercentWithContext(ctx); err == nil {
			info.CPUPercent = cpuPct
		}
		if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
			info.MemPercent = float64(memPct)
		}
		if statuses, err := p.StatusWithContext(ctx); err == nil && len(statuses) > 0 {
			info.Status = statuses[0]
		}
		infos = append(infos, info)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].CPUPercent != infos[j].CPUPercent {
			return infos[i].CPUPercent > infos[j].CPUPercent
		}
		return infos[i].MemPercent > infos[j].MemPercent
	})

	if len(infos) > maxProcesses {
		infos = infos[:maxProcesses]
	}
	return infos
}

func (s *SystemSource) deviceInfo(ctx context.Context) *DeviceInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device != nil {
		return s.device
	}

	info := ReadDeviceProps(ctx, s.log)
	if info == nil {
		info = &DeviceInfo{}
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}
	if info.Kernel == "" {
		if kv, err := host.KernelVersionWithContext(ctx); err == nil {
			info.Kernel = kv
		}
	}
	if info.OSVersion == "" {
		if hi, err := host.InfoWithContext(ctx); err == nil {
			info.OSVersion = strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
		}
	}

	s.device = info
	return info
}
