package dashboard

import (
	"fmt"
	"strings"

	"github.com/droidtop/droidtop/internal/metrics"
)

// labelWidth aligns the label column across screens.
const labelWidth = 12

// renderScreen renders the active tab's panel from the current snapshot.
func (m Model) renderScreen() string {
	if m.snapshot == nil {
		return m.styles.Muted.Render("  collecting first sample...")
	}

	switch m.tabs.Selected() {
	case TabOverview:
		return m.renderOverview()
	case TabCPU:
		return m.renderCPUTab()
	case TabMemory:
		return m.renderMemoryTab()
	case TabStorage:
		return m.renderStorageTab()
	case TabBattery:
		return m.renderBatteryTab()
	case TabNetwork:
		return m.renderNetworkTab()
	case TabProcesses:
		return m.renderProcessesTab()
	}
	return ""
}

// line renders one aligned "label  value" row.
func (m Model) line(label, value string) string {
	return "  " + m.styles.Label.Render(PadRight(label, labelWidth)) + m.styles.Value.Render(value)
}

// barLine renders one aligned "label  bar  detail" row.
func (m Model) barLine(label string, current, max float64, detail string) string {
	bar := m.styles.Bar(current, max, m.barLength())
	row := "  " + m.styles.Label.Render(PadRight(label, labelWidth)) + bar
	if detail != "" {
		row += " " + m.styles.Value.Render(detail)
	}
	return row
}

// unavailableLine renders the fixed placeholder row for a missing subsystem.
func (m Model) unavailableLine(label string) string {
	return m.line(label, Placeholder)
}

func (m Model) renderOverview() string {
	snap := m.snapshot
	var lines []string

	if cpu := snap.CPU; cpu != nil {
		lines = append(lines, m.barLine("CPU", cpu.Percent, 100, FormatPercent(cpu.Percent)))
	} else {
		lines = append(lines, m.unavailableLine("CPU"))
	}

	if mem := snap.Memory; mem != nil {
		detail := fmt.Sprintf("%s / %s", FormatBytes(mem.UsedBytes), FormatBytes(mem.TotalBytes))
		lines = append(lines, m.barLine("Memory", float64(mem.UsedBytes), float64(mem.TotalBytes), detail))
	} else {
		lines = append(lines, m.unavailableLine("Memory"))
	}

	if st := snap.Storage; st != nil {
		detail := fmt.Sprintf("%s / %s", FormatBytes(st.UsedBytes), FormatBytes(st.TotalBytes))
		lines = append(lines, m.barLine("Storage", float64(st.UsedBytes), float64(st.TotalBytes), detail))
	} else {
		lines = append(lines, m.unavailableLine("Storage"))
	}

	if bat := snap.Battery; bat != nil {
		lines = append(lines, m.barLine("Battery", bat.Percent, 100, FormatPercent(bat.Percent)+" "+bat.Status))
	} else {
		lines = append(lines, m.unavailableLine("Battery"))
	}

	lines = append(lines, "")

	if net := snap.Network; net != nil {
		rates := fmt.Sprintf("↓%s ↑%s", FormatRate(net.DownBytesPerSec), FormatRate(net.UpBytesPerSec))
		lines = append(lines, m.line("Network", rates))
	} else {
		lines = append(lines, m.unavailableLine("Network"))
	}

	if dev := snap.Device; dev != nil {
		model := strings.TrimSpace(dev.Manufacturer + " " + dev.Model)
		if model == "" {
			model = Placeholder
		}
		lines = append(lines, m.line("Device", Clip(model, m.contentWidth()-labelWidth-4)))
		if dev.OSVersion != "" {
			lines = append(lines, m.line("OS", dev.OSVersion))
		}
	} else {
		lines = append(lines, m.unavailableLine("Device"))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderCPUTab() string {
	cpu := m.snapshot.CPU
	if cpu == nil {
		return m.unavailableLine("CPU")
	}

	var lines []string
	lines = append(lines, m.barLine("Usage", cpu.Percent, 100, FormatPercent(cpu.Percent)))
	lines = append(lines, m.line("Cores", fmt.Sprintf("%d", cpu.Cores)))

	if cpu.Model != "" {
		lines = append(lines, m.line("Model", Clip(cpu.Model, m.contentWidth()-labelWidth-4)))
	}
	if cpu.FreqMHz > 0 {
		lines = append(lines, m.line("Frequency", fmt.Sprintf("%.0f MHz", cpu.FreqMHz)))
	}
	if cpu.HasLoad {
		lines = append(lines, m.line("Load", fmt.Sprintf("%.2f %.2f %.2f", cpu.LoadAvg[0], cpu.LoadAvg[1], cpu.LoadAvg[2])))
	}

	if history := m.history.CPU(metrics.DefaultHistorySize); len(history) > 1 {
		lines = append(lines, "")
		lines = append(lines, "  "+m.styles.ColoredSparkline(history, m.sparkWidth()))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderMemoryTab() string {
	mem := m.snapshot.Memory
	var lines []string

	if mem != nil {
		detail := fmt.Sprintf("%s / %s (%s)", FormatBytes(mem.UsedBytes), FormatBytes(mem.TotalBytes), FormatPercent(mem.Percent))
		lines = append(lines, m.barLine("RAM", float64(mem.UsedBytes), float64(mem.TotalBytes), detail))
		lines = append(lines, m.line("Available", FormatBytes(mem.AvailableBytes)))
		lines = append(lines, m.line("Cached", FormatBytes(mem.CachedBytes)))
		lines = append(lines, m.line("Buffers", FormatBytes(mem.BufferBytes)))
	} else {
		lines = append(lines, m.unavailableLine("RAM"))
	}

	lines = append(lines, "")

	switch swap := m.snapshot.Swap; {
	case swap == nil:
		lines = append(lines, m.unavailableLine("Swap"))
	case swap.TotalBytes == 0:
		lines = append(lines, m.line("Swap", "not configured"))
	default:
		detail := fmt.Sprintf("%s / %s", FormatBytes(swap.UsedBytes), FormatBytes(swap.TotalBytes))
		lines = append(lines, m.barLine("Swap", float64(swap.UsedBytes), float64(swap.TotalBytes), detail))
	}

	if history := m.history.Memory(metrics.DefaultHistorySize); len(history) > 1 {
		lines = append(lines, "")
		lines = append(lines, "  "+m.styles.ColoredSparkline(history, m.sparkWidth()))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderStorageTab() string {
	st := m.snapshot.Storage
	if st == nil {
		return m.unavailableLine("Storage")
	}

	var lines []string
	detail := FormatPercent(st.Percent)
	lines = append(lines, m.barLine("Usage", float64(st.UsedBytes), float64(st.TotalBytes), detail))
	lines = append(lines, m.line("Mount", st.Path))
	lines = append(lines, m.line("Total", FormatBytes(st.TotalBytes)))
	lines = append(lines, m.line("Used", FormatBytes(st.UsedBytes)))
	lines = append(lines, m.line("Free", FormatBytes(st.FreeBytes)))

	return strings.Join(lines, "\n")
}

func (m Model) renderBatteryTab() string {
	bat := m.snapshot.Battery
	if bat == nil {
		var lines []string
		lines = append(lines, m.unavailableLine("Battery"))
		lines = append(lines, m.styles.Muted.Render("  install termux-api for battery metrics"))
		return strings.Join(lines, "\n")
	}

	var lines []string
	lines = append(lines, m.barLine("Charge", bat.Percent, 100, FormatPercent(bat.Percent)))
	lines = append(lines, m.line("Status", bat.Status))
	lines = append(lines, m.line("Health", bat.Health))
	lines = append(lines, m.line("Plugged", bat.Plugged))
	lines = append(lines, m.line("Temperature", fmt.Sprintf("%.1f°C", bat.Temperature)))
	if bat.CurrentMicroamps != 0 {
		lines = append(lines, m.line("Current", fmt.Sprintf("%.1f mA", float64(bat.CurrentMicroamps)/1000)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderNetworkTab() string {
	net := m.snapshot.Network
	if net == nil {
		return m.unavailableLine("Network")
	}

	var lines []string
	lines = append(lines, m.line("Download", FormatRate(net.DownBytesPerSec)))
	lines = append(lines, m.line("Upload", FormatRate(net.UpBytesPerSec)))
	lines = append(lines, m.line("IPv4", net.IPv4))
	lines = append(lines, m.line("IPv6", net.IPv6))
	lines = append(lines, "")
	lines = append(lines, m.line("Received", fmt.Sprintf("%s (%s pkts)", FormatBytes(net.BytesRecv), FormatCount(net.PacketsRecv))))
	lines = append(lines, m.line("Sent", fmt.Sprintf("%s (%s pkts)", FormatBytes(net.BytesSent), FormatCount(net.PacketsSent))))

	if net.ErrIn > 0 || net.ErrOut > 0 {
		lines = append(lines, m.line("Errors", fmt.Sprintf("in %s, out %s", FormatCount(net.ErrIn), FormatCount(net.ErrOut))))
	}
	if net.DropIn > 0 || net.DropOut > 0 {
		lines = append(lines, m.line("Dropped", fmt.Sprintf("in %s, out %s", FormatCount(net.DropIn), FormatCount(net.DropOut))))
	}

	if up, down := m.history.NetworkRates(metrics.DefaultHistorySize); len(down) > 1 {
		lines = append(lines, "")
		lines = append(lines, "  "+m.styles.Accent.Render("↓ ")+SparklineScaled(down, m.sparkWidth()-2))
		lines = append(lines, "  "+m.styles.Accent.Render("↑ ")+SparklineScaled(up, m.sparkWidth()-2))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderProcessesTab() string {
	if len(m.snapshot.Processes) == 0 {
		return m.unavailableLine("Processes")
	}
	if m.viewportReady {
		return m.procViewport.View()
	}
	return m.renderProcessTable()
}

// renderProcessTable renders the top-process table fed into the viewport.
func (m Model) renderProcessTable() string {
	if m.snapshot == nil || len(m.snapshot.Processes) == 0 {
		return ""
	}

	nameWidth := m.contentWidth() - 28
	if nameWidth < 10 {
		nameWidth = 10
	}
	if nameWidth > 32 {
		nameWidth = 32
	}

	var lines []string
	header := fmt.Sprintf("  %6s  %s %6s %6s  %s", "PID", PadRight("NAME", nameWidth), "CPU%", "MEM%", "STATE")
	lines = append(lines, m.styles.Label.Render(header))

	for _, p := range m.snapshot.Processes {
		row := fmt.Sprintf("  %6d  %s %6.1f %6.1f  %s",
			p.PID, PadRight(Clip(p.Name, nameWidth), nameWidth), p.CPUPercent, p.MemPercent, p.Status)
		lines = append(lines, m.styles.MetricStyle(p.CPUPercent).Render(row))
	}

	return strings.Join(lines, "\n")
}

// sparkWidth is the width used for history sparklines.
func (m Model) sparkWidth() int {
	w := m.contentWidth() - 4
	if w > metrics.DefaultHistorySize {
		w = metrics.DefaultHistorySize
	}
	if w < 10 {
		w = 10
	}
	return w
}
