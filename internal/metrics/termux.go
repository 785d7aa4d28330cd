package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"time"

	"github.com/droidtop/droidtop/internal/logger"
)

// commandTimeout bounds every external tool invocation so a hung Termux API
// daemon cannot stall the refresh loop.
const commandTimeout = 2 * time.Second

// batteryPayload matches the JSON emitted by termux-battery-status.
type batteryPayload struct {
	Percentage  float64 `json:"percentage"`
	Status      string  `json:"status"`
	Health      string  `json:"health"`
	Plugged     string  `json:"plugged"`
	Temperature float64 `json:"temperature"`
	Current     int64   `json:"current"`
}

// BatteryReader shells out to the Termux battery tool. Once the tool is found
// to be missing the reader short-circuits and stops retrying.
type BatteryReader struct {
	command string
	missing bool
	log     logger.Logger
}

func NewBatteryReader(command string, log logger.Logger) *BatteryReader {
	if log == nil {
		log = logger.Noop()
	}
	return &BatteryReader{command: command, log: log}
}

// Read returns battery state, or nil when the tool is absent or fails.
func (r *BatteryReader) Read(ctx context.Context) *BatteryStats {
	if r.command == "" || r.missing {
		return nil
	}

	out, err := runCommand(ctx, r.command)
	if err != nil {
		if _, lookErr := exec.LookPath(r.command); lookErr != nil {
			r.missing = true
			r.log.Debug("battery tool %s not found, disabling battery sampling", r.command)
		} else {
			r.log.Debug("battery read failed: %v", err)
		}
		return nil
	}

	var payload batteryPayload
	if err := json.Unmarshal(out, &payload); err != nil {
		r.log.Debug("battery output unparseable: %v", err)
		return nil
	}

	stats := &BatteryStats{
		Percent:          payload.Percentage,
		Status:           orNA(payload.Status),
		Health:           orNA(payload.Health),
		Plugged:          orNA(payload.Plugged),
		Temperature:      payload.Temperature,
		CurrentMicroamps: payload.Current,
	}
	return stats
}

// deviceProps maps getprop keys to DeviceInfo fields.
var deviceProps = []struct {
	key string
	set func(*DeviceInfo, string)
}{
	{"ro.product.model", func(d *DeviceInfo, v string) { d.Model = v }},
	{"ro.product.manufacturer", func(d *DeviceInfo, v string) { d.Manufacturer = v }},
	{"ro.build.version.release", func(d *DeviceInfo, v string) { d.OSVersion = "Android " + v }},
	{"ro.product.cpu.abi", func(d *DeviceInfo, v string) { d.Arch = v }},
}

// ReadDeviceProps queries Android system properties via getprop. Returns nil
// when getprop is unavailable, which is the normal case off-device.
func ReadDeviceProps(ctx context.Context, log logger.Logger) *DeviceInfo {
	if log == nil {
		log = logger.Noop()
	}
	if _, err := exec.LookPath("getprop"); err != nil {
		log.Debug("getprop not found, skipping device properties")
		return nil
	}

	info := &DeviceInfo{}
	found := false
	for _, prop := range deviceProps {
		out, err := runCommand(ctx, "getprop", prop.key)
		if err != nil {
			log.Debug("getprop %s failed: %v", prop.key, err)
			continue
		}
		val := strings.TrimSpace(string(out))
		if val == "" {
			continue
		}
		prop.set(info, val)
		found = true
	}
	if !found {
		return nil
	}
	return info
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
