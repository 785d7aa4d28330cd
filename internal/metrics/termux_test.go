package metrics

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidtop/droidtop/internal/logger"
)

func TestBatteryPayloadParsing(t *testing.T) {
	raw := `{
		"health": "GOOD",
		"percentage": 87,
		"plugged": "UNPLUGGED",
		"status": "DISCHARGING",
		"temperature": 29.5,
		"current": -312000
	}`

	var payload batteryPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.Equal(t, 87.0, payload.Percentage)
	assert.Equal(t, "DISCHARGING", payload.Status)
	assert.Equal(t, "GOOD", payload.Health)
	assert.Equal(t, "UNPLUGGED", payload.Plugged)
	assert.Equal(t, 29.5, payload.Temperature)
	assert.Equal(t, int64(-312000), payload.Current)
}

func TestBatteryPayloadPartial(t *testing.T) {
	// Older termux-api builds omit fields; parsing must not fail.
	var payload batteryPayload
	require.NoError(t, json.Unmarshal([]byte(`{"percentage": 50}`), &payload))
	assert.Equal(t, 50.0, payload.Percentage)
	assert.Empty(t, payload.Status)
}

func TestBatteryReaderEmptyCommand(t *testing.T) {
	r := NewBatteryReader("", logger.Noop())
	assert.Nil(t, r.Read(context.Background()))
}

func TestBatteryReaderMissingTool(t *testing.T) {
	r := NewBatteryReader("definitely-not-a-real-command-xyz", logger.Noop())

	assert.Nil(t, r.Read(context.Background()))
	assert.True(t, r.missing)

	// Second read short-circuits without re-probing the tool.
	assert.Nil(t, r.Read(context.Background()))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "FULL", orNA("FULL"))
}

func TestReadDevicePropsWithoutGetprop(t *testing.T) {
	// Off-device there is no getprop binary; the helper must degrade to nil
	// rather than erroring. On an actual Android device this returns data, so
	// only assert when the tool is absent.
	t.Setenv("PATH", t.TempDir())
	info := ReadDeviceProps(context.Background(), logger.Noop())
	assert.Nil(t, info)
}
