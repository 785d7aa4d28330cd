package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 10))
	assert.Equal(t, "", Sparkline([]float64{50}, 0))

	s := Sparkline([]float64{0, 50, 100}, 3)
	runes := []rune(s)
	assert.Len(t, runes, 3)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[2])
}

func TestSparklineScaled(t *testing.T) {
	assert.Equal(t, "", SparklineScaled(nil, 10))

	// Rates well above 100 still span the full block range.
	s := SparklineScaled([]float64{0, 500000, 1000000}, 3)
	runes := []rune(s)
	assert.Len(t, runes, 3)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[2])
}

func TestResampleDataDownsamplePreservesPeaks(t *testing.T) {
	data := []float64{10, 10, 95, 10, 10, 10, 10, 10}

	result := resampleData(data, 4)
	assert.Len(t, result, 4)
	assert.Contains(t, result, 95.0)
}

func TestResampleDataUpsample(t *testing.T) {
	result := resampleData([]float64{0, 100}, 5)
	assert.Len(t, result, 5)
	assert.Equal(t, 0.0, result[0])
	assert.Equal(t, 100.0, result[4])
	assert.InDelta(t, 50.0, result[2], 0.01)
}

func TestResampleDataEdgeCases(t *testing.T) {
	assert.Nil(t, resampleData(nil, 5))
	assert.Nil(t, resampleData([]float64{1}, 0))

	same := []float64{1, 2, 3}
	assert.Equal(t, same, resampleData(same, 3))

	single := resampleData([]float64{42}, 3)
	assert.Equal(t, []float64{42, 42, 42}, single)
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.5, normalizeValue(50, 0, 100))
	assert.Equal(t, 0.0, normalizeValue(0, 0, 100))
	assert.Equal(t, 1.0, normalizeValue(100, 0, 100))
	assert.Equal(t, 0.5, normalizeValue(5, 5, 5), "degenerate range centers")
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-1, 7))
	assert.Equal(t, 7, clampInt(9, 7))
	assert.Equal(t, 3, clampInt(3, 7))
}
