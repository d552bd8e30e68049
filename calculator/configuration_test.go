package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestCatalogLCMMatchesSlotsAndPoles(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 13)
	for _, c := range catalog {
		assert.Equal(t, c.Slots*c.Poles/gcd(c.Slots, c.Poles), c.LCM, "%dS%dP", c.Slots, c.Poles)
	}
}

func TestCatalogIsCopy(t *testing.T) {
	c := Catalog()
	c[0].Slots = 99
	assert.Equal(t, 12, Catalog()[0].Slots)
}

func TestCalculateConfiguration(t *testing.T) {
	config := CalculateConfiguration(30, 40, 800)

	assert.False(t, config.Fallback)
	assert.Equal(t, 21, config.Slots)
	assert.Equal(t, 22, config.Poles)
	assert.Equal(t, 462, config.LCM)
	assert.InDelta(t, 2.2881, config.Score, 1e-4)
}

func TestScoreConfigurationsRejectsOversizedSlotCounts(t *testing.T) {
	scored := ScoreConfigurations(30, 40, 800)

	// 36 槽和 27 槽需要的直径超过 40mm
	require.Len(t, scored, 11)
	for _, s := range scored {
		assert.NotEqual(t, 36, s.Slots)
		assert.NotEqual(t, 27, s.Slots)
	}
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestCalculateConfigurationFollowsTargetKV(t *testing.T) {
	low := CalculateConfiguration(16, 20, 50)
	high := CalculateConfiguration(16, 20, 800)

	assert.Equal(t, 12, low.Slots)
	assert.Equal(t, 14, low.Poles)
	assert.Equal(t, 9, high.Slots)
	assert.Equal(t, 10, high.Poles)
}

func TestCalculateConfigurationFallback(t *testing.T) {
	config := CalculateConfiguration(5, 8, 1000)

	assert.True(t, config.Fallback)
	assert.Equal(t, 12, config.Slots)
	assert.Equal(t, 14, config.Poles)
	assert.Equal(t, 7, config.CoggingFactor)
	assert.InDelta(t, 3.14159265*6.5/14, config.PolePitch, 1e-6)
}

func TestScoreConfigurationsNearMaxFloat(t *testing.T) {
	scored := ScoreConfigurations(1e308, 1.5e308, 800)
	require.Len(t, scored, len(slotPoleCombinations))
	for _, s := range scored {
		assert.False(t, math.IsNaN(s.Score), "%dS%dP", s.Slots, s.Poles)
		assert.False(t, math.IsInf(s.Score, 0), "%dS%dP", s.Slots, s.Poles)
	}
}
