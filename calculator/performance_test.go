package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAirgap(t *testing.T) {
	assert.InDelta(t, 0.5875, CalculateAirgap(35), 1e-12)

	prev := CalculateAirgap(1)
	for d := 5.0; d <= 300; d += 5 {
		gap := CalculateAirgap(d)
		assert.Greater(t, gap, prev)
		prev = gap
	}
}

func TestCalculateKV(t *testing.T) {
	assert.InDelta(t, 15.2693, CalculateKV(14, 10, 12, 1.2), 1e-4)
	assert.Greater(t, CalculateKV(10, 10, 12, 1.2), CalculateKV(20, 10, 12, 1.2))
	assert.Greater(t, CalculateKV(14, 5, 12, 1.2), CalculateKV(14, 10, 12, 1.2))
	// 磁钢越强 KV 越低
	assert.Greater(t, CalculateKV(14, 10, 12, 1.0), CalculateKV(14, 10, 12, 1.4))
}

func TestCalculateKVWithoutTurns(t *testing.T) {
	assert.Equal(t, 0.0, CalculateKV(14, 0, 12, 1.2))
}

func TestCalculateEfficiency(t *testing.T) {
	tests := []struct {
		name                        string
		poles, lcm, turns, maxTurns int
		want                        float64
	}{
		{"12S14P half fill", 14, 84, 10, 20, 0.82 + 0.0175 + 0.0084 + 0.01},
		{"21S22P", 22, 462, 4, 10, 0.9017},
		{"capped", 42, 2000, 10, 10, 0.96},
		{"no room for turns", 8, 24, 0, 0, 0.82 + 0.01 + 0.0024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateEfficiency(tt.poles, tt.lcm, tt.turns, tt.maxTurns)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Greater(t, got, 0.0)
			assert.LessOrEqual(t, got, 0.96)
		})
	}
}

func TestEfficiencyBoundsOverCatalog(t *testing.T) {
	for _, c := range Catalog() {
		for turns := 0; turns <= 40; turns += 5 {
			e := CalculateEfficiency(c.Poles, c.LCM, turns, 40)
			assert.Greater(t, e, 0.0)
			assert.LessOrEqual(t, e, 0.96)
		}
	}
}
