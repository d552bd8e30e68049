package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outrunner/model"
)

func referenceParams() model.Params {
	return model.Params{
		WireThickness:   0.8,
		MagnetWidth:     10,
		MagnetHeight:    15,
		MagnetThickness: 3,
		MinDiameter:     30,
		MaxDiameter:     40,
		TargetKV:        800,
	}
}

func TestCalculateMotorDesign(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := &Calculator{Now: func() time.Time { return stamp }}

	d, err := c.CalculateMotorDesign(referenceParams())
	require.NoError(t, err)

	assert.Equal(t, 35.0, d.MotorDiameter)
	assert.Equal(t, 21, d.SlotCount)
	assert.Equal(t, 22, d.PoleCount)
	assert.Equal(t, model.Distributed, d.WindingType)
	assert.Equal(t, 462, d.LCM)
	assert.Equal(t, 22, d.CoggingFactor)
	assert.Equal(t, 4, d.TurnsPerCoil)
	assert.Equal(t, 10, d.MaxTurnsPerCoil)
	assert.Equal(t, 0.8, d.WireDiameter)
	assert.Equal(t, 3.0, d.MagnetThickness)
	assert.Equal(t, 800.0, d.TargetKV)
	assert.Equal(t, stamp, d.Timestamp)

	assert.InDelta(t, 11.6138, d.EstimatedKV, 1e-4)
	assert.InDelta(t, math.Abs(d.EstimatedKV-800)/800*100, d.KVDeviation, 1e-9)
	assert.InDelta(t, 0.9017, d.Efficiency, 1e-9)
	assert.InDelta(t, 0.5875, d.Airgap, 1e-12)
	assert.InDelta(t, 3.7485, d.MagnetArcLength, 1e-4)
	assert.InDelta(t, 3.3736, d.MagnetWidth, 1e-4)
	assert.InDelta(t, 3.9375, d.MagnetHeight, 1e-9)
	assert.InDelta(t, 0.18717, d.PhaseResistance, 1e-5)
	assert.InDelta(t, 6.6511, d.EstimatedWeight, 1e-4)
}

func TestMotorDesignGeometryInvariants(t *testing.T) {
	ranges := [][2]float64{{10, 12}, {20, 25}, {30, 40}, {50, 80}, {100, 150}}
	for _, r := range ranges {
		for _, kv := range []float64{100, 800, 2500} {
			p := referenceParams()
			p.MinDiameter, p.MaxDiameter, p.TargetKV = r[0], r[1], kv

			d, err := CalculateMotorDesign(p)
			require.NoError(t, err)

			assert.Less(t, d.StatorInnerDiameter, d.StatorOuterDiameter)
			assert.Less(t, d.StatorOuterDiameter, d.RotorInnerDiameter)
			assert.Less(t, d.RotorInnerDiameter, d.RotorDiameter)
			assert.Equal(t, d.MotorDiameter, d.RotorDiameter)
			assert.GreaterOrEqual(t, d.MotorDiameter, p.MinDiameter)
			assert.LessOrEqual(t, d.MotorDiameter, p.MaxDiameter)
			assert.Greater(t, d.Efficiency, 0.0)
			assert.LessOrEqual(t, d.Efficiency, 0.96)
			assert.LessOrEqual(t, d.MagnetWidth, p.MagnetWidth)
			assert.LessOrEqual(t, d.MagnetHeight, p.MagnetHeight)
			assert.LessOrEqual(t, d.TurnsPerCoil, d.MaxTurnsPerCoil)
			assert.Greater(t, d.SlotCount, 0)
			assert.Greater(t, d.PoleCount, 0)
		}
	}
}

func TestCalculateMotorDesignIsIdempotent(t *testing.T) {
	first, err := CalculateMotorDesign(referenceParams())
	require.NoError(t, err)
	second, err := CalculateMotorDesign(referenceParams())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(model.MotorDesign{}, "Timestamp")); diff != "" {
		t.Errorf("designs differ (-first +second):\n%s", diff)
	}
}

func TestCalculateMotorDesignFallback(t *testing.T) {
	p := referenceParams()
	p.MinDiameter, p.MaxDiameter = 5, 8

	d, err := CalculateMotorDesign(p)
	require.NoError(t, err)
	assert.Equal(t, 12, d.SlotCount)
	assert.Equal(t, 14, d.PoleCount)
	assert.Equal(t, 84, d.LCM)
	assert.True(t, d.Fallback)
	assert.False(t, math.IsNaN(d.Efficiency))
}

func TestCalculateMotorDesignRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *model.Params)
		field      string
		constraint string
	}{
		{"zero wire", func(p *model.Params) { p.WireThickness = 0 }, "wireThickness", "greater than 0"},
		{"negative magnet width", func(p *model.Params) { p.MagnetWidth = -1 }, "magnetWidth", "greater than 0"},
		{"zero magnet height", func(p *model.Params) { p.MagnetHeight = 0 }, "magnetHeight", "greater than 0"},
		{"zero magnet thickness", func(p *model.Params) { p.MagnetThickness = 0 }, "magnetThickness", "greater than 0"},
		{"zero min diameter", func(p *model.Params) { p.MinDiameter = 0 }, "minDiameter", "greater than 0"},
		{"inverted range", func(p *model.Params) { p.MinDiameter, p.MaxDiameter = 40, 30 }, "maxDiameter", "greater than minDiameter"},
		{"empty range", func(p *model.Params) { p.MaxDiameter = p.MinDiameter }, "maxDiameter", "greater than minDiameter"},
		{"zero kv", func(p *model.Params) { p.TargetKV = 0 }, "targetKV", "greater than 0"},
		{"nan kv", func(p *model.Params) { p.TargetKV = math.NaN() }, "targetKV", "a finite number"},
		{"inf diameter", func(p *model.Params) { p.MaxDiameter = math.Inf(1) }, "maxDiameter", "a finite number"},
		{"vanishing wire", func(p *model.Params) { p.WireThickness = 1e-200 }, "wireThickness", "large enough for a non-zero cross-section"},
		{"hair-thin wire", func(p *model.Params) { p.WireThickness = 1e-150 }, "wireThickness", "thick enough for at most 2147483647 turns per coil"},
		{"huge range", func(p *model.Params) { p.MinDiameter, p.MaxDiameter = 1e200, 2e200 }, "maxDiameter", "small enough for a finite slot area"},
		{"range near max float", func(p *model.Params) { p.MinDiameter, p.MaxDiameter = 1e308, 1.5e308 }, "maxDiameter", "small enough for a finite slot area"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := referenceParams()
			tt.mutate(&p)

			_, err := CalculateMotorDesign(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var ipe *InvalidParameterError
			require.True(t, errors.As(err, &ipe))
			assert.Equal(t, tt.field, ipe.Field)
			assert.Equal(t, tt.constraint, ipe.Constraint)
		})
	}
}

func TestZeroValueCalculatorStampsTime(t *testing.T) {
	var c Calculator
	before := time.Now().UTC()
	d, err := c.CalculateMotorDesign(referenceParams())
	require.NoError(t, err)
	assert.False(t, d.Timestamp.Before(before.Add(-time.Second)))
}
