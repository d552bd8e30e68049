package calculator

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"outrunner/model"
)

// Calculator runs the design pipeline. The zero value is ready to use and
// stamps designs with the wall clock.
type Calculator struct {
	// Now overrides the timestamp source, mainly for tests.
	Now func() time.Time
}

func NewCalculator() *Calculator {
	return &Calculator{Now: time.Now}
}

var defaultCalculator = NewCalculator()

// CalculateMotorDesign is a shorthand for the default Calculator.
func CalculateMotorDesign(params model.Params) (model.MotorDesign, error) {
	return defaultCalculator.CalculateMotorDesign(params)
}

// CalculateMotorDesign validates params and derives a full outrunner design
// at the midpoint of the diameter range.
func (c *Calculator) CalculateMotorDesign(params model.Params) (model.MotorDesign, error) {
	if err := ValidateParams(params); err != nil {
		return model.MotorDesign{}, err
	}

	// 写成 min + (max-min)/2, 两端都接近 MaxFloat64 时不会溢出
	optimalDiameter := params.MinDiameter + (params.MaxDiameter-params.MinDiameter)/2

	config := CalculateConfiguration(params.MinDiameter, params.MaxDiameter, params.TargetKV)

	coil, err := CalculateCoilDimensions(optimalDiameter, config.SlotPoleCombination, params.WireThickness, params.TargetKV)
	if err != nil {
		return model.MotorDesign{}, err
	}

	magnet := CalculateMagnetParameters(optimalDiameter, config.Poles, params.MagnetWidth, params.MagnetHeight)

	airgap := CalculateAirgap(optimalDiameter)
	estimatedKV := CalculateKV(config.Poles, coil.TurnsPerCoil, config.Slots, NeodymiumFluxDensity)
	efficiency := CalculateEfficiency(config.Poles, config.LCM, coil.TurnsPerCoil, coil.MaxTurnsPerCoil)

	log.WithFields(log.Fields{
		"slots":    config.Slots,
		"poles":    config.Poles,
		"score":    config.Score,
		"fallback": config.Fallback,
		"turns":    coil.TurnsPerCoil,
		"maxTurns": coil.MaxTurnsPerCoil,
	}).Debug("motor design calculated")

	coilLength := float64(coil.TurnsPerCoil) * float64(config.Slots) * avgTurnLength
	copperWeight := coil.MassPerMeter * coilLength
	magnetWeight := magnet.MagnetWidth * magnet.MagnetHeight * params.MagnetThickness * float64(config.Poles) * magnetDensity / 1000

	return model.MotorDesign{
		MotorDiameter:       optimalDiameter,
		RotorDiameter:       magnet.RotorOuterDiameter,
		RotorInnerDiameter:  magnet.RotorInnerDiameter,
		StatorOuterDiameter: coil.StatorOuterDiameter,
		StatorInnerDiameter: coil.StatorInnerDiameter,
		Airgap:              airgap,

		SlotCount:     config.Slots,
		PoleCount:     config.Poles,
		WindingType:   config.Winding,
		LCM:           config.LCM,
		CoggingFactor: config.CoggingFactor,
		Fallback:      config.Fallback,

		TurnsPerCoil:    coil.TurnsPerCoil,
		MaxTurnsPerCoil: coil.MaxTurnsPerCoil,
		WireDiameter:    params.WireThickness,

		MagnetWidth:     magnet.MagnetWidth,
		MagnetHeight:    magnet.MagnetHeight,
		MagnetThickness: params.MagnetThickness,
		MagnetArcLength: magnet.ArcLength,
		MagnetGap:       magnet.MagnetGap,

		EstimatedKV: estimatedKV,
		TargetKV:    params.TargetKV,
		KVDeviation: math.Abs((estimatedKV - params.TargetKV) / params.TargetKV * 100),
		Efficiency:  efficiency,

		PhaseResistance: coil.WireResistancePerMeter * float64(coil.TurnsPerCoil) * float64(config.Slots) / phases * avgTurnLength,
		EstimatedWeight: copperWeight + magnetWeight,
		Timestamp:       c.now(),
	}, nil
}

func (c *Calculator) now() time.Time {
	if c == nil || c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}
