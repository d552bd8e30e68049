package calculator

import (
	"fmt"
	"math"

	"outrunner/model"
)

// CalculateCoilDimensions sizes the stator slots and solves turns per coil.
// The slot packing limit always wins over the turns the target KV asks for.
func CalculateCoilDimensions(motorDiameter float64, config model.SlotPoleCombination, wireDiameter, targetKv float64) (model.CoilDimensions, error) {
	wire, err := CalculateWireProperties(wireDiameter)
	if err != nil {
		return model.CoilDimensions{}, err
	}

	statorOuterDiameter := motorDiameter * statorOuterRatio
	statorInnerDiameter := statorOuterDiameter * statorInnerRatio

	// 槽截面按梯形近似
	slotPitch := math.Pi * statorOuterDiameter / float64(config.Slots)
	slotWidth := slotPitch * slotWidthRatio
	slotDepth := (statorOuterDiameter - statorInnerDiameter) / 2
	slotInnerWidth := slotWidth * statorInnerDiameter / statorOuterDiameter
	slotArea := (slotWidth + slotInnerWidth) / 2 * slotDepth

	if math.IsNaN(slotArea) || math.IsInf(slotArea, 0) {
		return model.CoilDimensions{}, &InvalidParameterError{
			Field:      "maxDiameter",
			Constraint: "small enough for a finite slot area",
			Value:      motorDiameter,
		}
	}

	// 转成 int 之前先限幅, 否则 Inf 会变成负数
	maxTurns := math.Floor(slotArea * fillFactor / wire.Area)
	if math.IsNaN(maxTurns) || maxTurns > maxTurnsLimit {
		return model.CoilDimensions{}, &InvalidParameterError{
			Field:      "wireThickness",
			Constraint: fmt.Sprintf("thick enough for at most %d turns per coil", maxTurnsLimit),
			Value:      wireDiameter,
		}
	}
	maxTurnsPerCoil := int(maxTurns)

	fluxPerPole := NeodymiumFluxDensity * 1e-4
	turnsForTargetKv := 1 / (targetKv * fluxPerPole * float64(config.Poles) / 60)

	coilsPerPhase := float64(config.Slots) / phases
	var turnsPerPhase float64
	if config.Winding == model.Distributed {
		turnsPerPhase = turnsForTargetKv / coilsPerPhase
	} else {
		turnsPerPhase = turnsForTargetKv / (coilsPerPhase * 2)
	}

	turnsPerCoil := maxTurnsPerCoil
	if turns := math.Round(turnsPerPhase); turns < maxTurns {
		turnsPerCoil = int(turns)
	}

	return model.CoilDimensions{
		StatorInnerDiameter:    statorInnerDiameter,
		StatorOuterDiameter:    statorOuterDiameter,
		SlotWidth:              slotWidth,
		SlotDepth:              slotDepth,
		SlotArea:               slotArea,
		TurnsPerCoil:           turnsPerCoil,
		MaxTurnsPerCoil:        maxTurnsPerCoil,
		WireResistancePerMeter: wire.ResistancePerMeter,
		MassPerMeter:           wire.MassPerMeter,
	}, nil
}
