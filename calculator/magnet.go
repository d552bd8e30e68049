package calculator

import (
	"math"

	"outrunner/model"
)

// CalculateMagnetParameters sizes the rotor ring and clips the requested
// magnet to the arc available per pole and to the rotor wall.
func CalculateMagnetParameters(motorDiameter float64, poleCount int, magnetWidth, magnetHeight float64) model.MagnetParameters {
	rotorInnerDiameter := motorDiameter * rotorInnerRatio
	rotorOuterDiameter := motorDiameter

	polarAngle := 360 / float64(poleCount)
	arcLength := math.Pi * rotorInnerDiameter * polarAngle / 360

	magnetGap := arcLength * magnetGapRatio
	rotorThickness := (rotorOuterDiameter - rotorInnerDiameter) / 2

	return model.MagnetParameters{
		RotorInnerDiameter: rotorInnerDiameter,
		RotorOuterDiameter: rotorOuterDiameter,
		PolarAngle:         polarAngle,
		ArcLength:          arcLength,
		MagnetWidth:        math.Min(magnetWidth, arcLength-magnetGap),
		MagnetHeight:       math.Min(magnetHeight, rotorThickness*magnetHeightFill),
		MagnetGap:          magnetGap,
	}
}
