package calculator

import "math"

// CalculateAirgap 电机越大气隙越大, mm
func CalculateAirgap(motorDiameter float64) float64 {
	return baseAirgap + motorDiameter/200*0.5
}

// CalculateKV estimates KV in RPM/V. Turns per phase is taken as
// turnsPerCoil*slots/3 regardless of winding type. A winding with no turns
// has no finite KV and reports 0.
func CalculateKV(poleCount, turnsPerCoil, slotCount int, magnetStrength float64) float64 {
	turnsPerPhase := float64(turnsPerCoil) * float64(slotCount) / phases
	if turnsPerPhase <= 0 {
		return 0
	}
	return kvFactor / (float64(poleCount) * math.Sqrt(turnsPerPhase) * (magnetStrength / NeodymiumFluxDensity))
}

// CalculateEfficiency 经验效率模型, 上限 0.96
func CalculateEfficiency(poleCount, lcm, turnsPerCoil, maxTurnsPerCoil int) float64 {
	efficiency := baseEfficiency
	efficiency += float64(poleCount) / 40 * 0.05
	efficiency += float64(lcm) / 300 * 0.03

	if maxTurnsPerCoil > 0 {
		efficiency += float64(turnsPerCoil) / float64(maxTurnsPerCoil) * 0.02
	}

	return math.Min(maxEfficiency, efficiency)
}
