package calculator

import (
	"math"
	"sort"

	"outrunner/model"
)

// CalculateWireProperties derives copper properties from a wire diameter in mm.
func CalculateWireProperties(wireDiameter float64) (model.WireProperties, error) {
	areaM2, err := wireAreaM2("wireDiameter", wireDiameter)
	if err != nil {
		return model.WireProperties{}, err
	}
	areaMM2 := areaM2 * 1e6

	return model.WireProperties{
		Diameter:           wireDiameter,
		Area:               areaMM2,
		CurrentCapacity:    areaM2 * currentDensity,
		ResistancePerMeter: CopperResistivity / areaM2,
		MassPerMeter:       areaM2 * CopperDensity,
	}, nil
}

// wireAreaM2 returns the cross-section in m². Diameters so small that the
// area underflows, or the resistance overflows, are rejected.
func wireAreaM2(field string, d float64) (float64, error) {
	if err := checkPositive(field, d); err != nil {
		return 0, err
	}
	areaM2 := math.Pi * (d / 2) * (d / 2) * 1e-6
	if areaM2 == 0 || math.IsInf(CopperResistivity/areaM2, 0) {
		return 0, &InvalidParameterError{Field: field, Constraint: "large enough for a non-zero cross-section", Value: d}
	}
	return areaM2, nil
}

// AWGToDiameter 查表得到线径, 表中没有的规格用经验公式外推
func AWGToDiameter(awg int) float64 {
	if d, ok := wireGaugeTable[awg]; ok {
		return d
	}
	return 0.127 * math.Pow(92, float64(36-awg)/39)
}

// WireGauges returns the tabulated AWG sizes in ascending order.
func WireGauges() []int {
	gauges := make([]int, 0, len(wireGaugeTable))
	for awg := range wireGaugeTable {
		gauges = append(gauges, awg)
	}
	sort.Ints(gauges)
	return gauges
}
