package calculator

import (
	"math"
	"sort"

	"outrunner/model"
)

// ScoreConfigurations ranks every catalog entry whose slot count fits inside
// maxDiameter. Entries with equal score keep catalog order.
func ScoreConfigurations(minDiameter, maxDiameter, targetKv float64) []model.ScoredConfiguration {
	avgDiameter := minDiameter + (maxDiameter-minDiameter)/2

	scored := make([]model.ScoredConfiguration, 0, len(slotPoleCombinations))
	for _, c := range slotPoleCombinations {
		neededDiameter := float64(c.Slots) * minSlotPitch / math.Pi
		if neededDiameter > maxDiameter {
			continue
		}

		// 高 lcm 齿槽转矩小; 极数越多 KV 越低
		coggingScore := float64(c.LCM) / 100
		kvSuitabilityScore := 1 - math.Abs(targetKv-1000/float64(c.Poles))/2000
		sizeScore := 1 - math.Abs(avgDiameter-neededDiameter)/avgDiameter

		scored = append(scored, model.ScoredConfiguration{
			SlotPoleCombination: c,
			PolePitch:           math.Pi * avgDiameter / float64(c.Poles),
			Score:               coggingScore*coggingWeight + kvSuitabilityScore*kvWeight + sizeScore*sizeWeight,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// CalculateConfiguration picks the best scoring slot/pole combination. It
// always returns a configuration: when nothing fits, the 12 slot / 14 pole
// fallback is returned with Fallback set.
func CalculateConfiguration(minDiameter, maxDiameter, targetKv float64) model.ScoredConfiguration {
	scored := ScoreConfigurations(minDiameter, maxDiameter, targetKv)
	if len(scored) > 0 {
		return scored[0]
	}

	avgDiameter := minDiameter + (maxDiameter-minDiameter)/2
	return model.ScoredConfiguration{
		SlotPoleCombination: fallbackCombination,
		PolePitch:           math.Pi * avgDiameter / float64(fallbackCombination.Poles),
		Fallback:            true,
	}
}
