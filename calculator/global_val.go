package calculator

import (
	"math"

	"outrunner/model"
)

// 物理常数
const (
	CopperResistivity    = 1.68e-8 // Ω·m, 20℃
	CopperDensity        = 8960.0  // kg/m³
	NeodymiumFluxDensity = 1.2     // T, N42

	// 导线载流密度 5 A/mm²
	currentDensity = 5e6 // A/m²
)

// 经验系数
const (
	minSlotPitch = 5.0 // mm

	coggingWeight = 0.4
	kvWeight      = 0.4
	sizeWeight    = 0.2

	statorOuterRatio = 0.7
	statorInnerRatio = 0.5
	slotWidthRatio   = 0.7
	fillFactor       = 0.45

	// 每个线圈匝数上限
	maxTurnsLimit = math.MaxInt32

	rotorInnerRatio  = 0.75
	magnetGapRatio   = 0.1
	magnetHeightFill = 0.9

	baseAirgap = 0.5 // mm

	kvFactor = 1352.0

	baseEfficiency = 0.82
	maxEfficiency  = 0.96

	avgTurnLength = 0.2 // m
	magnetDensity = 7.5 // g/cm³
	phases        = 3
)

// 常用槽极配合, lcm 与 coggingFactor 为查表值, 不在运行时重新计算
var slotPoleCombinations = [...]model.SlotPoleCombination{
	{Slots: 12, Poles: 14, Winding: model.Distributed, LCM: 84, CoggingFactor: 7},
	{Slots: 9, Poles: 10, Winding: model.Concentrated, LCM: 90, CoggingFactor: 10},
	{Slots: 12, Poles: 10, Winding: model.Distributed, LCM: 60, CoggingFactor: 5},
	{Slots: 24, Poles: 22, Winding: model.Distributed, LCM: 264, CoggingFactor: 11},
	{Slots: 36, Poles: 42, Winding: model.Distributed, LCM: 252, CoggingFactor: 6},
	{Slots: 9, Poles: 8, Winding: model.Concentrated, LCM: 72, CoggingFactor: 8},
	{Slots: 9, Poles: 12, Winding: model.Concentrated, LCM: 36, CoggingFactor: 3},
	{Slots: 15, Poles: 14, Winding: model.Distributed, LCM: 210, CoggingFactor: 14},
	{Slots: 18, Poles: 16, Winding: model.Distributed, LCM: 144, CoggingFactor: 8},
	{Slots: 18, Poles: 20, Winding: model.Distributed, LCM: 180, CoggingFactor: 10},
	{Slots: 27, Poles: 24, Winding: model.Distributed, LCM: 216, CoggingFactor: 8},
	{Slots: 21, Poles: 22, Winding: model.Distributed, LCM: 462, CoggingFactor: 22},
	{Slots: 6, Poles: 8, Winding: model.Concentrated, LCM: 24, CoggingFactor: 2},
}

// 没有任何槽极配合能放进直径范围时使用
var fallbackCombination = model.SlotPoleCombination{
	Slots:         12,
	Poles:         14,
	Winding:       model.Distributed,
	LCM:           84,
	CoggingFactor: 7,
}

// AWG -> 线径 mm
var wireGaugeTable = map[int]float64{
	8: 3.264, 10: 2.588, 12: 2.053, 14: 1.628,
	16: 1.291, 18: 1.024, 20: 0.812, 22: 0.644,
	24: 0.511, 26: 0.405, 28: 0.321, 30: 0.255,
	32: 0.202, 34: 0.160, 36: 0.127, 38: 0.101,
}

// Catalog returns a copy of the slot/pole table in its fixed order.
func Catalog() []model.SlotPoleCombination {
	out := make([]model.SlotPoleCombination, len(slotPoleCombinations))
	copy(out, slotPoleCombinations[:])
	return out
}
