package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// 设计输入参数, 长度单位 mm
type Params struct {
	WireThickness   float64 `json:"wireThickness" yaml:"wireThickness"`
	MagnetWidth     float64 `json:"magnetWidth" yaml:"magnetWidth"`
	MagnetHeight    float64 `json:"magnetHeight" yaml:"magnetHeight"`
	MagnetThickness float64 `json:"magnetThickness" yaml:"magnetThickness"`
	MinDiameter     float64 `json:"minDiameter" yaml:"minDiameter"`
	MaxDiameter     float64 `json:"maxDiameter" yaml:"maxDiameter"`
	TargetKV        float64 `json:"targetKV" yaml:"targetKV"`
}

// Winding is the stator winding pattern of a slot/pole combination.
type Winding int

const (
	Distributed Winding = iota
	Concentrated
)

func (w Winding) String() string {
	switch w {
	case Distributed:
		return "distributed"
	case Concentrated:
		return "concentrated"
	default:
		return fmt.Sprintf("Winding(%d)", int(w))
	}
}

func ParseWinding(s string) (Winding, error) {
	switch s {
	case "distributed":
		return Distributed, nil
	case "concentrated":
		return Concentrated, nil
	}
	return 0, fmt.Errorf("unknown winding %q", s)
}

func (w Winding) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Winding) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseWinding(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func (w Winding) MarshalYAML() (interface{}, error) {
	return w.String(), nil
}

// 导线物性
type WireProperties struct {
	Diameter           float64 `json:"diameter"`           // mm
	Area               float64 `json:"area"`               // mm²
	CurrentCapacity    float64 `json:"currentCapacity"`    // A
	ResistancePerMeter float64 `json:"resistancePerMeter"` // Ω/m
	MassPerMeter       float64 `json:"massPerMeter"`       // kg/m
}

// 槽极配合
type SlotPoleCombination struct {
	Slots         int     `json:"slots"`
	Poles         int     `json:"poles"`
	Winding       Winding `json:"winding"`
	LCM           int     `json:"lcm"`
	CoggingFactor int     `json:"coggingFactor"`
}

type ScoredConfiguration struct {
	SlotPoleCombination
	PolePitch float64 `json:"polePitch"` // mm
	Score     float64 `json:"score"`
	// Fallback is set when no catalog entry fits the diameter range.
	Fallback bool `json:"fallback,omitempty"`
}

// 定子绕组尺寸
type CoilDimensions struct {
	StatorInnerDiameter    float64 `json:"statorInnerDiameter"`
	StatorOuterDiameter    float64 `json:"statorOuterDiameter"`
	SlotWidth              float64 `json:"slotWidth"`
	SlotDepth              float64 `json:"slotDepth"`
	SlotArea               float64 `json:"slotArea"`
	TurnsPerCoil           int     `json:"turnsPerCoil"`
	MaxTurnsPerCoil        int     `json:"maxTurnsPerCoil"`
	WireResistancePerMeter float64 `json:"wireResistancePerMeter"`
	MassPerMeter           float64 `json:"massPerMeter"`
}

// 转子与磁钢尺寸
type MagnetParameters struct {
	RotorInnerDiameter float64 `json:"rotorInnerDiameter"`
	RotorOuterDiameter float64 `json:"rotorOuterDiameter"`
	PolarAngle         float64 `json:"polarAngle"` // deg
	ArcLength          float64 `json:"arcLength"`
	MagnetWidth        float64 `json:"magnetWidth"`
	MagnetHeight       float64 `json:"magnetHeight"`
	MagnetGap          float64 `json:"magnetGap"`
}

// MotorDesign is the result handed to renderers and exporters. Field names
// are part of the renderer contract and must stay stable.
type MotorDesign struct {
	// 总体尺寸
	MotorDiameter       float64 `json:"motorDiameter" yaml:"motorDiameter"`
	RotorDiameter       float64 `json:"rotorDiameter" yaml:"rotorDiameter"`
	RotorInnerDiameter  float64 `json:"rotorInnerDiameter" yaml:"rotorInnerDiameter"`
	StatorOuterDiameter float64 `json:"statorOuterDiameter" yaml:"statorOuterDiameter"`
	StatorInnerDiameter float64 `json:"statorInnerDiameter" yaml:"statorInnerDiameter"`
	Airgap              float64 `json:"airgap" yaml:"airgap"`

	// 槽极配合
	SlotCount     int     `json:"slotCount" yaml:"slotCount"`
	PoleCount     int     `json:"poleCount" yaml:"poleCount"`
	WindingType   Winding `json:"windingType" yaml:"windingType"`
	LCM           int     `json:"lcm" yaml:"lcm"`
	CoggingFactor int     `json:"coggingFactor" yaml:"coggingFactor"`
	// 直径范围内放不下任何槽极配合时为 true
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`

	// 绕组
	TurnsPerCoil    int     `json:"turnsPerCoil" yaml:"turnsPerCoil"`
	MaxTurnsPerCoil int     `json:"maxTurnsPerCoil" yaml:"maxTurnsPerCoil"`
	WireDiameter    float64 `json:"wireDiameter" yaml:"wireDiameter"`

	// 磁钢
	MagnetWidth     float64 `json:"magnetWidth" yaml:"magnetWidth"`
	MagnetHeight    float64 `json:"magnetHeight" yaml:"magnetHeight"`
	MagnetThickness float64 `json:"magnetThickness" yaml:"magnetThickness"`
	MagnetArcLength float64 `json:"magnetArcLength" yaml:"magnetArcLength"`
	MagnetGap       float64 `json:"magnetGap" yaml:"magnetGap"`

	// 性能估算
	EstimatedKV float64 `json:"estimatedKV" yaml:"estimatedKV"`
	TargetKV    float64 `json:"targetKV" yaml:"targetKV"`
	KVDeviation float64 `json:"kvDeviation" yaml:"kvDeviation"` // %
	Efficiency  float64 `json:"efficiency" yaml:"efficiency"`

	PhaseResistance float64   `json:"phaseResistance" yaml:"phaseResistance"` // Ω
	EstimatedWeight float64   `json:"estimatedWeight" yaml:"estimatedWeight"` // g
	Timestamp       time.Time `json:"timestamp" yaml:"timestamp"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 批量扫描请求
type SweepRequest struct {
	Params Params    `json:"params"`
	KVs    []float64 `json:"kvs"`
}

// 参数校验失败时回复给前端的内容
type Rejection struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}
