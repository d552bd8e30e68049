package calculator

import (
	"math"

	"outrunner/model"
)

// ValidateParams rejects inputs that would push NaN or Inf through the formulas.
// Checks run in field order, the first violation is returned.
func ValidateParams(p model.Params) error {
	positive := []struct {
		field string
		value float64
	}{
		{"wireThickness", p.WireThickness},
		{"magnetWidth", p.MagnetWidth},
		{"magnetHeight", p.MagnetHeight},
		{"magnetThickness", p.MagnetThickness},
		{"minDiameter", p.MinDiameter},
		{"maxDiameter", p.MaxDiameter},
		{"targetKV", p.TargetKV},
	}
	for _, f := range positive {
		if err := checkPositive(f.field, f.value); err != nil {
			return err
		}
	}

	if _, err := wireAreaM2("wireThickness", p.WireThickness); err != nil {
		return err
	}

	if p.MaxDiameter <= p.MinDiameter {
		return &InvalidParameterError{
			Field:      "maxDiameter",
			Constraint: "greater than minDiameter",
			Value:      p.MaxDiameter,
		}
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParameterError{Field: field, Constraint: "a finite number", Value: v}
	}
	if v <= 0 {
		return &InvalidParameterError{Field: field, Constraint: "greater than 0", Value: v}
	}
	return nil
}
