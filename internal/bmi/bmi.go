// Package bmi computes the Body-Mass-Index and its classification.
package bmi

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned by Compute for non-positive or non-finite inputs.
var ErrInvalidInput = errors.New("height and weight must be positive numbers")

// Status is the classification of a BMI value.
type Status string

const (
	SeverelyUnderweight Status = "severely underweight"
	Underweight         Status = "underweight"
	NormalWeight        Status = "normal weight"
	Overweight          Status = "overweight"
	Obese               Status = "obese"
)

// Realistic measurement bounds, inclusive.
const (
	MinHeightCm = 50.0
	MaxHeightCm = 300.0
	MinWeightKg = 10.0
	MaxWeightKg = 500.0
)

type Result struct {
	BMI    float64
	Status Status
}

// Compute returns weight / (height in metres)^2 rounded to two decimals,
// classified on the rounded value.
func Compute(heightCm, weightKg float64) (Result, error) {
	if !positive(heightCm) || !positive(weightKg) {
		return Result{}, ErrInvalidInput
	}
	value := Round(Value(heightCm, weightKg), 2)
	return Result{BMI: value, Status: Classify(value)}, nil
}

// Value is the unrounded index. Callers validate the inputs.
func Value(heightCm, weightKg float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// Classify maps a BMI onto the five-bucket table. Lower bounds are inclusive.
func Classify(value float64) Status {
	switch {
	case value < 16:
		return SeverelyUnderweight
	case value < 18.5:
		return Underweight
	case value < 25:
		return NormalWeight
	case value < 30:
		return Overweight
	default:
		return Obese
	}
}

// ParseStatus accepts only the strings produced by Classify.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case SeverelyUnderweight, Underweight, NormalWeight, Overweight, Obese:
		return st, nil
	}
	return "", fmt.Errorf("unknown bmi status %q", s)
}

// RangeError names the measurement that falls outside the realistic bounds.
type RangeError struct {
	Field    string
	Min, Max float64
	Unit     string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g %s", e.Field, e.Min, e.Max, e.Unit)
}

// CheckRange enforces the realistic bounds used when a record is written.
// It is stricter than Compute's precondition.
func CheckRange(heightCm, weightKg float64) error {
	if math.IsNaN(heightCm) || heightCm < MinHeightCm || heightCm > MaxHeightCm {
		return &RangeError{Field: "height", Min: MinHeightCm, Max: MaxHeightCm, Unit: "cm"}
	}
	if math.IsNaN(weightKg) || weightKg < MinWeightKg || weightKg > MaxWeightKg {
		return &RangeError{Field: "weight", Min: MinWeightKg, Max: MaxWeightKg, Unit: "kg"}
	}
	return nil
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
