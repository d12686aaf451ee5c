package units

import (
	"math"
	"testing"
)

func TestConvertLength(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		units    string
		expected float64
	}{
		{"1.75 m to cm", 1.75, CM, 175.0},
		{"1.75 m to ftin", 1.75, FTIN, 5.74147}, // ~5.74 feet
		{"1.75 m to m", 1.75, M, 1.75},
		{"unknown units default to meters", 1.75, "unknown", 1.75},
		{"zero length", 0.0, CM, 0.0},
		{"tall stature 2.0 m to ftin", 2.0, FTIN, 6.56168}, // ~6'7"
		{"arm span 0.6 m to cm", 0.6, CM, 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertLength(tt.meters, tt.units)
			if math.Abs(result-tt.expected) > 0.01 { // Allow small floating point differences
				t.Errorf("ConvertLength(%f, %s) = %f, want %f", tt.meters, tt.units, result, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid m", M, true},
		{"valid cm", CM, true},
		{"valid ftin", FTIN, true},
		{"invalid unit", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "CM", false},
		{"case sensitive", "Ftin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValid(tt.unit)
			if result != tt.expected {
				t.Errorf("IsValid(%s) = %v, want %v", tt.unit, result, tt.expected)
			}
		})
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		units    string
		expected string
	}{
		{"meters", 1.75, M, "1.75m"},
		{"centimeters", 1.75, CM, "175.0cm"},
		{"feet and inches", 1.8288, FTIN, "6'0.0\""},
		{"unknown falls back to meters", 1.75, "unknown", "1.75m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatLength(tt.meters, tt.units)
			if result != tt.expected {
				t.Errorf("FormatLength(%f, %s) = %q, want %q", tt.meters, tt.units, result, tt.expected)
			}
		})
	}
}

func TestGetValidUnitsString(t *testing.T) {
	if GetValidUnitsString() != "m, cm, ftin" {
		t.Errorf("unexpected valid units string: %q", GetValidUnitsString())
	}
}
