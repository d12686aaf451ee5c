// Package units provides shared constants and validation for length units
package units

import (
	"fmt"
	"math"
)

// Unit constants
const (
	M    = "m"
	CM   = "cm"
	FTIN = "ftin"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{M, CM, FTIN}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, cm, ftin"
}

// ConvertLength converts a length from meters to the target units.
// Measurements are computed in meters (the sensor's native unit).
// For FTIN the converted value is decimal feet; use FormatLength for a
// feet-and-inches display string.
func ConvertLength(meters float64, targetUnits string) float64 {
	switch targetUnits {
	case CM:
		return meters * 100
	case FTIN:
		return meters * 3.28084 // meters to feet
	case M:
		return meters // no conversion needed
	default:
		return meters // default to meters if unknown unit
	}
}

// FormatLength renders a length in the target units for display.
func FormatLength(meters float64, targetUnits string) string {
	switch targetUnits {
	case CM:
		return fmt.Sprintf("%.1fcm", meters*100)
	case FTIN:
		feet := meters * 3.28084
		whole := math.Floor(feet)
		inches := (feet - whole) * 12
		return fmt.Sprintf("%d'%.1f\"", int(whole), inches)
	default:
		return fmt.Sprintf("%.2fm", meters)
	}
}
