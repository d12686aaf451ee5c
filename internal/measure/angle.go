package measure

import (
	"math"

	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/vec"
)

// AngleRoundDecimals is the number of decimal places angles are rounded to.
const AngleRoundDecimals = 2

// AngleBetweenVectors returns the angle between a and b in degrees, in
// [0, 180], rounded to AngleRoundDecimals places.
//
// Inputs must be non-zero: a zero-length vector has no direction, and
// normalizing it yields NaN components which propagate into the result.
func AngleBetweenVectors(a, b vec.Vector3) float64 {
	a.Normalize()
	b.Normalize()

	// The dot product of two unit vectors is mathematically in [-1, 1], but
	// float error can push it slightly outside, sending Acos out of domain.
	// Clamp before Acos so near-parallel vectors never come back NaN.
	dot := float64(vec.Dot(a, b))
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}

	degrees := math.Acos(dot) * 180 / math.Pi
	return roundTo(degrees, AngleRoundDecimals)
}

// AngleAtJoint returns the interior angle at the center joint formed by the
// segments center→a and center→b, in degrees, in [0, 180]. The endpoints
// must not coincide with the center joint (zero-length segment, see
// AngleBetweenVectors).
func AngleAtJoint(s *body.Skeleton, center, a, b body.JointType) float64 {
	c := s.Joint(center).Position
	toA := s.Joint(a).Position.Sub(c)
	toB := s.Joint(b).Position.Sub(c)
	return AngleBetweenVectors(toA, toB)
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
