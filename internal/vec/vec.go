// Package vec provides single-precision 2D and 3D vector primitives for the
// measurement layer. All operations are pure value operations: methods return
// new vectors rather than mutating their receiver, with the single exception
// of (*Vector3).Normalize which rescales in place.
package vec

import "math"

// Vector2 is a 2-component single-precision vector.
type Vector2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Vector2Zero returns the additive identity 2D vector.
func Vector2Zero() Vector2 {
	return Vector2{}
}

// Add returns the component-wise sum v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v with each component multiplied by s. Scalar multiplication
// is commutative, so a single method covers both operand orders.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v with each component divided by s. A zero divisor yields
// Inf/NaN components rather than an error.
func (v Vector2) Div(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Length returns the Euclidean norm of v. Always non-negative for finite
// input.
func (v Vector2) Length() float32 {
	x := float64(v.X)
	y := float64(v.Y)
	return float32(math.Sqrt(x*x + y*y))
}

// Vector3 is a 3-component single-precision vector.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vector3Zero returns the additive identity 3D vector.
func Vector3Zero() Vector3 {
	return Vector3{}
}

// Add returns the component-wise sum v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the component-wise difference v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v with each component multiplied by s. Scalar multiplication
// is commutative, so a single method covers both operand orders.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v with each component divided by s. A zero divisor yields
// Inf/NaN components rather than an error.
func (v Vector3) Div(s float32) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Length returns the Euclidean norm of v. Always non-negative for finite
// input.
func (v Vector3) Length() float32 {
	x := float64(v.X)
	y := float64(v.Y)
	z := float64(v.Z)
	return float32(math.Sqrt(x*x + y*y + z*z))
}

// Normalize rescales v to unit length in place. A zero-length vector has no
// defined direction: its components become Inf or NaN (division by zero)
// rather than raising an error, and callers that need a defined direction
// must guard against zero-length input themselves.
func (v *Vector3) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// Dot returns the dot product a·b.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
