package measure

import (
	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/vec"
)

// SquaredDistanceFromOrigin returns the squared straight-line distance from
// the sensor origin to p (meters²). Range checks against the sensor use the
// squared form; callers needing the true range must take the square root
// themselves. Inter-joint measurements use the true distance instead, see
// Distance.
func SquaredDistanceFromOrigin(p vec.Vector3) float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Distance returns the true Euclidean distance between positions a and b
// (meters). Always non-negative and symmetric in its arguments.
func Distance(a, b vec.Vector3) float32 {
	return a.Sub(b).Length()
}

// JointDistance returns the true distance between two named joints in the
// snapshot.
func JointDistance(s *body.Skeleton, a, b body.JointType) float32 {
	return Distance(s.Joint(a).Position, s.Joint(b).Position)
}

// ChainLength sums the true distances between consecutive joint pairs along
// the chain. A chain of fewer than two joints has zero length.
func ChainLength(s *body.Skeleton, chain []body.JointType) float32 {
	var total float32
	for i := 0; i+1 < len(chain); i++ {
		total += JointDistance(s, chain[i], chain[i+1])
	}
	return total
}
