package measure

import (
	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/vec"
)

// newTestSkeleton builds a snapshot from joint positions, marking every
// supplied joint as tracked. Tests override states afterwards as needed.
func newTestSkeleton(positions map[body.JointType]vec.Vector3) *body.Skeleton {
	s := &body.Skeleton{
		TrackingID: "test-body-1",
		Joints:     make(map[body.JointType]body.Joint, len(positions)),
	}
	for t, p := range positions {
		s.Joints[t] = body.Joint{Type: t, Position: p, State: body.TrackingTracked}
	}
	return s
}

// setState replaces the tracking state of one joint in place.
func setState(s *body.Skeleton, t body.JointType, state body.TrackingState) {
	j := s.Joints[t]
	j.State = state
	s.Joints[t] = j
}

// standingPose returns a full 20-joint upright pose at roughly 2m from the
// sensor. Upper-body chain length 0.8m, left leg 1.0m, right leg 0.98m.
func standingPose() *body.Skeleton {
	s := newTestSkeleton(map[body.JointType]vec.Vector3{
		body.JointHead:      {X: 0, Y: 1.8, Z: 2},
		body.JointNeck:      {X: 0, Y: 1.6, Z: 2},
		body.JointSpine:     {X: 0, Y: 1.2, Z: 2},
		body.JointHipCenter: {X: 0, Y: 1.0, Z: 2},

		body.JointShoulderLeft:  {X: -0.2, Y: 1.55, Z: 2},
		body.JointElbowLeft:     {X: -0.25, Y: 1.25, Z: 2},
		body.JointWristLeft:     {X: -0.25, Y: 1.0, Z: 2},
		body.JointHandLeft:      {X: -0.25, Y: 0.92, Z: 2},
		body.JointShoulderRight: {X: 0.2, Y: 1.55, Z: 2},
		body.JointElbowRight:    {X: 0.25, Y: 1.25, Z: 2},
		body.JointWristRight:    {X: 0.25, Y: 1.0, Z: 2},
		body.JointHandRight:     {X: 0.25, Y: 0.92, Z: 2},

		body.JointHipLeft:   {X: -0.1, Y: 1.0, Z: 2},
		body.JointKneeLeft:  {X: -0.1, Y: 0.5, Z: 2},
		body.JointAnkleLeft: {X: -0.1, Y: 0.1, Z: 2},
		body.JointFootLeft:  {X: -0.1, Y: 0.0, Z: 2},

		body.JointHipRight:   {X: 0.1, Y: 1.0, Z: 2},
		body.JointKneeRight:  {X: 0.1, Y: 0.55, Z: 2},
		body.JointAnkleRight: {X: 0.1, Y: 0.1, Z: 2},
		body.JointFootRight:  {X: 0.1, Y: 0.02, Z: 2},
	})
	s.Position = vec.Vector3{X: 0, Y: 1.0, Z: 2}
	s.Timestamp = 1700000000000000000
	return s
}
