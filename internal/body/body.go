// Package body defines the skeleton data model consumed by the measurement
// layer: joint types, tracking confidence states, and per-frame skeleton
// snapshots. The package owns no sensor I/O; snapshots arrive fully decoded
// from the ingest layer and are treated as read-only values.
package body

import "github.com/banshee-data/kinemetry/internal/vec"

// JointType identifies a named body joint in a skeleton snapshot.
type JointType string

const (
	JointHead          JointType = "head"
	JointNeck          JointType = "neck"
	JointSpine         JointType = "spine"
	JointHipCenter     JointType = "hip_center"
	JointShoulderLeft  JointType = "shoulder_left"
	JointShoulderRight JointType = "shoulder_right"
	JointElbowLeft     JointType = "elbow_left"
	JointElbowRight    JointType = "elbow_right"
	JointWristLeft     JointType = "wrist_left"
	JointWristRight    JointType = "wrist_right"
	JointHandLeft      JointType = "hand_left"
	JointHandRight     JointType = "hand_right"
	JointHipLeft       JointType = "hip_left"
	JointHipRight      JointType = "hip_right"
	JointKneeLeft      JointType = "knee_left"
	JointKneeRight     JointType = "knee_right"
	JointAnkleLeft     JointType = "ankle_left"
	JointAnkleRight    JointType = "ankle_right"
	JointFootLeft      JointType = "foot_left"
	JointFootRight     JointType = "foot_right"
)

// AllJointTypes lists every joint the sensor reports, in skeletal order.
var AllJointTypes = []JointType{
	JointHead, JointNeck, JointSpine, JointHipCenter,
	JointShoulderLeft, JointShoulderRight,
	JointElbowLeft, JointElbowRight,
	JointWristLeft, JointWristRight,
	JointHandLeft, JointHandRight,
	JointHipLeft, JointHipRight,
	JointKneeLeft, JointKneeRight,
	JointAnkleLeft, JointAnkleRight,
	JointFootLeft, JointFootRight,
}

// IsValidJointType checks if the given joint type is one the sensor reports.
func IsValidJointType(t JointType) bool {
	for _, valid := range AllJointTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// TrackingState represents the sensor's confidence in a joint position.
type TrackingState string

const (
	// TrackingTracked indicates the joint was directly observed.
	TrackingTracked TrackingState = "tracked"
	// TrackingInferred indicates the position was estimated from neighbouring
	// joints rather than observed.
	TrackingInferred TrackingState = "inferred"
	// TrackingNotTracked indicates the sensor has no confidence in the
	// reported position.
	TrackingNotTracked TrackingState = "not_tracked"
)

// IsValidTrackingState checks if the given state is one the sensor reports.
func IsValidTrackingState(s TrackingState) bool {
	return s == TrackingTracked || s == TrackingInferred || s == TrackingNotTracked
}

// Joint is a single body joint from one frame: a position in sensor space
// (meters) and the confidence state attached to it. The measurement layer
// reads joints but never mutates them.
type Joint struct {
	Type     JointType     `json:"type"`
	Position vec.Vector3   `json:"position"`
	State    TrackingState `json:"state"`
}

// Skeleton is one tracked body in one frame: an identity, a root position in
// sensor space, and the full joint map. Snapshots are pure value inputs to
// the measurement layer; no function retains or mutates one across calls.
type Skeleton struct {
	TrackingID string              `json:"tracking_id"`
	Timestamp  int64               `json:"timestamp"` // unix nanos
	Position   vec.Vector3         `json:"position"`  // root position in sensor space
	Joints     map[JointType]Joint `json:"joints"`
}

// Joint returns the named joint from the snapshot. A joint absent from the
// map reports a zero position and an empty (untracked) state, mirroring the
// sensor contract that every joint is always reported, inferred at worst.
func (s *Skeleton) Joint(t JointType) Joint {
	return s.Joints[t]
}

// CountTracked returns how many joints in the chain report a fully tracked
// confidence state. Inferred and untracked joints do not count.
func (s *Skeleton) CountTracked(chain []JointType) int {
	count := 0
	for _, t := range chain {
		if s.Joint(t).State == TrackingTracked {
			count++
		}
	}
	return count
}
