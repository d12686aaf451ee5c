package body

import (
	"testing"

	"github.com/banshee-data/kinemetry/internal/vec"
)

func TestIsValidJointType(t *testing.T) {
	for _, jt := range AllJointTypes {
		if !IsValidJointType(jt) {
			t.Errorf("expected %q to be valid", jt)
		}
	}

	invalid := []JointType{"", "HEAD", "left_hip", "tail"}
	for _, jt := range invalid {
		if IsValidJointType(jt) {
			t.Errorf("expected %q to be invalid", jt)
		}
	}
}

func TestIsValidTrackingState(t *testing.T) {
	tests := []struct {
		state    TrackingState
		expected bool
	}{
		{TrackingTracked, true},
		{TrackingInferred, true},
		{TrackingNotTracked, true},
		{"", false},
		{"Tracked", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		if got := IsValidTrackingState(tt.state); got != tt.expected {
			t.Errorf("IsValidTrackingState(%q) = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestSkeletonJoint_MissingJointIsZeroValue(t *testing.T) {
	s := &Skeleton{Joints: map[JointType]Joint{}}

	j := s.Joint(JointHead)
	if j.Position != vec.Vector3Zero() {
		t.Errorf("missing joint position = %+v, want zero", j.Position)
	}
	if j.State == TrackingTracked {
		t.Error("missing joint must not report a tracked state")
	}
}

func TestCountTracked(t *testing.T) {
	s := &Skeleton{
		Joints: map[JointType]Joint{
			JointHipLeft:   {Type: JointHipLeft, State: TrackingTracked},
			JointKneeLeft:  {Type: JointKneeLeft, State: TrackingInferred},
			JointAnkleLeft: {Type: JointAnkleLeft, State: TrackingTracked},
			// foot_left absent entirely
		},
	}

	if got := s.CountTracked(LeftLegChain); got != 2 {
		t.Errorf("CountTracked = %d, want 2", got)
	}
	if got := s.CountTracked(RightLegChain); got != 0 {
		t.Errorf("CountTracked on absent chain = %d, want 0", got)
	}
}

func TestChainsAreAdjacentJointSequences(t *testing.T) {
	chains := [][]JointType{UpperBodyChain, LeftLegChain, RightLegChain, LeftArmChain, RightArmChain}

	for _, chain := range chains {
		if len(chain) != 4 {
			t.Errorf("chain %v has %d joints, want 4", chain, len(chain))
		}
		for _, jt := range chain {
			if !IsValidJointType(jt) {
				t.Errorf("chain %v contains invalid joint %q", chain, jt)
			}
		}
	}
}
