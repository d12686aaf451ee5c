package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/vec"
)

// The standing pose has an 0.8m upper-body chain, a 1.0m left leg and a
// 0.98m right leg, so the two legs produce visibly different estimates.
const (
	poseHeightRightLeg = 0.8 + 0.98 + HeadDivergenceMeters
	poseHeightLeftLeg  = 0.8 + 1.0 + HeadDivergenceMeters
)

func TestEstimateHeight_TieBreakPrefersRightLeg(t *testing.T) {
	t.Parallel()
	s := standingPose()

	// Both legs fully tracked: a tie. The right leg must win even though the
	// left leg is longer.
	require.Equal(t, s.CountTracked(body.LeftLegChain), s.CountTracked(body.RightLegChain))

	got := EstimateHeight(s)
	assert.InDelta(t, poseHeightRightLeg, got, 1e-3)
}

func TestEstimateHeight_StrictlyBetterTrackedLeftLegWins(t *testing.T) {
	t.Parallel()
	s := standingPose()
	setState(s, body.JointKneeRight, body.TrackingInferred)

	got := EstimateHeight(s)
	assert.InDelta(t, poseHeightLeftLeg, got, 1e-3)
}

func TestEstimateHeight_WorseTrackedLeftLegIgnored(t *testing.T) {
	t.Parallel()
	s := standingPose()
	setState(s, body.JointKneeLeft, body.TrackingInferred)
	setState(s, body.JointFootLeft, body.TrackingNotTracked)

	got := EstimateHeight(s)
	assert.InDelta(t, poseHeightRightLeg, got, 1e-3)
}

// Confidence never blocks the estimate: with zero tracked joints on both
// legs the tie-break leg is still measured from whatever positions were
// reported.
func TestEstimateHeight_BothLegsUntrackedStillEstimates(t *testing.T) {
	t.Parallel()
	s := standingPose()
	for _, jt := range append(append([]body.JointType{}, body.LeftLegChain...), body.RightLegChain...) {
		setState(s, jt, body.TrackingNotTracked)
	}

	got := EstimateHeight(s)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, poseHeightRightLeg, got, 1e-3)
}

// Lengthening any one segment of the selected chain must strictly increase
// the estimate, all else fixed.
func TestEstimateHeight_MonotonicInSegmentLength(t *testing.T) {
	t.Parallel()
	s := standingPose()
	base := EstimateHeight(s)

	// Stretch the right shin by moving the ankle (and foot with it) down.
	for _, jt := range []body.JointType{body.JointAnkleRight, body.JointFootRight} {
		j := s.Joints[jt]
		j.Position = j.Position.Add(vec.Vector3{Y: -0.05})
		s.Joints[jt] = j
	}

	stretched := EstimateHeight(s)
	assert.Greater(t, stretched, base)
	assert.InDelta(t, base+0.05, stretched, 1e-3)

	// Same for the upper body: raise the head.
	head := s.Joints[body.JointHead]
	head.Position = head.Position.Add(vec.Vector3{Y: 0.1})
	s.Joints[body.JointHead] = head

	taller := EstimateHeight(s)
	assert.Greater(t, taller, stretched)
}

func TestEstimateHeightWithAllowance(t *testing.T) {
	t.Parallel()
	s := standingPose()

	base := EstimateHeightWithAllowance(s, 0)
	withDefault := EstimateHeightWithAllowance(s, HeadDivergenceMeters)
	assert.InDelta(t, HeadDivergenceMeters, withDefault-base, 1e-9)
}
