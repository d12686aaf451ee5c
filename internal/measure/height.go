package measure

import (
	"github.com/banshee-data/kinemetry/internal/body"
)

// HeadDivergenceMeters is the empirical allowance added to the summed chain
// lengths for scalp curvature above the head joint, which joint positions do
// not capture. Recalibrate here, not in the algorithm.
const HeadDivergenceMeters = 0.1

// EstimateHeight returns the estimated stature of the tracked body in
// meters, using the default head allowance. See EstimateHeightWithAllowance.
func EstimateHeight(s *body.Skeleton) float64 {
	return EstimateHeightWithAllowance(s, HeadDivergenceMeters)
}

// EstimateHeightWithAllowance estimates stature as the length of the chain
// head→neck→spine→hip-centre, plus the length of one leg chain, plus the
// supplied head allowance.
//
// Leg selection policy: the leg whose four joints report strictly more
// tracked states is used; the right leg wins ties. Tracking confidence only
// drives leg selection — it never blocks the computation, so the estimate is
// always produced, even when neither leg has a single tracked joint (the
// result is then only as good as the inferred positions).
func EstimateHeightWithAllowance(s *body.Skeleton, allowanceMeters float64) float64 {
	upper := ChainLength(s, body.UpperBodyChain)

	leg := body.RightLegChain
	if s.CountTracked(body.LeftLegChain) > s.CountTracked(body.RightLegChain) {
		leg = body.LeftLegChain
	}

	return float64(upper) + float64(ChainLength(s, leg)) + allowanceMeters
}
