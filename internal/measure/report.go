package measure

import (
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/kinemetry/internal/body"
)

// ReportOptions holds tunable parameters for report generation.
type ReportOptions struct {
	HeadAllowanceMeters float64 // Added to chain lengths in the height estimate
	MinTrackedJoints    int     // Below this, the report is flagged low confidence
}

// DefaultReportOptions returns the default report parameters.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		HeadAllowanceMeters: HeadDivergenceMeters,
		MinTrackedJoints:    10,
	}
}

// SegmentLength is the measured length of one skeletal segment.
type SegmentLength struct {
	From   body.JointType `json:"from"`
	To     body.JointType `json:"to"`
	Meters float32        `json:"meters"`
}

// LimbSymmetry summarises left-minus-right length differences over the four
// paired limb segments (upper arm, forearm, thigh, shin). A mean near zero
// with low spread indicates a well-formed snapshot; large values usually
// mean one side is badly inferred.
type LimbSymmetry struct {
	MeanDeltaMeters   float64 `json:"mean_delta_meters"`
	StdDevDeltaMeters float64 `json:"stddev_delta_meters"`
}

// Report is the full set of measurements derived from one skeleton snapshot.
// RootRangeSquared follows the squared-distance sensor-range convention; all
// other lengths are true distances in meters.
type Report struct {
	TrackingID       string          `json:"tracking_id"`
	Timestamp        int64           `json:"timestamp"`
	HeightMeters     float64         `json:"height_meters"`
	TrackedJoints    int             `json:"tracked_joints"`
	LowConfidence    bool            `json:"low_confidence"`
	RootRangeSquared float32         `json:"root_range_squared"`
	LeftElbowDeg     float64         `json:"left_elbow_deg"`
	RightElbowDeg    float64         `json:"right_elbow_deg"`
	LeftKneeDeg      float64         `json:"left_knee_deg"`
	RightKneeDeg     float64         `json:"right_knee_deg"`
	Segments         []SegmentLength `json:"segments"`
	Symmetry         LimbSymmetry    `json:"symmetry"`
}

// symmetryPairs lists the paired limb segments compared in LimbSymmetry.
var symmetryPairs = []struct {
	leftFrom, leftTo, rightFrom, rightTo body.JointType
}{
	{body.JointShoulderLeft, body.JointElbowLeft, body.JointShoulderRight, body.JointElbowRight},
	{body.JointElbowLeft, body.JointWristLeft, body.JointElbowRight, body.JointWristRight},
	{body.JointHipLeft, body.JointKneeLeft, body.JointHipRight, body.JointKneeRight},
	{body.JointKneeLeft, body.JointAnkleLeft, body.JointKneeRight, body.JointAnkleRight},
}

// reportChains lists the chains whose segment lengths appear in the report.
var reportChains = [][]body.JointType{
	body.UpperBodyChain,
	body.LeftArmChain,
	body.RightArmChain,
	body.LeftLegChain,
	body.RightLegChain,
}

// interiorAngle is AngleAtJoint with a degeneracy guard: a zero-length
// segment (coincident or absent joints) has no direction, so the angle is
// reported as 0 rather than the NaN the raw formula produces. Reports must
// stay JSON-encodable.
func interiorAngle(s *body.Skeleton, center, a, b body.JointType) float64 {
	c := s.Joint(center).Position
	toA := s.Joint(a).Position.Sub(c)
	toB := s.Joint(b).Position.Sub(c)
	if toA.Length() == 0 || toB.Length() == 0 {
		return 0
	}
	return AngleBetweenVectors(toA, toB)
}

// BuildReport computes all measurements for one snapshot. Pure function of
// its inputs; safe to call concurrently.
func BuildReport(s *body.Skeleton, opts ReportOptions) Report {
	r := Report{
		TrackingID:       s.TrackingID,
		Timestamp:        s.Timestamp,
		HeightMeters:     EstimateHeightWithAllowance(s, opts.HeadAllowanceMeters),
		TrackedJoints:    s.CountTracked(body.AllJointTypes),
		RootRangeSquared: SquaredDistanceFromOrigin(s.Position),
		LeftElbowDeg:     interiorAngle(s, body.JointElbowLeft, body.JointShoulderLeft, body.JointWristLeft),
		RightElbowDeg:    interiorAngle(s, body.JointElbowRight, body.JointShoulderRight, body.JointWristRight),
		LeftKneeDeg:      interiorAngle(s, body.JointKneeLeft, body.JointHipLeft, body.JointAnkleLeft),
		RightKneeDeg:     interiorAngle(s, body.JointKneeRight, body.JointHipRight, body.JointAnkleRight),
	}
	r.LowConfidence = r.TrackedJoints < opts.MinTrackedJoints

	for _, chain := range reportChains {
		for i := 0; i+1 < len(chain); i++ {
			r.Segments = append(r.Segments, SegmentLength{
				From:   chain[i],
				To:     chain[i+1],
				Meters: JointDistance(s, chain[i], chain[i+1]),
			})
		}
	}

	deltas := make([]float64, 0, len(symmetryPairs))
	for _, p := range symmetryPairs {
		left := float64(JointDistance(s, p.leftFrom, p.leftTo))
		right := float64(JointDistance(s, p.rightFrom, p.rightTo))
		deltas = append(deltas, left-right)
	}
	r.Symmetry = LimbSymmetry{
		MeanDeltaMeters:   stat.Mean(deltas, nil),
		StdDevDeltaMeters: stat.StdDev(deltas, nil),
	}

	return r
}
