// Package ingest decodes skeleton frames from the motion-tracking sensor and
// feeds them to the measurement layer. One JSON document per frame; the
// listener receives one frame per UDP datagram.
package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/vec"
)

// wireFrame mirrors the sensor's JSON frame layout.
type wireFrame struct {
	TrackingID string      `json:"tracking_id"`
	Timestamp  int64       `json:"timestamp"` // unix nanos, 0 means unset
	Position   vec.Vector3 `json:"position"`
	Joints     []wireJoint `json:"joints"`
}

type wireJoint struct {
	Type     body.JointType     `json:"type"`
	Position vec.Vector3        `json:"position"`
	State    body.TrackingState `json:"state"`
}

// ParseFrame decodes and validates one JSON skeleton frame. Frames with no
// joints, unknown joint types, duplicate joints, invalid tracking states, or
// non-finite positions are rejected. A frame without a tracking ID is
// assigned a fresh UUID; a frame without a timestamp gets the receive time.
func ParseFrame(data []byte) (*body.Skeleton, error) {
	var wf wireFrame
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal frame JSON: %w", err)
	}

	if len(wf.Joints) == 0 {
		return nil, fmt.Errorf("frame has no joints")
	}
	if err := validatePosition(wf.Position); err != nil {
		return nil, fmt.Errorf("root position: %w", err)
	}

	s := &body.Skeleton{
		TrackingID: wf.TrackingID,
		Timestamp:  wf.Timestamp,
		Position:   wf.Position,
		Joints:     make(map[body.JointType]body.Joint, len(wf.Joints)),
	}
	if s.TrackingID == "" {
		s.TrackingID = uuid.NewString()
	}
	if s.Timestamp == 0 {
		s.Timestamp = time.Now().UnixNano()
	}

	for _, wj := range wf.Joints {
		if !body.IsValidJointType(wj.Type) {
			return nil, fmt.Errorf("unknown joint type %q", wj.Type)
		}
		if _, dup := s.Joints[wj.Type]; dup {
			return nil, fmt.Errorf("duplicate joint %q", wj.Type)
		}
		if !body.IsValidTrackingState(wj.State) {
			return nil, fmt.Errorf("joint %q has invalid tracking state %q", wj.Type, wj.State)
		}
		if err := validatePosition(wj.Position); err != nil {
			return nil, fmt.Errorf("joint %q: %w", wj.Type, err)
		}
		s.Joints[wj.Type] = body.Joint{Type: wj.Type, Position: wj.Position, State: wj.State}
	}

	return s, nil
}

func validatePosition(p vec.Vector3) error {
	for _, c := range []float32{p.X, p.Y, p.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("non-finite position component %f", f)
		}
	}
	return nil
}
