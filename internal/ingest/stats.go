package ingest

import (
	"sync"
	"time"

	"github.com/banshee-data/kinemetry/internal/monitoring"
)

// FrameStats tracks frame ingest statistics with thread-safe operations
type FrameStats struct {
	mu           sync.Mutex
	frameCount   int64
	byteCount    int64
	droppedCount int64
	jointCount   int64
	lastReset    time.Time
}

// NewFrameStats creates a new FrameStats instance
func NewFrameStats() *FrameStats {
	return &FrameStats{
		lastReset: time.Now(),
	}
}

// AddFrame increments frame count, byte count and joint count
func (fs *FrameStats) AddFrame(bytes, joints int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.frameCount++
	fs.byteCount += int64(bytes)
	fs.jointCount += int64(joints)
}

// AddDropped increments the dropped frame count
func (fs *FrameStats) AddDropped() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.droppedCount++
}

// GetAndReset returns current stats and resets counters
func (fs *FrameStats) GetAndReset() (frames, bytes, dropped, joints int64, duration time.Duration) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	now := time.Now()
	frames = fs.frameCount
	bytes = fs.byteCount
	dropped = fs.droppedCount
	joints = fs.jointCount
	duration = now.Sub(fs.lastReset)

	fs.frameCount = 0
	fs.byteCount = 0
	fs.droppedCount = 0
	fs.jointCount = 0
	fs.lastReset = now

	return frames, bytes, dropped, joints, duration
}

// LogStats logs the current statistics and resets the counters
func (fs *FrameStats) LogStats() {
	frames, bytes, dropped, joints, duration := fs.GetAndReset()
	if duration <= 0 {
		return
	}

	rate := float64(frames) / duration.Seconds()
	monitoring.Prefixed("ingest: ")(
		"%d frames (%d bytes, %d joints) in %v (%.1f frames/s), %d dropped",
		frames, bytes, joints, duration.Round(time.Millisecond), rate, dropped,
	)
}
