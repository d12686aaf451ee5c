package ingest

import (
	"strings"
	"sync"
	"testing"

	"github.com/banshee-data/kinemetry/internal/monitoring"
)

func TestFrameStats_AddAndReset(t *testing.T) {
	fs := NewFrameStats()

	fs.AddFrame(1024, 20)
	fs.AddFrame(512, 20)
	fs.AddDropped()

	frames, bytes, dropped, joints, duration := fs.GetAndReset()
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
	if bytes != 1536 {
		t.Errorf("bytes = %d, want 1536", bytes)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if joints != 40 {
		t.Errorf("joints = %d, want 40", joints)
	}
	if duration <= 0 {
		t.Errorf("duration = %v, want positive", duration)
	}

	// Counters reset after read.
	frames, bytes, dropped, joints, _ = fs.GetAndReset()
	if frames != 0 || bytes != 0 || dropped != 0 || joints != 0 {
		t.Errorf("counters not reset: frames=%d bytes=%d dropped=%d joints=%d",
			frames, bytes, dropped, joints)
	}
}

func TestFrameStats_ConcurrentUpdates(t *testing.T) {
	fs := NewFrameStats()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				fs.AddFrame(100, 20)
			}
		}()
	}
	wg.Wait()

	frames, bytes, _, joints, _ := fs.GetAndReset()
	if frames != 1000 {
		t.Errorf("frames = %d, want 1000", frames)
	}
	if bytes != 100000 {
		t.Errorf("bytes = %d, want 100000", bytes)
	}
	if joints != 20000 {
		t.Errorf("joints = %d, want 20000", joints)
	}
}

func TestFrameStats_LogStats(t *testing.T) {
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()

	var logged string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		logged = format
	})

	fs := NewFrameStats()
	fs.AddFrame(256, 20)
	fs.LogStats()

	if !strings.HasPrefix(logged, "ingest: ") {
		t.Errorf("log line missing subsystem prefix: %q", logged)
	}
}
