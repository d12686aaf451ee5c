package ingest

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/monitoring"
)

// maxDatagramSize is the receive buffer for a single frame datagram. A full
// 20-joint frame is a few kilobytes of JSON; 64KB covers any legal UDP
// payload.
const maxDatagramSize = 64 * 1024

// FrameHandler consumes one decoded skeleton snapshot. Handlers run on the
// listener goroutine, so slow handlers delay subsequent frames.
type FrameHandler func(*body.Skeleton)

// UDPListener receives skeleton frames from UDP, one JSON frame per
// datagram. It manages the socket, decoding, statistics, and drop-on-error
// semantics: a malformed frame is counted and skipped, never fatal.
type UDPListener struct {
	address     string
	rcvBuf      int
	logInterval time.Duration
	buffer      []byte
	stats       *FrameStats
	handler     FrameHandler
	logf        func(format string, v ...interface{})
}

// UDPListenerConfig contains configuration options for the UDP listener
type UDPListenerConfig struct {
	Address     string
	RcvBuf      int
	LogInterval time.Duration
	Stats       *FrameStats
	Handler     FrameHandler
}

// NewUDPListener creates a new UDP listener with the provided configuration
func NewUDPListener(config UDPListenerConfig) *UDPListener {
	return &UDPListener{
		address:     config.Address,
		rcvBuf:      config.RcvBuf,
		logInterval: config.LogInterval,
		buffer:      make([]byte, maxDatagramSize),
		stats:       config.Stats,
		handler:     config.Handler,
		logf:        monitoring.Prefixed("ingest: "),
	}
}

// Start begins listening for frame datagrams and processing them.
// Returns when the context is cancelled or an unrecoverable error occurs.
func (l *UDPListener) Start(ctx context.Context) error {
	addr, err := net.ResolveUDPAddr("udp", l.address)
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address: %v", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on UDP: %v", err)
	}
	defer conn.Close()

	if l.rcvBuf > 0 {
		if err := conn.SetReadBuffer(l.rcvBuf); err != nil {
			l.logf("warning: failed to set UDP receive buffer to %d bytes: %v (some OSes clamp buffer sizes)", l.rcvBuf, err)
		}
	}

	l.logf("listening for skeleton frames on %s", l.address)

	if l.stats != nil && l.logInterval > 0 {
		go l.startStatsLogging(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			l.logf("listener shutting down")
			return ctx.Err()
		default:
			// Read timeout allows checking for context cancellation.
			if err := conn.SetReadDeadline(time.Now().Add(1 * time.Second)); err != nil {
				l.logf("error setting read deadline: %v", err)
				continue
			}

			n, _, err := conn.ReadFromUDP(l.buffer)
			if err != nil {
				if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
					continue
				}
				l.logf("error reading frame datagram: %v", err)
				continue
			}

			l.handleFrame(l.buffer[:n])
		}
	}
}

// handleFrame decodes one datagram and passes the snapshot to the handler.
// The buffer is reused across reads; ParseFrame fully copies the data into
// the snapshot, so nothing retains the raw bytes.
func (l *UDPListener) handleFrame(data []byte) {
	s, err := ParseFrame(data)
	if err != nil {
		if l.stats != nil {
			l.stats.AddDropped()
		}
		l.logf("dropping frame: %v", err)
		return
	}

	if l.stats != nil {
		l.stats.AddFrame(len(data), len(s.Joints))
	}
	if l.handler != nil {
		l.handler(s)
	}
}

// startStatsLogging logs statistics at regular intervals until cancelled
func (l *UDPListener) startStatsLogging(ctx context.Context) {
	ticker := time.NewTicker(l.logInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.stats.LogStats()
		}
	}
}
