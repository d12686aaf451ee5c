package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/banshee-data/kinemetry/internal/api"
	"github.com/banshee-data/kinemetry/internal/body"
	"github.com/banshee-data/kinemetry/internal/config"
	"github.com/banshee-data/kinemetry/internal/ingest"
	"github.com/banshee-data/kinemetry/internal/measure"
	"github.com/banshee-data/kinemetry/internal/units"
	"github.com/banshee-data/kinemetry/internal/version"
)

var (
	listen     = flag.String("listen", ":8080", "HTTP listen address")
	udpListen  = flag.String("udp-listen", ":7788", "UDP frame ingest address (empty to disable)")
	configPath = flag.String("config", "", "Path to tuning config JSON")
	unitsFlag  = flag.String("units", "", "Display units (m, cm, ftin); overrides config")
)

// resolveConfig loads the tuning config and applies the units flag override.
func resolveConfig(path, unitsOverride string) (*config.TuningConfig, error) {
	cfg := config.EmptyTuningConfig()
	if path != "" {
		loaded, err := config.LoadTuningConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if unitsOverride != "" {
		if !units.IsValid(unitsOverride) {
			return nil, fmt.Errorf("invalid units %q, must be one of: %s",
				unitsOverride, units.GetValidUnitsString())
		}
		cfg.Units = &unitsOverride
	}

	return cfg, nil
}

// logFrame writes one line per measured frame: who, how far, how tall.
func logFrame(s *body.Skeleton, opts measure.ReportOptions, displayUnits string) {
	report := measure.BuildReport(s, opts)
	confidence := ""
	if report.LowConfidence {
		confidence = " (low confidence)"
	}
	log.Printf("measured body %s: height %s, range² %.2fm², %d/20 joints tracked%s",
		report.TrackingID,
		units.FormatLength(report.HeightMeters, displayUnits),
		report.RootRangeSquared,
		report.TrackedJoints,
		confidence,
	)
}

func main() {
	flag.Parse()

	log.Printf("kinemetry %s starting", version.String())

	cfg, err := resolveConfig(*configPath, *unitsFlag)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	opts := cfg.ReportOptions()
	displayUnits := cfg.GetUnits()

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// UDP frame ingest goroutine
	if *udpListen != "" {
		stats := ingest.NewFrameStats()
		listener := ingest.NewUDPListener(ingest.UDPListenerConfig{
			Address:     *udpListen,
			RcvBuf:      cfg.GetUDPReceiveBuffer(),
			LogInterval: cfg.GetStatsLogInterval(),
			Stats:       stats,
			Handler: func(s *body.Skeleton) {
				logFrame(s, opts, displayUnits)
			},
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := listener.Start(ctx); err != nil && err != context.Canceled {
				log.Printf("frame listener terminated: %v", err)
			}
		}()
	}

	// HTTP server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := http.NewServeMux()
		mux.Handle("/api/", api.NewServer(cfg).ServeMux())

		server := &http.Server{
			Addr:    *listen,
			Handler: api.LoggingMiddleware(mux),
		}

		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}()
		log.Printf("serving measurement API on %s", *listen)

		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}()

	wg.Wait()
}
