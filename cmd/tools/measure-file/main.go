// Command measure-file reads a skeleton frame JSON file and prints its
// measurement report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/kinemetry/internal/ingest"
	"github.com/banshee-data/kinemetry/internal/measure"
	"github.com/banshee-data/kinemetry/internal/units"
)

func main() {
	unitsFlag := flag.String("units", units.M, "display units (m, cm, ftin)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: measure-file [-units m|cm|ftin] <frame.json>")
	}
	if !units.IsValid(*unitsFlag) {
		log.Fatalf("invalid units %q, must be one of: %s", *unitsFlag, units.GetValidUnitsString())
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read frame file: %v", err)
	}

	skeleton, err := ingest.ParseFrame(data)
	if err != nil {
		log.Fatalf("failed to parse frame: %v", err)
	}

	report := measure.BuildReport(skeleton, measure.DefaultReportOptions())

	fmt.Printf("body %s (frame %d)\n", report.TrackingID, report.Timestamp)
	fmt.Printf("estimated height: %s\n", units.FormatLength(report.HeightMeters, *unitsFlag))
	fmt.Printf("sensor range²:    %.2f m²\n", report.RootRangeSquared)
	fmt.Printf("tracked joints:   %d/20", report.TrackedJoints)
	if report.LowConfidence {
		fmt.Print(" (low confidence)")
	}
	fmt.Println()
	fmt.Printf("elbows: %.2f° / %.2f°   knees: %.2f° / %.2f°\n",
		report.LeftElbowDeg, report.RightElbowDeg, report.LeftKneeDeg, report.RightKneeDeg)
	fmt.Printf("limb symmetry: mean Δ %.3fm (σ %.3fm)\n",
		report.Symmetry.MeanDeltaMeters, report.Symmetry.StdDevDeltaMeters)

	for _, seg := range report.Segments {
		fmt.Printf("  %-14s → %-14s %s\n", seg.From, seg.To, units.FormatLength(float64(seg.Meters), *unitsFlag))
	}
}
