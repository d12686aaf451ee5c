// Package config loads measurement tuning parameters from JSON files.
// Fields are pointers so a partial file only overrides what it names; the
// Get* accessors supply defaults for everything else.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/banshee-data/kinemetry/internal/measure"
	"github.com/banshee-data/kinemetry/internal/units"
)

// TuningConfig represents the root configuration for measurement tuning.
// The schema matches the /api/config endpoint so the same JSON can be used
// for both startup configuration and inspection at runtime.
type TuningConfig struct {
	// Measurement params
	HeadDivergenceMeters *float64 `json:"head_divergence_meters,omitempty"`
	MinTrackedJoints     *int     `json:"min_tracked_joints,omitempty"`
	Units                *string  `json:"units,omitempty"`

	// Ingest params
	UDPReceiveBuffer *int    `json:"udp_receive_buffer,omitempty"`
	StatsLogInterval *string `json:"stats_log_interval,omitempty"` // duration string like "60s"
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
// Use LoadTuningConfig to load actual values from a file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size. Fields omitted from the JSON file retain their default
// values, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON into empty config. The Get* methods provide fallback
	// defaults for any fields not specified in the JSON.
	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.HeadDivergenceMeters != nil {
		if *c.HeadDivergenceMeters < 0 || *c.HeadDivergenceMeters > 0.5 {
			return fmt.Errorf("head_divergence_meters must be between 0 and 0.5, got %f", *c.HeadDivergenceMeters)
		}
	}

	if c.MinTrackedJoints != nil {
		if *c.MinTrackedJoints < 0 {
			return fmt.Errorf("min_tracked_joints must be non-negative, got %d", *c.MinTrackedJoints)
		}
	}

	if c.Units != nil && !units.IsValid(*c.Units) {
		return fmt.Errorf("invalid units %q, must be one of: %s", *c.Units, units.GetValidUnitsString())
	}

	if c.UDPReceiveBuffer != nil {
		if *c.UDPReceiveBuffer <= 0 {
			return fmt.Errorf("udp_receive_buffer must be positive, got %d", *c.UDPReceiveBuffer)
		}
	}

	if c.StatsLogInterval != nil && *c.StatsLogInterval != "" {
		if _, err := time.ParseDuration(*c.StatsLogInterval); err != nil {
			return fmt.Errorf("invalid stats_log_interval '%s': %w", *c.StatsLogInterval, err)
		}
	}

	return nil
}

// GetHeadDivergenceMeters returns the head_divergence_meters value or the default.
func (c *TuningConfig) GetHeadDivergenceMeters() float64 {
	if c.HeadDivergenceMeters == nil {
		return measure.HeadDivergenceMeters // default
	}
	return *c.HeadDivergenceMeters
}

// GetMinTrackedJoints returns the min_tracked_joints value or the default.
func (c *TuningConfig) GetMinTrackedJoints() int {
	if c.MinTrackedJoints == nil {
		return measure.DefaultReportOptions().MinTrackedJoints // default
	}
	return *c.MinTrackedJoints
}

// GetUnits returns the units value or the default.
func (c *TuningConfig) GetUnits() string {
	if c.Units == nil {
		return units.M // default
	}
	return *c.Units
}

// GetUDPReceiveBuffer returns the udp_receive_buffer value or the default.
func (c *TuningConfig) GetUDPReceiveBuffer() int {
	if c.UDPReceiveBuffer == nil {
		return 1 << 20 // default 1MB
	}
	return *c.UDPReceiveBuffer
}

// GetStatsLogInterval parses and returns the StatsLogInterval as a time.Duration.
func (c *TuningConfig) GetStatsLogInterval() time.Duration {
	if c.StatsLogInterval == nil || *c.StatsLogInterval == "" {
		return 60 * time.Second // default
	}
	d, err := time.ParseDuration(*c.StatsLogInterval)
	if err != nil {
		return 60 * time.Second // default on parse error
	}
	return d
}

// ReportOptions derives measurement report options from the configuration.
func (c *TuningConfig) ReportOptions() measure.ReportOptions {
	return measure.ReportOptions{
		HeadAllowanceMeters: c.GetHeadDivergenceMeters(),
		MinTrackedJoints:    c.GetMinTrackedJoints(),
	}
}
