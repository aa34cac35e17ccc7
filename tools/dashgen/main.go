// Package main generates the Grafana dashboard and Prometheus rule files
// for auction-monitor's textfile metrics.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/auction-monitor/tools/dashgen/dashboards"
	"github.com/donaldgifford/auction-monitor/tools/dashgen/rules"
	"github.com/donaldgifford/auction-monitor/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// Output paths relative to Config.OutputDir.
var (
	dashboardPath = filepath.Join("grafana", "data", "auction-monitor-overview.json")
	recordingPath = filepath.Join("prometheus", "auction-monitor-recording-rules.yaml")
	alertsPath    = filepath.Join("prometheus", "auction-monitor-alerts.yaml")
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is a rendered file waiting to be written.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, err := render(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating directory for %s: %w", a.path, err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", a.path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// render builds and validates every enabled artifact.
func render(cfg Config) ([]artifact, error) {
	var (
		out  []artifact
		errs []error
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		if res := validate.Dashboard(dash, KnownMetrics); !res.Ok() {
			errs = append(errs, fmt.Errorf("dashboard: %v", res.Errors))
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		out = append(out, artifact{path: dashboardPath, data: append(data, '\n')})
	}

	if cfg.RulesEnabled {
		for _, r := range []struct {
			path string
			cr   rules.PrometheusRule
		}{
			{path: recordingPath, cr: rules.RecordingRules()},
			{path: alertsPath, cr: rules.AlertRules()},
		} {
			if res := validate.Rules(r.cr, KnownMetrics); !res.Ok() {
				errs = append(errs, fmt.Errorf("%s: %v", r.cr.Metadata.Name, res.Errors))
			}
			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, fmt.Errorf("marshaling %s: %w", r.cr.Metadata.Name, err)
			}
			out = append(out, artifact{path: r.path, data: append([]byte(generatedHeader), data...)})
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return out, nil
}
