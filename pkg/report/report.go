// pkg/report/report.go - YAML run reports for external monitoring tools.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wrye-bash/bashsetup/pkg/logging"
)

// Target outcome states recorded in a run report.
const (
	StatusInstalled = "installed"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
	StatusPlanned   = "planned" // check-only runs
)

// HostInfo describes the machine a run executed on.
type HostInfo struct {
	Hostname  string `yaml:"hostname"`
	OSCaption string `yaml:"os_caption"`
	OSVersion string `yaml:"os_version"`
	OSBuild   string `yaml:"os_build"`
}

// TargetResult is the recorded outcome for one target.
type TargetResult struct {
	Name     string        `yaml:"name"`
	Label    string        `yaml:"label"`
	Path     string        `yaml:"path,omitempty"`
	Status   string        `yaml:"status"`
	Error    string        `yaml:"error,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// RunReport is the full record of one setup run.
type RunReport struct {
	SessionID string         `yaml:"session_id"`
	Version   string         `yaml:"version"`
	StartTime time.Time      `yaml:"start_time"`
	EndTime   time.Time      `yaml:"end_time"`
	Success   bool           `yaml:"success"`
	Host      HostInfo       `yaml:"host"`
	Targets   []TargetResult `yaml:"targets"`
}

// New starts a report for the current run.
func New(version string) *RunReport {
	now := time.Now()
	return &RunReport{
		SessionID: fmt.Sprintf("bashsetup-%d-%s", now.Unix(), now.Format("2006-01-02-150405")),
		Version:   version,
		StartTime: now,
		Host:      gatherHostInfo(),
	}
}

// AddTarget appends one target outcome.
func (r *RunReport) AddTarget(res TargetResult) {
	if r == nil {
		return
	}
	r.Targets = append(r.Targets, res)
}

// Finalize stamps the end time and overall outcome.
func (r *RunReport) Finalize(success bool) {
	if r == nil {
		return
	}
	r.EndTime = time.Now()
	r.Success = success
}

// Write serializes the report into dir as report-<timestamp>.yaml.
func (r *RunReport) Write(dir string) error {
	if r == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating report directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("serializing run report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report-%s.yaml", r.StartTime.Format("2006-01-02-150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	logging.Info("Wrote run report", "path", path)
	return nil
}
