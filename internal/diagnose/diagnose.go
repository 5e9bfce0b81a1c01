// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diagnose

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/algocarelab/superset-config/internal/config"
	"github.com/algocarelab/superset-config/internal/logger"
)

// Severity ranks a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Finding is a single observation made by a check.
type Finding struct {
	Check    string
	Severity Severity
	// Subject names the setting the finding is about, e.g. "CELERY_CONFIG.broker_url".
	Subject string
	Message string
	Err     error
}

func (f Finding) String() string {
	msg := f.Severity.String() + " [" + f.Check + "]"
	if f.Subject != "" {
		msg += " " + f.Subject + ":"
	}
	msg += " " + f.Message
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

// Report is the outcome of one [Doctor.Run].
type Report struct {
	RunID    string
	Findings []Finding
}

// Count returns the number of findings of the given severity.
func (r Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any finding is an error.
func (r Report) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// Doctor runs checks in order against one settings value.
type Doctor struct {
	checks []Check
	log    *logger.Logger
}

// NewDoctor returns a Doctor running checks. Without checks it runs
// [DefaultChecks].
func NewDoctor(log *logger.Logger, checks ...Check) *Doctor {
	if log == nil {
		log = logger.Nop()
	}
	if len(checks) == 0 {
		checks = DefaultChecks()
	}

	return &Doctor{
		checks: checks,
		log:    log,
	}
}

// DefaultChecks returns every check that works offline.
func DefaultChecks() []Check {
	return []Check{
		ScheduleCheck{},
		URICheck{},
		BrokerCheck{},
		NewOAuthCheck(),
		SchemaCheck{},
	}
}

var errNilSettings = errors.New("nil settings")

// Run executes every check and returns the collected findings. It stops early
// only when ctx is done.
func (d *Doctor) Run(ctx context.Context, s *config.Settings) (Report, error) {
	if s == nil {
		return Report{}, errNilSettings
	}

	report := Report{RunID: newRunID()}

	log := d.log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", report.RunID)
	})
	ctx = log.WithContext(ctx)

	for _, check := range d.checks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		log.Debug().Str("check", check.Name()).Msg("running check")
		for _, f := range check.Run(ctx, s) {
			logFinding(log, f)
			report.Findings = append(report.Findings, f)
		}
	}

	log.Info().
		Int("errors", report.Count(SeverityError)).
		Int("warnings", report.Count(SeverityWarning)).
		Msg("diagnostics finished")

	return report, nil
}

// newRunID returns a time-ordered identifier so runs sort by start time.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

func logFinding(log *logger.Logger, f Finding) {
	event := log.Debug()
	switch f.Severity {
	case SeverityWarning:
		event = log.Warn()
	case SeverityError:
		event = log.Error()
	}

	event.Str("check", f.Check).Str("subject", f.Subject).Err(f.Err).Msg(f.Message)
}
