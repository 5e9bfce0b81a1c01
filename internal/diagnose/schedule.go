package diagnose

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/algocarelab/superset-config/internal/config"
)

// ScheduleCheck verifies the beat schedule and worker settings of the task
// queue.
type ScheduleCheck struct{}

func (ScheduleCheck) Name() string { return "schedule" }

func (c ScheduleCheck) Run(_ context.Context, s *config.Settings) []Finding {
	var findings []Finding
	celery := s.CeleryConfig

	if celery.WorkerPrefetchMultiplier < 1 {
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Subject:  "CELERY_CONFIG.worker_prefetch_multiplier",
			Message:  fmt.Sprintf("must be at least 1, got %d", celery.WorkerPrefetchMultiplier),
		})
	}

	if len(celery.BeatSchedule) == 0 {
		return append(findings, Finding{
			Check:    c.Name(),
			Severity: SeverityWarning,
			Subject:  "CELERY_CONFIG.beat_schedule",
			Message:  "no periodic jobs, alerts and reports will never be evaluated",
		})
	}

	for _, name := range beatNames(celery.BeatSchedule) {
		entry := celery.BeatSchedule[name]
		subject := "CELERY_CONFIG.beat_schedule." + name

		if entry.Task == "" {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Subject:  subject,
				Message:  "task name is empty",
			})
		}

		spec := entry.Schedule.Spec()
		if _, err := cron.ParseStandard(spec); err != nil {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Subject:  subject,
				Message:  fmt.Sprintf("invalid crontab %q", spec),
				Err:      err,
			})
			continue
		}

		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: SeverityInfo,
			Subject:  subject,
			Message:  fmt.Sprintf("runs %s on %q", entry.Task, spec),
		})
	}

	return findings
}

// EntryRuns lists the upcoming trigger times of one beat entry.
type EntryRuns struct {
	Name string
	Task string
	Spec string
	Next []time.Time
}

// NextRuns computes the next n trigger times after from of every beat entry,
// ordered by entry name. Times are in the location of from.
func NextRuns(s *config.Settings, from time.Time, n int) ([]EntryRuns, error) {
	schedule := s.CeleryConfig.BeatSchedule
	runs := make([]EntryRuns, 0, len(schedule))

	for _, name := range beatNames(schedule) {
		entry := schedule[name]
		spec := entry.Schedule.Spec()

		sched, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("error parsing crontab of %s: %w", name, err)
		}

		er := EntryRuns{Name: name, Task: entry.Task, Spec: spec}
		next := from
		for range n {
			next = sched.Next(next)
			if next.IsZero() {
				break
			}
			er.Next = append(er.Next, next)
		}
		runs = append(runs, er)
	}

	return runs, nil
}

func beatNames(schedule map[string]config.BeatEntry) []string {
	names := make([]string, 0, len(schedule))
	for name := range schedule {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
