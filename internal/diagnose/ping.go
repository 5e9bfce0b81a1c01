package diagnose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/algocarelab/superset-config/internal/config"
	"github.com/algocarelab/superset-config/internal/logger"
)

// DefaultPingTimeout bounds a single connect-and-ping when PingCheck has no
// Timeout.
const DefaultPingTimeout = 5 * time.Second

// PingCheck connects to the metadata and examples databases and to the Redis
// broker and result backend, and pings each of them. Every connection it
// opens is closed before the next target is tried.
type PingCheck struct {
	SQL     Connector
	Redis   Connector
	Timeout time.Duration
}

// NewPingCheck returns a PingCheck using the pgx and go-redis clients.
func NewPingCheck(timeout time.Duration) PingCheck {
	return PingCheck{
		SQL:     NewSQLConnector(),
		Redis:   RedisConnector{},
		Timeout: timeout,
	}
}

func (PingCheck) Name() string { return "ping" }

type pingTarget struct {
	subject   string
	uri       string
	connector Connector
}

func (c PingCheck) targets(s *config.Settings) []pingTarget {
	candidates := []pingTarget{
		{"SQLALCHEMY_DATABASE_URI", s.SQLAlchemyDatabaseURI, c.SQL},
		{"SQLALCHEMY_EXAMPLES_URI", s.SQLAlchemyExamplesURI, c.SQL},
		{"CELERY_CONFIG.broker_url", s.CeleryConfig.BrokerURL, c.Redis},
		{"CELERY_CONFIG.result_backend", s.CeleryConfig.ResultBackend, c.Redis},
	}

	targets := make([]pingTarget, 0, len(candidates))
	for _, t := range candidates {
		// a missing dialect means nothing was configured
		if t.uri == "" || strings.HasPrefix(t.uri, "://") || t.connector == nil {
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

func (c PingCheck) Run(ctx context.Context, s *config.Settings) []Finding {
	targets := c.targets(s)
	if len(targets) == 0 {
		return []Finding{{
			Check:    c.Name(),
			Severity: SeverityWarning,
			Message:  "nothing to ping",
			Err:      ErrNoTargets,
		}}
	}

	log := logger.FromContext(ctx)

	findings := make([]Finding, 0, len(targets))
	for _, t := range targets {
		f := Finding{Check: c.Name(), Subject: t.subject}

		log.Debug().Str("target", t.subject).Msg("pinging")
		err := c.ping(ctx, t)
		switch {
		case err == nil:
			f.Severity = SeverityInfo
			f.Message = "reachable"
		case errors.Is(err, ErrUnsupportedDialect):
			f.Severity = SeverityWarning
			f.Message = "skipped"
			f.Err = err
		default:
			f.Severity = SeverityError
			f.Message = describePingError(err)
			f.Err = err
		}
		findings = append(findings, f)
	}

	return findings
}

func (c PingCheck) ping(ctx context.Context, t pingTarget) (err error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := t.connector.Connect(ctx, t.uri)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("error closing connection: %w", closeErr))
		}
	}()

	return conn.Ping(ctx)
}
