package diagnose

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/algocarelab/superset-config/internal/config"
)

const redisCacheType = "RedisCache"

// BrokerCheck parses the task-queue and cache Redis addresses the way the
// Redis client will.
type BrokerCheck struct{}

func (BrokerCheck) Name() string { return "broker" }

func (c BrokerCheck) Run(_ context.Context, s *config.Settings) []Finding {
	var findings []Finding

	broker, err := redis.ParseURL(s.CeleryConfig.BrokerURL)
	if err != nil {
		findings = append(findings, c.invalid("CELERY_CONFIG.broker_url", err))
	}

	results, err := redis.ParseURL(s.CeleryConfig.ResultBackend)
	if err != nil {
		findings = append(findings, c.invalid("CELERY_CONFIG.result_backend", err))
	}

	if broker != nil && results != nil && broker.Addr == results.Addr && broker.DB == results.DB {
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: SeverityWarning,
			Subject:  "CELERY_CONFIG",
			Message:  fmt.Sprintf("broker and result backend share database %d on %s", broker.DB, broker.Addr),
		})
	}

	for _, cache := range []struct {
		subject string
		config  config.CacheConfig
	}{
		{"CACHE_CONFIG", s.CacheConfig},
		{"DATA_CACHE_CONFIG", s.DataCacheConfig},
	} {
		if cache.config.Type != redisCacheType {
			continue
		}
		if _, err := redis.ParseURL(cache.config.RedisURL()); err != nil {
			findings = append(findings, c.invalid(cache.subject, err))
		}
	}

	return findings
}

func (c BrokerCheck) invalid(subject string, err error) Finding {
	return Finding{
		Check:    c.Name(),
		Severity: SeverityError,
		Subject:  subject,
		Message:  "invalid redis address",
		Err:      err,
	}
}
