// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Environment is the raw set of variables read from the process environment.
// Unset variables are left empty; none of them is required.
type Environment struct {
	// Database holds the metadata database connection parts.
	Database DatabaseEnv `envPrefix:"DATABASE_"`

	// Examples holds the examples database connection parts. The dialect is
	// shared with Database.
	Examples ExamplesEnv `envPrefix:"EXAMPLES_"`

	// Redis addresses the broker, the result backend and the caches.
	Redis RedisEnv `envPrefix:"REDIS_"`

	// Env: GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
	// Env: GOOGLE_CLIENT_SECRET
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	// Env: SLACK_API_TOKEN
	SlackAPIToken string `env:"SLACK_API_TOKEN"`
	// Env: SUPERSET_SECRET_KEY
	SecretKey string `env:"SUPERSET_SECRET_KEY"`

	// SearchPath lists directories probed for the override document,
	// separated by the OS path-list separator.
	// Env: SUPERSET_CONFIG_PATH
	SearchPath string `env:"SUPERSET_CONFIG_PATH"`
}

// DatabaseEnv holds DATABASE_* variables.
type DatabaseEnv struct {
	Dialect  string `env:"DIALECT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST"`
	Port     string `env:"PORT"`
	DB       string `env:"DB"`
}

// ExamplesEnv holds EXAMPLES_* variables.
type ExamplesEnv struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST"`
	Port     string `env:"PORT"`
	DB       string `env:"DB"`
}

// RedisEnv holds REDIS_* variables. Port and database indexes stay strings
// because they are only ever interpolated.
//
// Defaults apply only to unset variables. A variable set to "" stays empty.
type RedisEnv struct {
	Host      string `env:"HOST"`
	Port      string `env:"PORT"`
	CeleryDB  string `env:"CELERY_DB"`
	ResultsDB string `env:"RESULTS_DB"`
}

// applyDefaults fills the docker-compose service defaults in for variables
// missing from environ.
func (r *RedisEnv) applyDefaults(environ map[string]string) {
	defaults := []struct {
		name  string
		field *string
		value string
	}{
		{"REDIS_HOST", &r.Host, "redis"},
		{"REDIS_PORT", &r.Port, "6379"},
		{"REDIS_CELERY_DB", &r.CeleryDB, "0"},
		{"REDIS_RESULTS_DB", &r.ResultsDB, "1"},
	}

	for _, d := range defaults {
		if _, ok := environ[d.name]; !ok {
			*d.field = d.value
		}
	}
}

// PrimaryConnection returns the metadata database descriptor.
func (e Environment) PrimaryConnection() Connection {
	return Connection{
		Dialect:  e.Database.Dialect,
		User:     e.Database.User,
		Password: e.Database.Password,
		Host:     e.Database.Host,
		Port:     e.Database.Port,
		Database: e.Database.DB,
	}
}

// ExamplesConnection returns the examples database descriptor.
func (e Environment) ExamplesConnection() Connection {
	return Connection{
		Dialect:  e.Database.Dialect,
		User:     e.Examples.User,
		Password: e.Examples.Password,
		Host:     e.Examples.Host,
		Port:     e.Examples.Port,
		Database: e.Examples.DB,
	}
}

// parseEnv populates e from environment variables using the caarlos0/env
// library. When environ is non-nil it replaces the process environment.
func parseEnv(e *Environment, environ map[string]string) error {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	if err := env.ParseWithOptions(e, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	e.Redis.applyDefaults(environ)

	return nil
}
