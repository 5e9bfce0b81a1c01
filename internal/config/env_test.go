// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"DATABASE_DIALECT":  "postgresql",
		"DATABASE_USER":     "superset",
		"DATABASE_PASSWORD": "superset-pass",
		"DATABASE_HOST":     "db",
		"DATABASE_PORT":     "5432",
		"DATABASE_DB":       "superset",

		"EXAMPLES_USER":     "examples",
		"EXAMPLES_PASSWORD": "examples-pass",
		"EXAMPLES_HOST":     "examples-db",
		"EXAMPLES_PORT":     "5433",
		"EXAMPLES_DB":       "examples",

		"REDIS_HOST":       "cache",
		"REDIS_PORT":       "6380",
		"REDIS_CELERY_DB":  "3",
		"REDIS_RESULTS_DB": "4",

		"GOOGLE_CLIENT_ID":     "client-id",
		"GOOGLE_CLIENT_SECRET": "client-secret",
		"SLACK_API_TOKEN":      "xoxb-token",
		"SUPERSET_SECRET_KEY":  "secret",
		"SUPERSET_CONFIG_PATH": "/etc/superset",
	}

	// Act
	var e Environment
	err := parseEnv(&e, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, DatabaseEnv{
		Dialect:  "postgresql",
		User:     "superset",
		Password: "superset-pass",
		Host:     "db",
		Port:     "5432",
		DB:       "superset",
	}, e.Database)
	assert.Equal(t, ExamplesEnv{
		User:     "examples",
		Password: "examples-pass",
		Host:     "examples-db",
		Port:     "5433",
		DB:       "examples",
	}, e.Examples)
	assert.Equal(t, RedisEnv{Host: "cache", Port: "6380", CeleryDB: "3", ResultsDB: "4"}, e.Redis)

	assert.Equal(t, "client-id", e.GoogleClientID)
	assert.Equal(t, "client-secret", e.GoogleClientSecret)
	assert.Equal(t, "xoxb-token", e.SlackAPIToken)
	assert.Equal(t, "secret", e.SecretKey)
	assert.Equal(t, "/etc/superset", e.SearchPath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Act
	var e Environment
	err := parseEnv(&e, map[string]string{})

	// Assert
	require.NoError(t, err, "absent variables are never an error")

	assert.Equal(t, DatabaseEnv{}, e.Database)
	assert.Equal(t, ExamplesEnv{}, e.Examples)
	assert.Empty(t, e.GoogleClientID)
	assert.Empty(t, e.SecretKey)

	// Redis falls back to the docker-compose service defaults
	assert.Equal(t, RedisEnv{Host: "redis", Port: "6379", CeleryDB: "0", ResultsDB: "1"}, e.Redis)
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("DATABASE_HOST", "from-process")
	t.Setenv("REDIS_PORT", "7000")

	// Act
	var e Environment
	err := parseEnv(&e, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-process", e.Database.Host)
	assert.Equal(t, "7000", e.Redis.Port)
}

func TestParseEnv_RedisSetButEmpty(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"REDIS_HOST":      "",
		"REDIS_CELERY_DB": "",
	}

	// Act
	var e Environment
	err := parseEnv(&e, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, RedisEnv{Host: "", Port: "6379", CeleryDB: "", ResultsDB: "1"}, e.Redis)
}

func TestParseEnv_ProcessRedisSetButEmpty(t *testing.T) {
	// Arrange
	t.Setenv("REDIS_HOST", "")

	// Act
	var e Environment
	err := parseEnv(&e, nil)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, e.Redis.Host)
}

func TestEnvironment_Connections(t *testing.T) {
	e := Environment{
		Database: DatabaseEnv{Dialect: "postgresql", User: "u", Password: "p", Host: "h", Port: "1", DB: "d"},
		Examples: ExamplesEnv{User: "eu", Password: "ep", Host: "eh", Port: "2", DB: "ed"},
	}

	primary := e.PrimaryConnection()
	examples := e.ExamplesConnection()

	assert.Equal(t, "postgresql://u:p@h:1/d", primary.URI())
	assert.Equal(t, "postgresql://eu:ep@eh:2/ed", examples.URI())
	assert.Equal(t, primary.Dialect, examples.Dialect, "examples share the primary dialect")
}

func TestConnection_URI(t *testing.T) {
	tests := []struct {
		name string
		conn Connection
		want string
	}{
		{
			name: "complete",
			conn: Connection{Dialect: "postgresql", User: "superset", Password: "pw", Host: "db", Port: "5432", Database: "superset"},
			want: "postgresql://superset:pw@db:5432/superset",
		},
		{
			name: "driver suffix kept verbatim",
			conn: Connection{Dialect: "postgresql+psycopg2", User: "a", Password: "b", Host: "c", Port: "5432", Database: "d"},
			want: "postgresql+psycopg2://a:b@c:5432/d",
		},
		{
			name: "special characters are not escaped",
			conn: Connection{Dialect: "mysql", User: "root", Password: "p@ss:w/rd", Host: "db", Port: "3306", Database: "bi"},
			want: "mysql://root:p@ss:w/rd@db:3306/bi",
		},
		{
			name: "missing parts yield empty segments",
			conn: Connection{},
			want: "://:@:/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.conn.URI())
		})
	}
}
