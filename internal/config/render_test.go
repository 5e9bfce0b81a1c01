package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func renderFixture(t *testing.T) *Settings {
	t.Helper()
	s, _ := loadForTest(t, fullEnvironment())
	s.Extra = map[string]any{"MAPBOX_API_KEY": "pk.123", "A_FIRST": true}
	return s
}

func TestRender_JSON(t *testing.T) {
	out, err := Render(renderFixture(t), FormatJSON)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "pk.123", doc["MAPBOX_API_KEY"])
	assert.Equal(t, true, doc["A_FIRST"])
	assert.Equal(t, float64(5000), doc["ROW_LIMIT"])
	assert.Equal(t, []any{}, doc["WTF_CSRF_EXEMPT_LIST"])

	text := string(out)
	assert.Less(t, strings.Index(text, `"SQLALCHEMY_DATABASE_URI"`), strings.Index(text, `"SCHEDULED_QUERIES"`),
		"declared order is kept")
	assert.Less(t, strings.Index(text, `"SCHEDULED_QUERIES"`), strings.Index(text, `"A_FIRST"`),
		"extra names come last")
	assert.Less(t, strings.Index(text, `"A_FIRST"`), strings.Index(text, `"MAPBOX_API_KEY"`))
	assert.True(t, strings.HasSuffix(text, "}\n"))
}

func TestRender_DefaultFormatIsJSON(t *testing.T) {
	s := renderFixture(t)

	want, err := Render(s, FormatJSON)
	require.NoError(t, err)
	got, err := Render(s, "")
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestRender_YAML(t *testing.T) {
	out, err := Render(renderFixture(t), FormatYAML)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "SQLALCHEMY_DATABASE_URI: postgresql://superset:superset@db:5432/superset\n")
	assert.Contains(t, text, "WTF_CSRF_EXEMPT_LIST: []\n")
	assert.NotContains(t, text, "{\"", "block style only")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "pk.123", doc["MAPBOX_API_KEY"])
	assert.Equal(t, 5000, doc["ROW_LIMIT"])

	celery := doc["CELERY_CONFIG"].(map[string]any)
	beat := celery["beat_schedule"].(map[string]any)
	prune := beat[BeatReportsPruneLog].(map[string]any)["schedule"].(map[string]any)
	assert.Equal(t, "10", prune["minute"], "numeric strings stay strings")
	assert.Equal(t, "0", prune["hour"])

	scheduler := beat[BeatReportsScheduler].(map[string]any)["schedule"].(map[string]any)
	assert.Equal(t, "*", scheduler["minute"])
}

func TestRender_YAMLRoundTripsThroughOverride(t *testing.T) {
	s := renderFixture(t)
	out, err := Render(s, FormatYAML)
	require.NoError(t, err)

	dir := t.TempDir()
	writeOverride(t, dir, ".yaml", string(out))
	reloaded, _ := loadForTest(t, map[string]string{}, dir)

	assert.Equal(t, s.SQLAlchemyDatabaseURI, reloaded.SQLAlchemyDatabaseURI)
	assert.Equal(t, s.CeleryConfig, reloaded.CeleryConfig)
	assert.Equal(t, s.OAuthProviders, reloaded.OAuthProviders)
	assert.Equal(t, s.Extra, reloaded.Extra)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(&Settings{}, "toml")

	assert.ErrorIs(t, err, ErrRenderFormat)
}
