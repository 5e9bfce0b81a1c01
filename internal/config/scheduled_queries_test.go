package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProperties_MarshalKeepsOrder(t *testing.T) {
	data, err := json.Marshal(scheduledQueries().JSONSchema.Properties)
	require.NoError(t, err)

	out := string(data)
	order := []string{`"output_table"`, `"start_date"`, `"end_date"`, `"schedule_interval"`, `"dependencies"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
}

func TestSchemaProperties_MarshalOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(SchemaProperties{{Name: "output_table", Type: "string", Title: "Output table name"}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"output_table": {"type": "string", "title": "Output table name"}}`, string(data))
}

func TestSchemaProperties_RoundTrip(t *testing.T) {
	want := scheduledQueries()

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got ScheduledQueries
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}

func TestSchemaProperties_Unmarshal(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		p := SchemaProperties{{Name: "x"}}
		require.NoError(t, json.Unmarshal([]byte(`null`), &p))
		assert.Nil(t, p)
	})

	t.Run("empty object", func(t *testing.T) {
		var p SchemaProperties
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.NotNil(t, p)
		assert.Empty(t, p)
	})

	t.Run("not an object", func(t *testing.T) {
		var p SchemaProperties
		assert.Error(t, json.Unmarshal([]byte(`["a"]`), &p))
	})
}

func TestSchemaProperties_Lookup(t *testing.T) {
	props := scheduledQueries().JSONSchema.Properties

	start, ok := props.Lookup("start_date")
	require.True(t, ok)
	assert.Equal(t, "date-time", start.Format)
	assert.Equal(t, "tomorrow at 9am", start.Default)

	deps, ok := props.Lookup("dependencies")
	require.True(t, ok)
	require.NotNil(t, deps.Items)
	assert.Equal(t, "string", deps.Items.Type)

	_, ok = props.Lookup("owner")
	assert.False(t, ok)
}

func TestScheduledQueries_Validation(t *testing.T) {
	sq := scheduledQueries()

	require.Len(t, sq.Validation, 1)
	rule := sq.Validation[0]
	assert.Equal(t, "less_equal", rule.Name)
	assert.Equal(t, []string{"start_date", "end_date"}, rule.Arguments)
	assert.Equal(t, "end_date", rule.Container)
	assert.Equal(t, "@daily, @weekly, etc.", sq.UISchema["schedule_interval"]["ui:placeholder"])
}
