package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ScheduledQueries describes the "Schedule query" form of SQL Lab. The
// collected answers are stored in the extra field of the saved query.
type ScheduledQueries struct {
	JSONSchema FormSchema                   `json:"JSONSCHEMA"`
	UISchema   map[string]map[string]string `json:"UISCHEMA"`
	Validation []ValidationRule             `json:"VALIDATION"`
}

// FormSchema is a JSON Schema object document as rendered by
// react-jsonschema-form.
type FormSchema struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Properties  SchemaProperties `json:"properties"`
}

// SchemaProperty is one typed form field. Name is the property key.
type SchemaProperty struct {
	Name    string       `json:"-"`
	Type    string       `json:"type"`
	Title   string       `json:"title"`
	Format  string       `json:"format,omitempty"`
	Default string       `json:"default,omitempty"`
	Items   *SchemaItems `json:"items,omitempty"`
}

// SchemaItems types the elements of an array property.
type SchemaItems struct {
	Type string `json:"type"`
}

// SchemaProperties keeps form fields in declaration order, which is the
// order the form renders them in. It encodes as a JSON object.
type SchemaProperties []SchemaProperty

// Lookup returns the property called name.
func (p SchemaProperties) Lookup(name string) (SchemaProperty, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop, true
		}
	}
	return SchemaProperty{}, false
}

func (p SchemaProperties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (p *SchemaProperties) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*p = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema properties: expected object, got %v", tok)
	}

	props := SchemaProperties{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		var prop SchemaProperty
		if err := dec.Decode(&prop); err != nil {
			return fmt.Errorf("schema property %v: %w", tok, err)
		}
		prop.Name, _ = tok.(string)
		props = append(props, prop)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = props
	return nil
}

// ValidationRule is a cross-field check evaluated by the form. Container is
// the property the error message is shown under.
type ValidationRule struct {
	Name      string   `json:"name"`
	Arguments []string `json:"arguments"`
	Message   string   `json:"message"`
	Container string   `json:"container"`
}

func scheduledQueries() ScheduledQueries {
	return ScheduledQueries{
		JSONSchema: FormSchema{
			Title: "Schedule",
			Description: "In order to schedule a query, you need to specify when it " +
				"should start running, when it should stop running, and how " +
				"often it should run. You can also optionally specify " +
				"dependencies that should be met before the query is " +
				"executed. Please read the documentation for best practices " +
				"and more information on how to specify dependencies.",
			Type: "object",
			Properties: SchemaProperties{
				{Name: "output_table", Type: "string", Title: "Output table name"},
				// date-time defaults are natural language, parsed by chrono-node
				{Name: "start_date", Type: "string", Title: "Start date", Format: "date-time", Default: "tomorrow at 9am"},
				{Name: "end_date", Type: "string", Title: "End date", Format: "date-time", Default: "9am in 30 days"},
				{Name: "schedule_interval", Type: "string", Title: "Schedule interval"},
				{Name: "dependencies", Type: "array", Title: "Dependencies", Items: &SchemaItems{Type: "string"}},
			},
		},
		UISchema: map[string]map[string]string{
			"schedule_interval": {
				"ui:placeholder": "@daily, @weekly, etc.",
			},
			"dependencies": {
				"ui:help": "Check the documentation for the correct format when " +
					"defining dependencies.",
			},
		},
		Validation: []ValidationRule{
			{
				Name:      "less_equal",
				Arguments: []string{"start_date", "end_date"},
				Message:   "End date cannot be before start date",
				Container: "end_date",
			},
		},
	}
}
