package diagnose

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/algocarelab/superset-config/internal/config"
)

// SchemaCheck verifies that the scheduled-query form only refers to fields it
// declares.
type SchemaCheck struct{}

func (SchemaCheck) Name() string { return "schema" }

func (c SchemaCheck) Run(_ context.Context, s *config.Settings) []Finding {
	sq := s.ScheduledQueries
	props := sq.JSONSchema.Properties

	var findings []Finding
	undeclared := func(subject, field string) {
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Subject:  subject,
			Message:  fmt.Sprintf("refers to undeclared field %q", field),
		})
	}

	if len(props) == 0 {
		return []Finding{{
			Check:    c.Name(),
			Severity: SeverityWarning,
			Subject:  "SCHEDULED_QUERIES.JSONSCHEMA",
			Message:  "form has no fields",
		}}
	}

	seen := make(map[string]bool, len(props))
	for _, p := range props {
		if seen[p.Name] {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Subject:  "SCHEDULED_QUERIES.JSONSCHEMA",
				Message:  fmt.Sprintf("field %q declared twice", p.Name),
			})
		}
		seen[p.Name] = true

		if p.Type == "array" && p.Items == nil {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: SeverityWarning,
				Subject:  "SCHEDULED_QUERIES.JSONSCHEMA." + p.Name,
				Message:  "array field without item type",
			})
		}
	}

	for _, field := range slices.Sorted(maps.Keys(sq.UISchema)) {
		if !seen[field] {
			undeclared("SCHEDULED_QUERIES.UISCHEMA", field)
		}
	}

	for _, rule := range sq.Validation {
		subject := "SCHEDULED_QUERIES.VALIDATION." + rule.Name
		for _, arg := range rule.Arguments {
			if !seen[arg] {
				undeclared(subject, arg)
			}
		}
		if rule.Container != "" && !seen[rule.Container] {
			undeclared(subject, rule.Container)
		}
	}

	return findings
}
