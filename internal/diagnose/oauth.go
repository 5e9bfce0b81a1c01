package diagnose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/algocarelab/superset-config/internal/config"
)

// OAuthCheck validates the OAuth provider registrations against the struct
// tags of [config.OAuthProvider].
type OAuthCheck struct {
	validator *validator.Validate
}

func NewOAuthCheck() OAuthCheck {
	return OAuthCheck{validator: validator.New()}
}

func (OAuthCheck) Name() string { return "oauth" }

func (c OAuthCheck) Run(_ context.Context, s *config.Settings) []Finding {
	if s.AuthType != config.AuthOAuth {
		return nil
	}

	if len(s.OAuthProviders) == 0 {
		return []Finding{{
			Check:    c.Name(),
			Severity: SeverityError,
			Subject:  "OAUTH_PROVIDERS",
			Message:  "OAuth authentication without any provider",
		}}
	}

	var findings []Finding
	for i, p := range s.OAuthProviders {
		subject := fmt.Sprintf("OAUTH_PROVIDERS[%d]", i)
		if p.Name != "" {
			subject = "OAUTH_PROVIDERS." + p.Name
		}

		findings = append(findings, c.validate(subject, p)...)

		for _, entry := range p.Whitelist {
			if !strings.HasPrefix(entry, "@") {
				findings = append(findings, Finding{
					Check:    c.Name(),
					Severity: SeverityWarning,
					Subject:  subject + ".whitelist",
					Message:  fmt.Sprintf("%q is not an email domain", entry),
				})
			}
		}

		if p.RemoteApp.ClientID == "" || p.RemoteApp.ClientSecret == "" {
			findings = append(findings, Finding{
				Check:    c.Name(),
				Severity: SeverityWarning,
				Subject:  subject + ".remote_app",
				Message:  "client credentials are empty, sign-in will fail",
			})
		}
	}

	return findings
}

func (c OAuthCheck) validate(subject string, p config.OAuthProvider) []Finding {
	v := c.validator
	if v == nil {
		v = validator.New()
	}

	err := v.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Finding{{
			Check:    c.Name(),
			Severity: SeverityError,
			Subject:  subject,
			Message:  "cannot validate provider",
			Err:      err,
		}}
	}

	findings := make([]Finding, 0, len(verrs))
	for _, fe := range verrs {
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Subject:  subject,
			Message:  fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()),
		})
	}
	return findings
}
