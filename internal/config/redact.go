package config

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

const redactedValue = "xxxxx"

// secretSuffixes mark override-only names whose values are masked.
var secretSuffixes = []string{"_KEY", "_TOKEN", "_SECRET", "_PASSWORD"}

// Redacted returns a copy of s with secrets and connection passwords masked.
// The receiver is left untouched.
func (s *Settings) Redacted() *Settings {
	out := *s

	out.SQLAlchemyDatabaseURI = redactURI(s.SQLAlchemyDatabaseURI)
	out.SQLAlchemyExamplesURI = redactURI(s.SQLAlchemyExamplesURI)
	out.CeleryConfig.BrokerURL = redactURI(s.CeleryConfig.BrokerURL)
	out.CeleryConfig.ResultBackend = redactURI(s.CeleryConfig.ResultBackend)
	out.SecretKey = redactString(s.SecretKey)
	out.SlackAPIToken = redactString(s.SlackAPIToken)

	out.OAuthProviders = slices.Clone(s.OAuthProviders)
	for i := range out.OAuthProviders {
		app := &out.OAuthProviders[i].RemoteApp
		app.ClientSecret = redactString(app.ClientSecret)
	}

	out.Extra = maps.Clone(s.Extra)
	for name, value := range out.Extra {
		if isSecretName(name) && value != nil {
			out.Extra[name] = redactedValue
		}
	}

	return &out
}

func isSecretName(name string) bool {
	upper := strings.ToUpper(name)
	for _, suffix := range secretSuffixes {
		if strings.HasSuffix(upper, suffix) {
			return true
		}
	}
	return false
}

func redactString(v string) string {
	if v == "" {
		return ""
	}
	return redactedValue
}

// redactURI masks the password of a URI. A value that does not parse, or
// whose credentials the parser could not separate, is masked entirely.
func redactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return redactString(uri)
	}
	if u.User == nil {
		// "u:12/x@h" parses as host u:12, leaving the password in the path
		if _, rest, ok := strings.Cut(uri, "://"); ok && strings.Contains(rest, "@") {
			return redactedValue
		}
		return uri
	}
	if _, ok := u.User.Password(); !ok {
		return uri
	}
	return u.Redacted()
}
