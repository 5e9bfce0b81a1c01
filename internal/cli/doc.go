// Package cli implements the superset-config command line:
//
//	superset-config render   [--format json|yaml] [--show-secrets]
//	superset-config check    [--ping] [--timeout 5s] [--verbose]
//	superset-config schedule [--count 3]
//	superset-config version
//
// Every command accepts --search-path and --log-level. Logs are written to
// stderr, command output to stdout.
package cli
