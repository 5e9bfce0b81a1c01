// Package diagnose inspects an assembled configuration and reports problems
// the assembler itself never looks for: cron triggers that do not parse,
// connection strings with missing parts, unusable Redis URLs, incomplete OAuth
// registrations and an inconsistent scheduled-query form.
//
// Checks never modify the settings. They are run by a [Doctor], which tags
// every run with an identifier and collects the [Finding]s into a [Report].
//
// Live connectivity is only probed by [PingCheck], which is opt-in.
package diagnose
