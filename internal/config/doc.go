// Package config assembles the Superset deployment configuration.
//
// Values are produced in a single pass, later steps overriding earlier ones:
//  1. Built-in defaults
//  2. Environment variables (connection strings, Redis addresses, secrets)
//  3. The optional superset_config_docker.{json,yaml,yml} override file found
//     on the search path
//  4. Fixed values (row limits, webdriver, scheduled-query form) that no
//     override can change
//
// The main entry point is [Load].
package config
