package config

import "path/filepath"

// defaultSearchPath is probed for the override document when neither
// WithSearchPath nor SUPERSET_CONFIG_PATH says otherwise.
var defaultSearchPath = []string{"/app/pythonpath", "."}

// Option customizes [Load].
type Option func(*options)

type options struct {
	searchPath []string
	environ    map[string]string
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSearchPath sets the directories probed for the override document, in
// order. It takes precedence over SUPERSET_CONFIG_PATH.
func WithSearchPath(dirs ...string) Option {
	return func(o *options) {
		o.searchPath = append([]string(nil), dirs...)
	}
}

// WithEnvironment makes Load read variables from environ instead of the
// process environment.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// resolveSearchPath picks the override search path: explicit option first,
// then the environment, then the built-in default.
func (o options) resolveSearchPath(fromEnv string) []string {
	if len(o.searchPath) > 0 {
		return o.searchPath
	}

	if fromEnv != "" {
		var dirs []string
		for _, dir := range filepath.SplitList(fromEnv) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
		if len(dirs) > 0 {
			return dirs
		}
	}

	return defaultSearchPath
}
