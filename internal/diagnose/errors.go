package diagnose

import "errors"

var (
	// ErrUnsupportedDialect is returned by [SQLConnector] for connection
	// strings whose dialect has no registered driver.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")

	// ErrNoTargets is reported by [PingCheck] when the settings name nothing
	// to connect to.
	ErrNoTargets = errors.New("no targets to ping")
)
