package diagnose

//go:generate mockgen -source=interfaces.go -destination=../mock/diagnose_mock.go -package=mock

import (
	"context"

	"github.com/algocarelab/superset-config/internal/config"
)

// Check inspects s and returns what it found. A check with nothing to say
// returns no findings.
type Check interface {
	Name() string
	Run(ctx context.Context, s *config.Settings) []Finding
}

// Connector opens a connection to the store addressed by uri.
type Connector interface {
	Connect(ctx context.Context, uri string) (Pinger, error)
}

// Pinger is an open connection. Close must be called once the caller is done
// with it.
type Pinger interface {
	Ping(ctx context.Context) error
	Close() error
}
