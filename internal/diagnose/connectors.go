package diagnose

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/redis/go-redis/v9"
)

const pgxDriverName = "pgx"

// SQLConnector opens database/sql handles through the pgx driver. Only
// PostgreSQL dialects are supported; a SQLAlchemy driver suffix such as
// "+psycopg2" is dropped.
type SQLConnector struct {
	open func(driverName, dsn string) (*sql.DB, error)
}

func NewSQLConnector() SQLConnector {
	return SQLConnector{open: sql.Open}
}

func (c SQLConnector) Connect(_ context.Context, uri string) (Pinger, error) {
	dsn, err := postgresDSN(uri)
	if err != nil {
		return nil, err
	}

	open := c.open
	if open == nil {
		open = sql.Open
	}

	db, err := open(pgxDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &sqlConn{db: db}, nil
}

type sqlConn struct {
	db *sql.DB
}

func (c *sqlConn) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlConn) Close() error {
	return c.db.Close()
}

// postgresDSN rewrites a SQLAlchemy connection string into one pgx accepts.
func postgresDSN(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("error parsing connection string: %w", err)
	}

	dialect, _, _ := strings.Cut(u.Scheme, "+")
	switch dialect {
	case "postgresql", "postgres":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	u.Scheme = "postgres"
	return u.String(), nil
}

// RedisConnector opens go-redis clients.
type RedisConnector struct{}

func (RedisConnector) Connect(_ context.Context, uri string) (Pinger, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	return &redisConn{client: redis.NewClient(opts)}, nil
}

type redisConn struct {
	client *redis.Client
}

func (c *redisConn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisConn) Close() error {
	return c.client.Close()
}

// describePingError turns a failed ping into a short operator-facing message.
// PostgreSQL errors are told apart by their SQLSTATE.
func describePingError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out"
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "unreachable"
	}

	switch pgErr.Code {
	case pgerrcode.InvalidPassword,
		pgerrcode.InvalidAuthorizationSpecification:
		return "authentication failed"
	case pgerrcode.InvalidCatalogName:
		return "database does not exist"
	case pgerrcode.CannotConnectNow:
		return "server is starting up"
	case pgerrcode.TooManyConnections:
		return "too many connections"
	}

	if pgerrcode.IsConnectionException(pgErr.Code) {
		return "connection failure"
	}

	return "rejected with SQLSTATE " + pgErr.Code
}
