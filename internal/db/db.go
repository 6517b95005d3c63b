package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

type Driver string

const (
	DriverNone     Driver = ""
	DriverPostgres Driver = "postgres"
	DriverMongo    Driver = "mongo"
	DriverMemory   Driver = "memory"
)

var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Conn is an open database handle. Exactly one of Pool or Mongo is set,
// except for the memory and none drivers which carry neither.
type Conn struct {
	Driver Driver
	Pool   *pgxpool.Pool
	Mongo  *mongo.Client
	Cols   *Collections
}

// DriverFor maps a connection string to the driver that serves it.
func DriverFor(dsn string) (Driver, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return DriverNone, nil
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return DriverNone, fmt.Errorf("parsing database url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "memory":
		return DriverMemory, nil
	default:
		return DriverNone, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// Open connects to the database named by dsn. An empty dsn yields a Conn
// with DriverNone so callers can still wire an unavailable store.
func Open(ctx context.Context, dsn, mongoDB string) (*Conn, error) {
	driver, err := DriverFor(dsn)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverPostgres:
		pool, err := ConnectPostgres(ctx, PostgresConfig{DSN: dsn})
		if err != nil {
			return nil, err
		}
		return &Conn{Driver: driver, Pool: pool}, nil
	case DriverMongo:
		if mongoDB == "" {
			mongoDB = mongoDBFromURI(dsn)
		}
		if mongoDB == "" {
			mongoDB = "repaired"
		}
		client, cols, err := ConnectMongo(ctx, dsn, mongoDB)
		if err != nil {
			return nil, err
		}
		return &Conn{Driver: driver, Mongo: client, Cols: cols}, nil
	default:
		return &Conn{Driver: driver}, nil
	}
}

// Migrate creates the tables, collections and indexes the site needs.
func (c *Conn) Migrate(ctx context.Context) error {
	switch c.Driver {
	case DriverPostgres:
		return MigratePostgres(ctx, c.Pool)
	case DriverMongo:
		return EnsureIndexes(ctx, c.Cols)
	default:
		return nil
	}
}

func (c *Conn) Ping(ctx context.Context) error {
	switch c.Driver {
	case DriverPostgres:
		return c.Pool.Ping(ctx)
	case DriverMongo:
		return c.Mongo.Ping(ctx, nil)
	case DriverMemory:
		return nil
	default:
		return errors.New("database not configured")
	}
}

func (c *Conn) Close(ctx context.Context) {
	switch c.Driver {
	case DriverPostgres:
		c.Pool.Close()
	case DriverMongo:
		_ = c.Mongo.Disconnect(ctx)
	}
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	name := strings.Trim(u.Path, "/")
	// mongodb URIs sometimes include extra path segments; only the first one names the db.
	if idx := strings.Index(name, "/"); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// Describe reports the server version and the tables or collections that
// exist, for connection checks.
func (c *Conn) Describe(ctx context.Context) (string, []string, error) {
	switch c.Driver {
	case DriverPostgres:
		version, err := PostgresVersion(ctx, c.Pool)
		if err != nil {
			return "", nil, err
		}
		tables, err := PostgresTables(ctx, c.Pool)
		return version, tables, err
	case DriverMongo:
		version, err := MongoVersion(ctx, c.Cols)
		if err != nil {
			return "", nil, err
		}
		names, err := MongoCollections(ctx, c.Cols)
		return version, names, err
	case DriverMemory:
		return "in-memory", nil, nil
	default:
		return "", nil, errors.New("database not configured")
	}
}
