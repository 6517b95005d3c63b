package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverFor(t *testing.T) {
	cases := map[string]Driver{
		"":                                 DriverNone,
		"   ":                              DriverNone,
		"postgres://u:p@localhost:5432/db": DriverPostgres,
		"postgresql://localhost/db":        DriverPostgres,
		"mongodb://localhost:27017/site":   DriverMongo,
		"mongodb+srv://cluster.example/db": DriverMongo,
		"memory://":                        DriverMemory,
	}
	for dsn, want := range cases {
		got, err := DriverFor(dsn)
		require.NoError(t, err, dsn)
		assert.Equal(t, want, got, dsn)
	}
}

func TestDriverForRejectsUnknownScheme(t *testing.T) {
	_, err := DriverFor("mysql://localhost/db")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedScheme))
}

func TestOpenWithoutURL(t *testing.T) {
	conn, err := Open(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, DriverNone, conn.Driver)
	assert.Error(t, conn.Ping(context.Background()))
	assert.NoError(t, conn.Migrate(context.Background()))
}

func TestOpenMemory(t *testing.T) {
	conn, err := Open(context.Background(), "memory://", "")
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, conn.Driver)
	assert.NoError(t, conn.Ping(context.Background()))
}

func TestMongoDBFromURI(t *testing.T) {
	assert.Equal(t, "site", mongoDBFromURI("mongodb://localhost:27017/site"))
	assert.Equal(t, "site", mongoDBFromURI("mongodb://localhost:27017/site/extra"))
	assert.Equal(t, "", mongoDBFromURI("mongodb://localhost:27017"))
}

func TestDescribeWithoutServer(t *testing.T) {
	mem := &Conn{Driver: DriverMemory}
	version, names, err := mem.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "in-memory", version)
	assert.Empty(t, names)

	_, _, err = (&Conn{Driver: DriverNone}).Describe(context.Background())
	assert.Error(t, err)
}
