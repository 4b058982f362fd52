package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/test/util"
)

// SharedTestDB is one migrated PostgreSQL schema that several independent
// clients connect to. Each NewClient call opens its own connection pool,
// so a test can race separate processes against the advisory-lock state
// creation path.
type SharedTestDB struct {
	url    string
	schema string
}

// NewSharedTestDB creates the schema, migrates it once, and registers
// t.Cleanup to drop it after every client has closed.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	base := util.GetBaseConnectionString(t)
	schema := util.GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	_ = admin.Close()

	s := &SharedTestDB{
		url:    util.AddSearchPathToConnString(base, schema),
		schema: schema,
	}

	// Migrate through a throwaway client; callers open their own pools.
	entClient, db := s.open(t)
	require.NoError(t, entClient.Schema.Create(ctx))
	_ = entClient.Close()
	_ = db.Close()

	// Cleanups run LIFO, so every client pool is gone before the drop.
	t.Cleanup(func() {
		admin, err := stdsql.Open("pgx", base)
		if err != nil {
			t.Logf("Warning: could not connect to drop schema %s: %v", schema, err)
			return
		}
		defer func() { _ = admin.Close() }()
		if _, err := admin.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schema, err)
		}
	})

	return s
}

// NewClient opens an independent *database.Client on the shared schema,
// closed via t.Cleanup.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := s.open(t)
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return database.NewClientFromEnt(entClient, db)
}

func (s *SharedTestDB) open(t *testing.T) (*ent.Client, *stdsql.DB) {
	db, err := stdsql.Open("pgx", s.url)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db))), db
}
