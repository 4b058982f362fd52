// Package util bootstraps PostgreSQL-backed tests. Every test gets its own
// schema inside one shared database, so packages parallelize without
// stepping on each other's tables.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hnscribe/hnscribe/ent"
)

var (
	sharedURL string
	startOnce sync.Once
	startErr  error
)

// SetupTestDatabase creates a schema for this test, migrates it, and
// returns an Ent client plus the pool behind it. The schema is dropped and
// both handles are closed through t.Cleanup. The database itself comes
// from CI_DATABASE_URL when set, otherwise from a testcontainer started
// once per test binary.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	base := sharedDatabaseURL(t)
	schemaName := GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = admin.Close()
	t.Logf("Created test schema: %s", schemaName)

	// search_path rides in the connection string so every pooled
	// connection lands in the test schema.
	db, err := stdsql.Open("pgx", AddSearchPathToConnString(base, schemaName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		_, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
		if err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schemaName, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString returns the connection string of the shared
// database without any search_path. Tests that build extra connection
// pools against the same schema start from this.
func GetBaseConnectionString(t *testing.T) string {
	return sharedDatabaseURL(t)
}

// sharedDatabaseURL returns CI_DATABASE_URL when present; otherwise it
// starts the package-wide postgres container on first use.
func sharedDatabaseURL(t *testing.T) string {
	if ciURL := os.Getenv("CI_DATABASE_URL"); ciURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ciURL
	}

	startOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			startErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		sharedURL, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			startErr = fmt.Errorf("failed to get connection string: %w", err)
		}
	})

	require.NoError(t, startErr, "failed to set up shared test database")
	return sharedURL
}

// GenerateSchemaName derives a unique schema name from the test name:
// test_<sanitized_name>_<random_hex>, truncated to stay under the 63-char
// identifier limit.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter so the whole
// pool uses the given schema.
func AddSearchPathToConnString(connStr, schemaName string) string {
	separator := "?"
	if strings.Contains(connStr, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%ssearch_path=%s", connStr, separator, schemaName)
}
