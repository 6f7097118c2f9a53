//go:build integration

package gormstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"campusmap/pkg/store"
	"campusmap/pkg/store/gormstore"
	"campusmap/pkg/store/storetest"
)

// TestPostgresConformance runs the conformance suite against a real
// PostgreSQL started with testcontainers. Requires Docker; run with
// `go test -tags integration`.
func TestPostgresConformance(t *testing.T) {
	ctx := context.Background()

	// PostgreSQL logs "ready to accept connections" twice during startup
	// (bootstrap and final), so wait for the second occurrence.
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("campusmap_test"),
		tcpostgres.WithUsername("campusmap"),
		tcpostgres.WithPassword("campusmap"),
		testcontainers.WithWaitStrategyAndDeadline(5*time.Minute,
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	storetest.RunConformanceSuite(t, func(t *testing.T) store.Store {
		s, err := gormstore.New(gormstore.Config{
			Dialect: gormstore.DialectPostgres,
			Postgres: gormstore.PostgresConfig{
				Host:     host,
				Port:     port.Int(),
				Database: "campusmap_test",
				User:     "campusmap",
				Password: "campusmap",
				SSLMode:  "disable",
			},
		})
		if err != nil {
			t.Fatalf("gormstore.New() failed: %v", err)
		}
		t.Cleanup(func() {
			// Each subtest expects an empty store; drop everything the
			// previous one wrote.
			db := s.DB()
			for _, table := range []string{"buildings", "floors", "rooms", "staff", "events", "walkpaths", "drivepaths", "admin_users", "settings"} {
				db.Exec("TRUNCATE TABLE " + table)
			}
			s.Close()
		})
		return s
	})
}
