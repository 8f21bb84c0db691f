package repositories

import (
	"context"
	"fmt"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/monitoring"

	"github.com/lib/pq"
)

var migrations = []struct {
	name  string
	query string
}{
	{
		name: "create_requests",
		query: `CREATE TABLE IF NOT EXISTS requests (
			"id" BIGSERIAL PRIMARY KEY,
			"dt" TEXT,
			"action" TEXT,
			"payload" TEXT,
			"created_at" TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	},
	{
		name:  "index_requests_created_at",
		query: `CREATE INDEX IF NOT EXISTS requests_created_at_idx ON requests ("created_at");`,
	},
	{
		name: "create_logs",
		query: `CREATE TABLE IF NOT EXISTS logs (
			"id" BIGSERIAL PRIMARY KEY,
			"dt" TEXT,
			"action" TEXT,
			"payload" TEXT,
			"internal_payload" TEXT,
			"created_at" TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	},
	{
		name:  "index_logs_created_at",
		query: `CREATE INDEX IF NOT EXISTS logs_created_at_idx ON logs ("created_at");`,
	},
}

type MigrationRepository interface {
	// Migrate creates the audit tables. Every statement is idempotent.
	Migrate(ctx context.Context) error
}

type migrationRepository sqlRepo

var _ MigrationRepository = (*migrationRepository)(nil)

func (r *migrationRepository) Migrate(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := r.r.extractTxWrite(ctx)

	if schema := r.r.config.Postgres.DbSchema; schema != "" && schema != "public" {
		if _, err = db.ExecContext(ctx, createSchemaQuery(schema)); err != nil {
			return fmt.Errorf("migration create_schema: %w", err)
		}
		xlog.Info(ctx, "[MIGRATION]", xlog.String("name", "create_schema"), xlog.String("schema", schema))
	}

	for _, m := range migrations {
		if _, err = db.ExecContext(ctx, m.query); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		xlog.Info(ctx, "[MIGRATION]", xlog.String("name", m.name))
	}

	return nil
}

func createSchemaQuery(schema string) string {
	return "CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema) + ";"
}
