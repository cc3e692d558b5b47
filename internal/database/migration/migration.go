package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_destinations",
		SQL: `CREATE TABLE IF NOT EXISTS destinations (
  id         BIGSERIAL   PRIMARY KEY,
  name       TEXT        NOT NULL,
  country    TEXT        NOT NULL,
  hero_image TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_destinations_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_destinations_name ON destinations (name);`,
	},
	{
		Name: "create_table_proposal_audit",
		SQL: `CREATE TABLE IF NOT EXISTS proposal_audit (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  actor_id        TEXT        NOT NULL,
  customer_name   TEXT        NOT NULL,
  destination_id  BIGINT,
  package_id      BIGINT,
  form_snapshot   JSONB       NOT NULL,
  filename        TEXT        NOT NULL,
  generation_type TEXT        NOT NULL CHECK (generation_type IN ('scratch', 'prepopulated')),
  file_size_kb    BIGINT      NOT NULL CHECK (file_size_kb >= 0),
  download_count  INTEGER     NOT NULL DEFAULT 0,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_proposal_audit_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_proposal_audit_created_at ON proposal_audit (created_at);`,
	},
	{
		Name: "create_index_proposal_audit_customer_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_proposal_audit_customer_name ON proposal_audit (customer_name);`,
	},
}

// EnsureMigrated checks for the 'proposal_audit' sentinel table and runs all
// migration steps if it does not exist yet. Steps are idempotent so a partial
// earlier run is safe to repeat.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	var exists bool
	query := "SELECT to_regclass('public.proposal_audit') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component": "database",
			"event":     "db_migration_skip",
			"msg":       "schema already exists, skipping migration",
			"db_host":   dbHost,
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(map[string]any{
				"component":      "database",
				"event":          "db_migration_failed",
				"migration_step": step.Name,
				"error_message":  err.Error(),
				"db_host":        dbHost,
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_done",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logJSON(fields map[string]any) {
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(fields)
	if err != nil {
		log.Printf("migration: %v", fields)
		return
	}
	fmt.Fprintln(os.Stdout, string(b))
}
