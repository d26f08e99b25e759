package ops

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"agnoctl/internal/config"
)

// stackTables is the fixed schema the stack expects. Creation order is
// stable so log output stays readable across runs.
var stackTables = []struct {
	Name string
	DDL  string
}{
	{"agno_sessions", `
		CREATE TABLE IF NOT EXISTS agno_sessions (
			id SERIAL PRIMARY KEY,
			session_id TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		);`},
	{"agno_memories", `
		CREATE TABLE IF NOT EXISTS agno_memories (
			id SERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			memory TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		);`},
	{"agno_metrics", `
		CREATE TABLE IF NOT EXISTS agno_metrics (
			id SERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			metric_name TEXT NOT NULL,
			metric_value FLOAT,
			recorded_at TIMESTAMP DEFAULT NOW()
		);`},
	{"agno_knowledge", `
		CREATE TABLE IF NOT EXISTS agno_knowledge (
			id SERIAL PRIMARY KEY,
			topic TEXT NOT NULL,
			content TEXT,
			updated_at TIMESTAMP DEFAULT NOW()
		);`},
	{"agno_evals", `
		CREATE TABLE IF NOT EXISTS agno_evals (
			id SERIAL PRIMARY KEY,
			eval_name TEXT NOT NULL,
			result JSONB,
			run_at TIMESTAMP DEFAULT NOW()
		);`},
}

// dbExecutor is the slice of pgx.Conn the table creation loop needs.
type dbExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// createStackTables creates every stack table, isolating failures per
// table: one bad DDL statement does not stop the remaining creations.
func createStackTables(ctx context.Context, db dbExecutor) (created, failed []string) {
	for _, tbl := range stackTables {
		if _, err := db.Exec(ctx, tbl.DDL); err != nil {
			warn("[db] create %s failed: %v", tbl.Name, err)
			failed = append(failed, tbl.Name)
			continue
		}
		info("[db] created or verified: %s", tbl.Name)
		created = append(created, tbl.Name)
	}
	return created, failed
}

// initDB connects to the stack database and ensures the schema exists.
func initDB(ctx context.Context, cfg config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("connect %s:%d: %w", cfg.Database.Host, cfg.Database.Port, err)
	}
	defer conn.Close(ctx)
	_, failed := createStackTables(ctx, conn)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d tables failed to initialize", len(failed), len(stackTables))
	}
	return nil
}

// listTables returns the public-schema table names of the stack database.
func listTables(ctx context.Context, db config.DB) ([]string, error) {
	conn, err := pgx.Connect(ctx, db.URL())
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)
	rows, err := conn.Query(ctx, `SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// dbShell execs an interactive psql inside the database container.
func dbShell(ctx context.Context, cfg config.Config) error {
	return runCmdInteractive(ctx, "docker", "exec", "-it", cfg.Database.Container,
		"psql", "-U", cfg.Database.User, "-d", cfg.Database.Name)
}
