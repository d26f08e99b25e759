package ops

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeExecutor struct {
	failOn map[string]bool // substring of DDL that should fail
	seen   []string
}

func (f *fakeExecutor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.seen = append(f.seen, sql)
	for sub := range f.failOn {
		if strings.Contains(sql, sub) {
			return pgconn.CommandTag{}, errors.New("syntax error")
		}
	}
	return pgconn.CommandTag{}, nil
}

func TestCreateStackTablesAll(t *testing.T) {
	db := &fakeExecutor{}
	created, failed := createStackTables(context.Background(), db)
	want := []string{"agno_sessions", "agno_memories", "agno_metrics", "agno_knowledge", "agno_evals"}
	if !reflect.DeepEqual(created, want) {
		t.Fatalf("created %v, want %v", created, want)
	}
	if len(failed) != 0 {
		t.Fatalf("failed: %v", failed)
	}
	if len(db.seen) != len(stackTables) {
		t.Fatalf("executed %d statements, want %d", len(db.seen), len(stackTables))
	}
}

func TestCreateStackTablesIsolatesFailures(t *testing.T) {
	db := &fakeExecutor{failOn: map[string]bool{"agno_metrics": true}}
	created, failed := createStackTables(context.Background(), db)
	if !reflect.DeepEqual(failed, []string{"agno_metrics"}) {
		t.Fatalf("failed %v", failed)
	}
	// the tables after the failing one are still attempted
	if len(created) != 4 {
		t.Fatalf("created %v", created)
	}
	if created[len(created)-1] != "agno_evals" {
		t.Fatalf("last created: %v", created)
	}
}

func TestStackTableDDLIsIdempotent(t *testing.T) {
	for _, tbl := range stackTables {
		if !strings.Contains(tbl.DDL, "IF NOT EXISTS") {
			t.Fatalf("%s DDL is not idempotent", tbl.Name)
		}
		if !strings.Contains(tbl.DDL, tbl.Name) {
			t.Fatalf("%s DDL does not mention its table name", tbl.Name)
		}
	}
}
