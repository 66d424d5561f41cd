package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ForumApp/user-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx reports a configurable row count for the relation statement
// and records counter updates, so the adjust-only-when-changed rule
// can be checked without a live database.
type fakeTx struct {
	pgx.Tx
	relationAffected int64
	counterUpdates   []string
	committed        bool
	rolledBack       bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	trimmed := strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(trimmed, "INSERT"):
		return pgconn.NewCommandTag(fmt.Sprintf("INSERT 0 %d", t.relationAffected)), nil
	case strings.HasPrefix(trimmed, "DELETE"):
		return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", t.relationAffected)), nil
	default:
		t.counterUpdates = append(t.counterUpdates, trimmed)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeQuerier struct {
	Querier
	tx *fakeTx
}

func (q *fakeQuerier) Begin(ctx context.Context) (pgx.Tx, error) {
	return q.tx, nil
}

func testRelation() model.Follower {
	return model.Follower{
		UserID: uuid.New(),
		FollowerID: uuid.New(),
	}
}

func TestFollowerCreateIncrementsCounter(t *testing.T) {
	tx := &fakeTx{relationAffected: 1}
	repo := newFollowerRepo(&fakeQuerier{tx: tx})

	if err := repo.Create(context.Background(), testRelation()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(tx.counterUpdates) != 1 {
		t.Fatalf("counter updated %d times, want 1", len(tx.counterUpdates))
	}
	if !strings.Contains(tx.counterUpdates[0], "followers + 1") {
		t.Errorf("unexpected counter update: %q", tx.counterUpdates[0])
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
}

func TestFollowerCreateDuplicateKeepsCounter(t *testing.T) {
	tx := &fakeTx{relationAffected: 0}
	repo := newFollowerRepo(&fakeQuerier{tx: tx})

	if err := repo.Create(context.Background(), testRelation()); err != nil {
		t.Fatalf("Create of existing relation returned error: %v", err)
	}

	if len(tx.counterUpdates) != 0 {
		t.Fatalf("counter updated %d times for a duplicate relation, want 0", len(tx.counterUpdates))
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
}

func TestFollowerDeleteDecrementsCounter(t *testing.T) {
	tx := &fakeTx{relationAffected: 1}
	repo := newFollowerRepo(&fakeQuerier{tx: tx})

	if err := repo.Delete(context.Background(), testRelation()); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if len(tx.counterUpdates) != 1 {
		t.Fatalf("counter updated %d times, want 1", len(tx.counterUpdates))
	}
	if !strings.Contains(tx.counterUpdates[0], "followers - 1") {
		t.Errorf("unexpected counter update: %q", tx.counterUpdates[0])
	}
}

func TestFollowerDeleteMissingRelationKeepsCounter(t *testing.T) {
	tx := &fakeTx{relationAffected: 0}
	repo := newFollowerRepo(&fakeQuerier{tx: tx})

	if err := repo.Delete(context.Background(), testRelation()); err != nil {
		t.Fatalf("Delete of missing relation returned error: %v", err)
	}

	if len(tx.counterUpdates) != 0 {
		t.Fatalf("counter updated %d times for a missing relation, want 0", len(tx.counterUpdates))
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
}
