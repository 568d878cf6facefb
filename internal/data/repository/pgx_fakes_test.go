package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"kikao-backend/pkg/database"
)

// Scripted stand-ins for the pgx surface the repositories touch. Both embed
// the real interface, so a call to anything unscripted panics and fails the
// test immediately.

type fakeRow struct {
	scan func(dest ...any) error
}

func (r *fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

func errRow(err error) pgx.Row {
	return &fakeRow{scan: func(...any) error { return err }}
}

type execCall struct {
	sql  string
	args []any
}

type fakeTx struct {
	pgx.Tx

	execFn     func(sql string, args []any) (pgconn.CommandTag, error)
	queryRowFn func(sql string, args []any) pgx.Row

	execs      []execCall
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, execCall{sql: sql, args: args})
	return t.execFn(sql, args)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.queryRowFn(sql, args)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	// The deferred rollback after a commit is a no-op, as with a real tx.
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	database.PgxIface

	tx         *fakeTx
	queryRowFn func(sql string, args []any) pgx.Row
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return d.tx, nil }

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.queryRowFn(sql, args)
}
