package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type sqliteBackend struct {
	db   *sql.DB
	name string
}

func openSQLite(ctx context.Context, aTarget Target) (Backend, error) {
	db, err := sql.Open("sqlite", aTarget.DSN)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database, and a shell runs
	// one statement at a time anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteBackend{db: db, name: aTarget.Display}, nil
}

func (b *sqliteBackend) Name() string {
	return b.name
}

func (b *sqliteBackend) Query(ctx context.Context, query string) (*Result, error) {
	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	aResult := &Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		aResult.Rows = append(aResult.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return aResult, nil
}

func (b *sqliteBackend) Exec(ctx context.Context, query string) (*Result, error) {
	res, err := b.db.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	return &Result{RowsAffected: affected}, nil
}

func (b *sqliteBackend) Close() error {
	return b.db.Close()
}
