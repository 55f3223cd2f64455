package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresBackend struct {
	pool *pgxpool.Pool
	name string
}

func openPostgres(ctx context.Context, aTarget Target) (Backend, error) {
	pool, err := pgxpool.New(ctx, aTarget.DSN)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &postgresBackend{pool: pool, name: aTarget.Display}, nil
}

func (b *postgresBackend) Name() string {
	return b.name
}

func (b *postgresBackend) Query(ctx context.Context, query string) (*Result, error) {
	rows, err := b.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	aResult := &Result{Columns: make([]string, 0, len(fields))}
	for _, field := range fields {
		aResult.Columns = append(aResult.Columns, field.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		aResult.Rows = append(aResult.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return aResult, nil
}

func (b *postgresBackend) Exec(ctx context.Context, query string) (*Result, error) {
	tag, err := b.pool.Exec(ctx, query)
	if err != nil {
		return nil, err
	}

	return &Result{RowsAffected: tag.RowsAffected()}, nil
}

func (b *postgresBackend) Close() error {
	b.pool.Close()
	return nil
}
