package store

import (
	"context"
	"fmt"

	"github.com/RichardKnop/sqlrite/internal/protocol"
)

// minisqlBackend forwards statements to a minisql server over its JSON
// lines protocol. The server decides what a statement means, so Query and
// Exec send the same request.
type minisqlBackend struct {
	client *protocol.Client
	name   string
}

func openMinisql(ctx context.Context, aTarget Target) (Backend, error) {
	client, err := protocol.NewClient(ctx, aTarget.DSN)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, err
	}

	return &minisqlBackend{client: client, name: aTarget.Display}, nil
}

func (b *minisqlBackend) Name() string {
	return b.name
}

func (b *minisqlBackend) Query(ctx context.Context, query string) (*Result, error) {
	return b.send(ctx, query)
}

func (b *minisqlBackend) Exec(ctx context.Context, query string) (*Result, error) {
	return b.send(ctx, query)
}

func (b *minisqlBackend) send(ctx context.Context, query string) (*Result, error) {
	resp, err := b.client.SendQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Error)
	}

	aResult := &Result{
		Columns:      make([]string, 0, len(resp.Columns)),
		RowsAffected: int64(resp.RowsAffected),
		Message:      resp.Message,
	}
	for _, aColumn := range resp.Columns {
		aResult.Columns = append(aResult.Columns, aColumn.Name)
	}
	for _, aRow := range resp.Rows {
		values := make([]any, 0, len(aRow))
		for _, aValue := range aRow {
			if !aValue.Valid {
				values = append(values, nil)
				continue
			}
			values = append(values, aValue.Value)
		}
		aResult.Rows = append(aResult.Rows, values)
	}

	return aResult, nil
}

func (b *minisqlBackend) Close() error {
	return b.client.Close()
}
