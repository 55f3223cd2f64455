package repl

import (
	"context"

	"github.com/RichardKnop/sqlrite/internal/command"
)

// LineReader reads one physical line of input at a time. It returns
// ErrInterrupted when the user interrupts the wait and io.EOF when input
// ends.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Close() error
}

// HistoryRecorder is implemented by line readers that keep their own recall
// list for line editing.
type HistoryRecorder interface {
	AddHistory(entry string) error
}

// Controller is handed to the meta handler so it can end the session.
type Controller interface {
	Terminate()
}

type MetaHandler interface {
	HandleMeta(ctx context.Context, cmd command.MetaCommand, c Controller) (string, error)
}

type SQLHandler interface {
	HandleSQL(ctx context.Context, cmd command.SQLCommand) (string, error)
}
