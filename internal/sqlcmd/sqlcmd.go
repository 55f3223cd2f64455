package sqlcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/sqlrite/internal/command"
	"github.com/RichardKnop/sqlrite/internal/store"
)

var ErrUnrecognizedStatement = errors.New("unrecognized statement")

// Databases gives access to whichever backend is currently open.
type Databases interface {
	Active() (store.Backend, error)
}

type Handler struct {
	databases Databases
	logger    *zap.Logger
}

func New(logger *zap.Logger, databases Databases) *Handler {
	return &Handler{
		databases: databases,
		logger:    logger,
	}
}

// HandleSQL runs a data command against the active backend and renders its
// outcome. The raw statement is passed to the backend unmodified.
func (h *Handler) HandleSQL(ctx context.Context, aCommand command.SQLCommand) (string, error) {
	if aCommand.Kind == command.SQLUnknown {
		first, _, _ := strings.Cut(aCommand.Raw, " ")
		return "", fmt.Errorf("%w: '%s'", ErrUnrecognizedStatement, first)
	}

	backend, err := h.databases.Active()
	if err != nil {
		return "", err
	}

	h.logger.Debug("executing statement",
		zap.Stringer("kind", aCommand.Kind),
		zap.String("database", backend.Name()),
	)

	switch aCommand.Kind {
	case command.Select:
		aResult, err := backend.Query(ctx, aCommand.Raw)
		if err != nil {
			return "", err
		}
		return renderRows(aResult), nil
	case command.Insert, command.Update, command.Delete:
		aResult, err := backend.Exec(ctx, aCommand.Raw)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Rows affected: %d", aResult.RowsAffected), nil
	case command.CreateTable:
		aResult, err := backend.Exec(ctx, aCommand.Raw)
		if err != nil {
			return "", err
		}
		if aResult.Message != "" {
			return aResult.Message, nil
		}
		return "Table created successfully", nil
	default:
		return "", fmt.Errorf("unsupported statement kind: %s", aCommand.Kind)
	}
}

func renderRows(aResult *store.Result) string {
	var buf bytes.Buffer
	if len(aResult.Columns) > 0 {
		PrintTable(&buf, aResult.Columns, aResult.Rows)
	}

	switch len(aResult.Rows) {
	case 1:
		buf.WriteString("(1 row)")
	default:
		fmt.Fprintf(&buf, "(%d rows)", len(aResult.Rows))
	}
	return buf.String()
}
