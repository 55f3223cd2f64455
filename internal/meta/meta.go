package meta

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/sqlrite/internal/command"
	"github.com/RichardKnop/sqlrite/internal/repl"
)

var (
	ErrUnknownCommand = errors.New("unknown command or invalid arguments")
	ErrMissingTarget  = errors.New("missing database target")
)

const usage = `Special commands:
  .exit             Exit this program
  .help             Show this message
  .open FILENAME    Close the current database and open FILENAME
                    (also postgres://... or minisql://host:port)

Statements end with ';' and may span several lines:
  create table, insert, select, update, delete`

// Switcher replaces the active database.
type Switcher interface {
	Switch(ctx context.Context, target string) (string, error)
}

type Handler struct {
	databases Switcher
	logger    *zap.Logger
}

func New(logger *zap.Logger, databases Switcher) *Handler {
	return &Handler{
		databases: databases,
		logger:    logger,
	}
}

func (h *Handler) HandleMeta(ctx context.Context, aCommand command.MetaCommand, session repl.Controller) (string, error) {
	switch aCommand.Kind {
	case command.Exit:
		session.Terminate()
		return "Goodbye!", nil
	case command.Help:
		return usage, nil
	case command.Open:
		return h.open(ctx, aCommand.Raw)
	default:
		return "", fmt.Errorf("%w. Enter '.help'", ErrUnknownCommand)
	}
}

func (h *Handler) open(ctx context.Context, raw string) (string, error) {
	target := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), command.Open.String()))
	target = strings.TrimSuffix(target, command.StatementTerminator)
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("%w: usage '.open FILENAME'", ErrMissingTarget)
	}

	h.logger.Debug("opening database", zap.String("target", target))

	name, err := h.databases.Switch(ctx, target)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to %s.", name), nil
}
