package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrNoDatabase = errors.New("no database is open")
	ErrRemote     = errors.New("server error")
)

// Result is a backend-neutral statement outcome. Rows hold nil for NULL.
type Result struct {
	Columns      []string
	Rows         [][]any
	RowsAffected int64
	Message      string
}

type Backend interface {
	Query(ctx context.Context, sql string) (*Result, error)
	Exec(ctx context.Context, sql string) (*Result, error)
	Name() string
	Close() error
}

// Opener opens a backend for a parsed target.
type Opener func(ctx context.Context, logger *zap.Logger, aTarget Target) (Backend, error)

// Open opens whichever backend the target names.
func Open(ctx context.Context, logger *zap.Logger, aTarget Target) (Backend, error) {
	switch aTarget.Driver {
	case SQLite:
		return openSQLite(ctx, aTarget)
	case Postgres:
		return openPostgres(ctx, aTarget)
	case Minisql:
		return openMinisql(ctx, aTarget)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", aTarget.Driver)
	}
}

// Manager owns the active backend. Switching opens the new backend before
// closing the old one so a failed switch leaves the session where it was.
type Manager struct {
	logger *zap.Logger
	open   Opener
	active Backend
	mu     sync.Mutex
}

type ManagerOption func(*Manager)

func WithOpener(open Opener) ManagerOption {
	return func(m *Manager) {
		m.open = open
	}
}

func NewManager(logger *zap.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		logger: logger,
		open:   Open,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Switch makes target the active database and returns its display name.
func (m *Manager) Switch(ctx context.Context, target string) (string, error) {
	aTarget, err := ParseTarget(target)
	if err != nil {
		return "", err
	}

	backend, err := m.open(ctx, m.logger, aTarget)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", aTarget.Display, err)
	}

	m.mu.Lock()
	previous := m.active
	m.active = backend
	m.mu.Unlock()

	m.logger.Info("switched database",
		zap.Stringer("driver", aTarget.Driver),
		zap.String("name", backend.Name()),
	)

	if previous != nil {
		if err := previous.Close(); err != nil {
			m.logger.Warn("error closing previous database", zap.String("name", previous.Name()), zap.Error(err))
		}
	}

	return backend.Name(), nil
}

func (m *Manager) Active() (Backend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return nil, ErrNoDatabase
	}
	return m.active, nil
}

func (m *Manager) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return ""
	}
	return m.active.Name()
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return nil
	}
	err := m.active.Close()
	m.active = nil
	return err
}
