package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/sqlrite/internal/command"
	"github.com/RichardKnop/sqlrite/internal/history"
)

var ErrInterrupted = errors.New("interrupted")

type State int

const (
	Idle State = iota + 1
	Reading
	Dispatching
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Dispatching:
		return "dispatching"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session owns the input buffer and the history log for the lifetime of
// the shell. It is not safe for concurrent use.
type Session struct {
	reader  LineReader
	meta    MetaHandler
	sql     SQLHandler
	history *history.Store
	printer *Printer
	prompts Prompts
	logger  *zap.Logger

	quiet       bool
	state       State
	buffer      strings.Builder
	terminating bool
	exitErr     error
}

type SessionOption func(*Session)

func WithOutput(out, errOut io.Writer) SessionOption {
	return func(s *Session) {
		s.printer = NewPrinter(out, errOut)
	}
}

func WithPrompts(prompts Prompts) SessionOption {
	return func(s *Session) {
		s.prompts = prompts
	}
}

// WithQuiet suppresses informational notices, for non-interactive input.
func WithQuiet() SessionOption {
	return func(s *Session) {
		s.quiet = true
	}
}

func NewSession(logger *zap.Logger, reader LineReader, meta MetaHandler, sql SQLHandler, aHistory *history.Store, opts ...SessionOption) *Session {
	s := &Session{
		reader:  reader,
		meta:    meta,
		sql:     sql,
		history: aHistory,
		printer: NewPrinter(os.Stdout, os.Stderr),
		prompts: DefaultPrompts(),
		logger:  logger,
		state:   Idle,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) State() State {
	return s.state
}

// Terminate asks the session to stop once the current dispatch returns.
func (s *Session) Terminate() {
	s.terminating = true
}

// LoadHistory reads persisted history and hands it to the line reader for
// recall. A missing or unreadable file only means the session starts
// without history.
func (s *Session) LoadHistory() {
	if err := s.history.Load(); err != nil {
		s.logger.Warn("could not load history", zap.String("path", s.history.Path()), zap.Error(err))
	}
	if !s.history.Loaded() {
		if !s.quiet {
			s.printer.Notice("No previous history.")
		}
		return
	}

	recorder, ok := s.reader.(HistoryRecorder)
	if !ok {
		return
	}
	for _, entry := range s.history.Entries() {
		if err := recorder.AddHistory(entry); err != nil {
			s.logger.Debug("could not seed line reader history", zap.Error(err))
			return
		}
	}
}

// Run reads, classifies and dispatches commands until the user exits,
// input ends or the wait for input is interrupted. History is flushed on
// the way out. Only input failures other than interrupt and end of input
// are returned.
func (s *Session) Run(ctx context.Context) error {
	defer s.flushHistory()

	for s.state != Terminated {
		switch s.state {
		case Idle, Reading:
			s.transition(s.doReadLine(ctx))
		case Dispatching:
			s.transition(s.doDispatch(ctx))
		default:
			panic(fmt.Sprintf("unknown state: %d", s.state))
		}
	}

	return s.exitErr
}

func (s *Session) transition(next State) {
	if next != s.state {
		s.logger.Debug("session state change", zap.Stringer("from", s.state), zap.Stringer("to", next))
	}
	s.state = next
}

func (s *Session) doReadLine(ctx context.Context) State {
	prompt := s.prompts.Primary
	if s.state == Reading {
		prompt = s.prompts.Continuation
	}

	line, err := s.reader.ReadLine(ctx, prompt)
	switch {
	case err == nil:
	case errors.Is(err, ErrInterrupted), ctx.Err() != nil:
		s.buffer.Reset()
		return Terminated
	case errors.Is(err, io.EOF):
		s.buffer.Reset()
		return Terminated
	default:
		s.buffer.Reset()
		s.exitErr = fmt.Errorf("input error: %w", err)
		s.printer.Failure(s.exitErr)
		return Terminated
	}

	// Blank lines do not start a command.
	if s.state == Idle && strings.TrimSpace(line) == "" {
		return Idle
	}

	s.buffer.WriteString(line)
	if command.IsComplete(s.buffer.String()) == command.Incomplete {
		return Reading
	}
	return Dispatching
}

func (s *Session) doDispatch(ctx context.Context) State {
	raw := s.buffer.String()
	s.buffer.Reset()

	// Interrupts only end the wait for input, a running command completes.
	ctx = context.WithoutCancel(ctx)

	aCommand := command.Classify(strings.TrimSpace(raw))
	s.logger.Debug("dispatching command",
		zap.Stringer("type", aCommand.Type),
		zap.String("command", raw),
	)

	var (
		message string
		err     error
	)
	if aCommand.IsMeta() {
		message, err = s.meta.HandleMeta(ctx, aCommand.Meta, s)
	} else {
		message, err = s.sql.HandleSQL(ctx, aCommand.SQL)
	}

	s.record(raw)

	if err != nil {
		s.printer.Failure(err)
	} else {
		s.printer.Success(message)
	}

	if s.terminating {
		return Terminated
	}
	return Idle
}

func (s *Session) record(entry string) {
	s.history.Append(entry)

	recorder, ok := s.reader.(HistoryRecorder)
	if !ok {
		return
	}
	if err := recorder.AddHistory(entry); err != nil {
		s.logger.Debug("could not add line reader history", zap.Error(err))
	}
}

func (s *Session) flushHistory() {
	if err := s.history.Flush(); err != nil {
		s.printer.Failure(fmt.Errorf("could not save history: %w", err))
	}
}
