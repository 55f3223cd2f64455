package repl

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"

	"github.com/RichardKnop/sqlrite/internal/command"
)

// ReadlineReader provides line editing, recall, completion, bracket
// matching and history hints on an interactive terminal.
type ReadlineReader struct {
	rl      *readline.Instance
	stdin   io.Closer
	painter *linePainter
	close   sync.Once
}

func NewReadlineReader() (*ReadlineReader, error) {
	return newReadlineReader(os.Stdin, &readline.Config{})
}

// newReadlineReader reads from in. Terminal handling left unset in cfg
// falls back to the readline defaults.
func newReadlineReader(in io.Reader, cfg *readline.Config) (*ReadlineReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(command.Keywords()))
	for _, keyword := range command.Keywords() {
		items = append(items, readline.PcItem(keyword))
	}

	// readline never closes the stream it reads from, a pending read only
	// ends when this wrapper is closed.
	stdin := readline.NewCancelableStdin(in)
	painter := newLinePainter()

	cfg.Stdin = stdin
	cfg.InterruptPrompt = "^C"
	cfg.EOFPrompt = ".exit"
	cfg.HistoryLimit = 1000
	cfg.DisableAutoSaveHistory = true
	cfg.HistorySearchFold = true
	cfg.AutoComplete = readline.NewPrefixCompleter(items...)
	cfg.FuncFilterInputRune = filterInput
	cfg.Painter = painter

	rl, err := readline.NewEx(cfg)
	if err != nil {
		stdin.Close()
		return nil, err
	}

	return &ReadlineReader{rl: rl, stdin: stdin, painter: painter}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func (r *ReadlineReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}

	// Closing the instance is the only way to abort a pending read.
	stop := context.AfterFunc(ctx, func() { r.Close() })
	defer stop()

	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case ctx.Err() != nil:
		return "", ErrInterrupted
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", err
	}
	return line, nil
}

// AddHistory makes entry available to recall and history hints.
func (r *ReadlineReader) AddHistory(entry string) error {
	r.painter.Add(entry)
	return r.rl.SaveHistory(entry)
}

func (r *ReadlineReader) Close() error {
	var err error
	r.close.Do(func() {
		r.stdin.Close()
		err = r.rl.Close()
	})
	return err
}
