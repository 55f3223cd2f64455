package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type scanResult struct {
	line string
	err  error
}

// ScannerReader reads lines from a plain stream such as a pipe. It is used
// when standard input is not a terminal. Scanning happens on a background
// goroutine so a cancelled context can interrupt the wait.
type ScannerReader struct {
	in      io.Reader
	out     io.Writer
	results chan scanResult
	done    chan struct{}
	start   sync.Once
	stop    sync.Once
	wg      sync.WaitGroup
}

// NewScannerReader returns a reader over in. Prompts are written to out,
// pass io.Discard to suppress them.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		in:      in,
		out:     out,
		results: make(chan scanResult),
		done:    make(chan struct{}),
	}
}

func (r *ScannerReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}

	fmt.Fprint(r.out, prompt)
	r.start.Do(r.scan)

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case <-r.done:
		return "", io.EOF
	case res, ok := <-r.results:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (r *ScannerReader) scan() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(r.results)

		scanner := bufio.NewScanner(r.in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case r.results <- scanResult{line: scanner.Text()}:
			case <-r.done:
				return
			}
		}

		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case r.results <- scanResult{err: err}:
		case <-r.done:
		}
	}()
}

// Close stops the background scanner. It does not close the underlying
// reader, a scanner blocked in a read returns once that read does.
func (r *ScannerReader) Close() error {
	r.stop.Do(func() {
		close(r.done)
	})
	return nil
}

// Wait blocks until the background scanner has exited.
func (r *ScannerReader) Wait() {
	r.wg.Wait()
}
