package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is an ordered, append-only log of submitted commands backed by a
// plain text file with one entry per line. The file is read once by Load
// and appended to once by Flush.
type Store struct {
	path    string
	entries []string
	flushed int
	loaded  bool
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads previously persisted entries. A missing file is not an error,
// the store simply starts empty.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var loaded []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			loaded = append(loaded, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read history file: %w", err)
	}

	s.entries = append(loaded, s.entries[s.flushed:]...)
	s.flushed = len(loaded)
	s.loaded = true

	return nil
}

// Loaded reports whether Load found and read a history file.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Append records an entry in memory, it is persisted by the next Flush.
func (s *Store) Append(entry string) {
	s.entries = append(s.entries, entry)
}

// Entries returns every known entry, loaded ones first, in submission order.
func (s *Store) Entries() []string {
	return append([]string(nil), s.entries...)
}

// Pending returns entries appended since the last Load or Flush.
func (s *Store) Pending() []string {
	return append([]string(nil), s.entries[s.flushed:]...)
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Flush appends pending entries to the history file, creating the file and
// its directory when needed.
func (s *Store) Flush() error {
	pending := s.entries[s.flushed:]
	if len(pending) == 0 {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create history directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, entry := range pending {
		if _, err := w.WriteString(entry + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write history file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}

	s.flushed = len(s.entries)

	return nil
}
