package repl

import (
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

var (
	bracketStyle     = pterm.NewStyle(pterm.FgBlue, pterm.Bold)
	historyHintStyle = pterm.NewStyle(pterm.Bold)
)

var bracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	')': '(',
	']': '[',
	'}': '{',
}

// linePainter decorates the line being edited. It highlights the bracket
// matching the one next to the cursor and, with the cursor at the end of
// the line, hints the rest of the most recent history entry that starts
// with the line.
type linePainter struct {
	highlight func(a ...any) string
	hint      func(a ...any) string

	mu      sync.RWMutex
	history []string
}

func newLinePainter() *linePainter {
	return &linePainter{
		highlight: bracketStyle.Sprint,
		hint:      historyHintStyle.Sprint,
	}
}

func (p *linePainter) Add(entry string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.history = append(p.history, entry)
}

// Paint is called by readline on every refresh. A line ending in a newline
// is being submitted and is left as typed.
func (p *linePainter) Paint(line []rune, pos int) []rune {
	if len(line) == 0 || line[len(line)-1] == '\n' {
		return line
	}

	painted := line
	if match, ok := matchingBracket(line, pos); ok {
		painted = make([]rune, 0, len(line)+16)
		painted = append(painted, line[:match]...)
		painted = append(painted, []rune(p.highlight(string(line[match])))...)
		painted = append(painted, line[match+1:]...)
	}

	if pos != len(line) {
		return painted
	}
	hint := p.historyHint(string(line))
	if hint == "" {
		return painted
	}

	// Print the hint after the cursor and move the cursor back over it.
	width := readline.Runes{}.WidthAll([]rune(hint))
	painted = append(painted, []rune(p.hint(hint))...)
	painted = append(painted, []rune(strings.Repeat("\b", width))...)
	return painted
}

func (p *linePainter) historyHint(line string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := len(p.history) - 1; i >= 0; i-- {
		entry := p.history[i]
		if len(entry) > len(line) && strings.HasPrefix(entry, line) {
			return entry[len(line):]
		}
	}
	return ""
}

// matchingBracket returns the index of the bracket matching the one just
// before the cursor, or under it when there is none before.
func matchingBracket(line []rune, pos int) (int, bool) {
	at := -1
	switch {
	case pos > 0 && pos <= len(line) && isBracket(line[pos-1]):
		at = pos - 1
	case pos >= 0 && pos < len(line) && isBracket(line[pos]):
		at = pos
	default:
		return 0, false
	}

	var (
		open  = line[at]
		pair  = bracketPairs[open]
		step  = 1
		depth = 0
	)
	if strings.ContainsRune(")]}", open) {
		step = -1
	}

	for i := at; i >= 0 && i < len(line); i += step {
		switch line[i] {
		case open:
			depth++
		case pair:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isBracket(r rune) bool {
	_, ok := bracketPairs[r]
	return ok
}
