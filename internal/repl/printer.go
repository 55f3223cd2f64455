package repl

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

const (
	primaryPrompt      = "sqlrite> "
	continuationPrompt = "   ...> "
)

var (
	primaryPromptStyle      = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	continuationPromptStyle = pterm.NewStyle(pterm.FgGray)
	errorStyle              = pterm.NewStyle(pterm.FgRed)
	noticeStyle             = pterm.NewStyle(pterm.FgLightCyan)
	hintStyle               = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

// Prompts shown while waiting for the first line of a command and for each
// continuation line.
type Prompts struct {
	Primary      string
	Continuation string
}

func DefaultPrompts() Prompts {
	return Prompts{
		Primary:      primaryPromptStyle.Sprint(primaryPrompt),
		Continuation: continuationPromptStyle.Sprint(continuationPrompt),
	}
}

func PlainPrompts() Prompts {
	return Prompts{
		Primary:      primaryPrompt,
		Continuation: continuationPrompt,
	}
}

// Printer writes handler results to standard output and failures to
// standard error.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

func (p *Printer) Success(message string) {
	if message == "" {
		return
	}
	fmt.Fprintln(p.out, message)
}

func (p *Printer) Failure(err error) {
	fmt.Fprintln(p.errOut, errorStyle.Sprint("An error occurred: "+err.Error()))
}

func (p *Printer) Notice(message string) {
	fmt.Fprintln(p.out, noticeStyle.Sprint(message))
}

// Banner prints the greeting shown when an interactive shell starts.
func (p *Printer) Banner(name, version, database string) {
	fmt.Fprintf(p.out, "%s - %s\n", hintStyle.Sprint(name), version)
	fmt.Fprintf(p.out, "Enter %s to quit.\n", hintStyle.Sprint(".exit"))
	fmt.Fprintf(p.out, "Enter %s for usage hints.\n", hintStyle.Sprint(".help"))
	if database == "" || database == ":memory:" {
		fmt.Fprintln(p.out, "Connected to a transient in-memory database.")
	} else {
		fmt.Fprintf(p.out, "Connected to %s.\n", database)
	}
	fmt.Fprintf(p.out, "Use %s to reopen on a persistent database.\n", hintStyle.Sprint("'.open FILENAME'"))
}
