// internal/prompt/prompt.go

// Package prompt is the terminal counterpart of the browser's dialog layer.
// Views receive the Notifier interface rather than printing directly, so
// confirmation flows stay testable and nothing monkey-patches a global.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Notifier is the injectable notification/confirmation service. Confirm
// blocks until the user chooses, mirroring a modal dialog.
type Notifier interface {
	Notify(message string)
	Error(message string)
	Confirm(question string) (bool, error)
}

// Prompter reads interactive input line by line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
}

// New builds a Prompter over the given streams.
func New(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
	}
}

// NewStdio builds a Prompter over the process streams.
func NewStdio() *Prompter {
	return New(os.Stdin, os.Stdout, os.Stderr)
}

// Line prints a label and returns the next trimmed input line. io.EOF when
// input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// LineDefault is Line with a default used for empty input.
func (p *Prompter) LineDefault(label, fallback string) (string, error) {
	value, err := p.Line(fmt.Sprintf("%s [%s]", label, fallback))
	if err != nil {
		return "", err
	}
	if value == "" {
		return fallback, nil
	}
	return value, nil
}

// Password reads a line without echo when stdin is a terminal, falling back
// to a plain read otherwise (tests, pipes).
func (p *Prompter) Password(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.Line(label)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Notify prints an informational message.
func (p *Prompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}

// Error prints an error banner. It is dismissible by nature in a terminal:
// the next render scrolls past it.
func (p *Prompter) Error(message string) {
	fmt.Fprintf(p.errOut, "error: %s\n", message)
}

// Confirm asks a yes/no question, defaulting to no. It is the second step
// of every delete flow: nothing is sent until this returns true.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Line(fmt.Sprintf("%s (y/N)", question))
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
