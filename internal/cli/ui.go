package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UI is the terminal surface the driver renders to. Two implementations
// exist: the plain line-oriented terminal below and the bubbletea bridge in
// internal/tui.
type UI interface {
	// Println writes one line of output
	Println(s string)

	// Prompt shows a label and blocks for one line of input
	Prompt(label string) (string, error)

	// Clear wipes the screen between menus and rounds
	Clear()
}

// StatusSetter is implemented by UIs that can show a persistent status line
type StatusSetter interface {
	SetStatus(status string)
}

// Plain is a line-oriented UI over stdin/stdout, using termenv for screen
// control.
type Plain struct {
	in  *bufio.Reader
	out *termenv.Output
}

// NewPlain creates a plain terminal UI
func NewPlain() *Plain {
	return &Plain{
		in:  bufio.NewReader(os.Stdin),
		out: termenv.NewOutput(os.Stdout),
	}
}

// Println implements UI
func (p *Plain) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Prompt implements UI
func (p *Plain) Prompt(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}

// Clear implements UI
func (p *Plain) Clear() {
	p.out.ClearScreen()
}
