// Package output provides the semantic console printer for awshell. It is
// the single place command handlers write user-facing text, so tests can
// redirect everything with one writer swap.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Printer writes semantically styled text to a writer. Styling degrades to
// plain text automatically when the destination is not a color terminal.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	reader *bufio.Reader
	styled bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriter redirects printer output, typically to a buffer in tests.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) { p.writer = w }
}

// WithReader sets the input source used by Ask. Default is os.Stdin.
func WithReader(r io.Reader) Option {
	return func(p *Printer) { p.reader = bufio.NewReader(r) }
}

// PlainText disables styling regardless of terminal detection.
func PlainText() Option {
	return func(p *Printer) { p.styled = false }
}

// NewPrinter creates a printer writing to stdout with auto-detected styling.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		reader: bufio.NewReader(os.Stdin),
		styled: SupportsColor(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

func (p *Printer) write(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprint(p.writer, text)
}

// Println outputs a plain line.
func (p *Printer) Println(text string) { p.write(text + "\n") }

// Printf outputs formatted plain text.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.write(fmt.Sprintf(format, args...))
}

// Info outputs an informational line.
func (p *Printer) Info(text string) { p.write(p.render(infoStyle, text) + "\n") }

// Success outputs a success line.
func (p *Printer) Success(text string) { p.write(p.render(successStyle, text) + "\n") }

// Warning outputs a warning line.
func (p *Printer) Warning(text string) { p.write(p.render(warningStyle, text) + "\n") }

// Errorf outputs an error line with the standard "Error:" prefix.
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.write(p.render(errorStyle, "Error:") + " " + fmt.Sprintf(format, args...) + "\n")
}

// Dim outputs a muted line.
func (p *Printer) Dim(text string) { p.write(p.render(dimStyle, text) + "\n") }

// Bold outputs emphasized text without a trailing newline.
func (p *Printer) Bold(text string) { p.write(p.render(boldStyle, text)) }

// Writer exposes the underlying writer so tables can render through the
// same destination.
func (p *Printer) Writer() io.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer
}

// Ask prints a prompt and reads one trimmed line from the printer's input.
func (p *Printer) Ask(prompt string) (string, error) {
	p.write(p.render(warningStyle, prompt) + " ")
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
