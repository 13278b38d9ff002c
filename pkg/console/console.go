// Package console writes human-readable report lines, styled with lipgloss
// when the destination is a terminal and as plain text otherwise.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pto-track/pipecheck/pkg/logger"
	"golang.org/x/term"
)

var consoleLog = logger.New("console:console")

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Printer writes report lines to a single destination.
type Printer struct {
	w      io.Writer
	styled bool

	header  lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
	bullet  lipgloss.Style
}

// NewPrinter returns a Printer for w. Styling is enabled only when w is a
// terminal, so redirected output stays byte-identical between runs.
func NewPrinter(w io.Writer) *Printer {
	return newPrinter(w, IsTerminal(w))
}

func newPrinter(w io.Writer, styled bool) *Printer {
	consoleLog.Printf("Creating printer: styled=%v", styled)
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		styled:  styled,
		header:  r.NewStyle().Bold(true),
		failure: r.NewStyle().Foreground(ColorError).Bold(true),
		warning: r.NewStyle().Foreground(ColorWarning).Bold(true),
		success: r.NewStyle().Foreground(ColorSuccess),
		bullet:  r.NewStyle().Foreground(ColorMuted),
	}
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

// Section writes a section title such as "WARNINGS:".
// isError selects the error color over the warning color.
func (p *Printer) Section(title string, isError bool) {
	style := p.warning
	if isError {
		style = p.failure
	}
	fmt.Fprintln(p.w, p.render(style, title))
}

// ListItem writes an indented "  - message" entry.
func (p *Printer) ListItem(message string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.render(p.bullet, "-"), message)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Success writes a success line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.w, p.render(p.success, message))
}

// Error writes a fatal error line.
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.w, p.render(p.failure, message))
}

// Warning writes a standalone warning line.
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.w, p.render(p.warning, message))
}

// Info writes an informational line in bold.
func (p *Printer) Info(message string) {
	fmt.Fprintln(p.w, p.render(p.header, message))
}

// FormatErrorMessage prefixes message with an error marker for stderr.
// The marker is colored only when stderr is a terminal.
func FormatErrorMessage(message string) string {
	marker := "✗"
	if IsTerminal(os.Stderr) {
		marker = lipgloss.NewRenderer(os.Stderr).NewStyle().Foreground(ColorError).Bold(true).Render(marker)
	}
	return marker + " " + message
}
