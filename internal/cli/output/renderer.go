// Package output renders command results as styled text or JSON.
// Text mode is for operators at a terminal; json mode is for scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

// Mode selects the rendering format.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used by text mode.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. ModeAuto resolves to text.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: defaultStyles()}
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Styled reports whether styling should be applied: only for text output
// going to a terminal.
func (r *Renderer) Styled() bool {
	if r.EffectiveMode() != ModeText {
		return false
	}
	f, ok := r.out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (r *Renderer) render(style lipgloss.Style, text string) string {
	if r.Styled() {
		return style.Render(text)
	}
	return text
}

// Header prints a section heading.
func (r *Renderer) Header(text string) {
	fmt.Fprintln(r.out, r.render(r.styles.Header, text))
}

// Line prints one plain line.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.out, r.render(r.styles.Success, fmt.Sprintf(format, args...)))
}

// Warning prints a warning line to stderr.
func (r *Renderer) Warning(format string, args ...any) {
	fmt.Fprintln(r.errOut, r.render(r.styles.Warning, fmt.Sprintf(format, args...)))
}

// Error prints an error line to stderr.
func (r *Renderer) Error(format string, args ...any) {
	fmt.Fprintln(r.errOut, r.render(r.styles.Error, fmt.Sprintf(format, args...)))
}

// Muted prints a de-emphasized line.
func (r *Renderer) Muted(format string, args ...any) {
	fmt.Fprintln(r.out, r.render(r.styles.Muted, fmt.Sprintf(format, args...)))
}

// Table prints a bordered table with the given header and rows.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// JSON prints v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
