// Package term renders terminal output for the harness. Styling degrades to
// plain text when the output is not a terminal or NO_COLOR is set.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color names the ANSI bright colors the harness uses.
type Color string

const (
	Red     Color = "9"
	Green   Color = "10"
	Yellow  Color = "11"
	Blue    Color = "12"
	Magenta Color = "13"
	Cyan    Color = "14"
	Grey    Color = "15"
)

const clearScreen = "\x1b[H\x1b[2J"

// Styler applies text styles for one output sink.
type Styler struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// New creates a Styler for w, enabled only when w is a terminal and NO_COLOR
// is unset.
func New(w io.Writer) *Styler {
	return NewStyler(w, Detect(w, os.Getenv))
}

// NewStyler creates a Styler for w with styling forced on or off.
func NewStyler(w io.Writer, enabled bool) *Styler {
	out := w
	if !enabled {
		// A renderer over a non-terminal writer has no color profile, so
		// borders and tables still render but without escape sequences.
		out = io.Discard
	}
	return &Styler{enabled: enabled, renderer: lipgloss.NewRenderer(out)}
}

// Detect reports whether styled output should be written to w.
func Detect(w io.Writer, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether styles are applied.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// NewStyle returns a lipgloss style bound to this Styler's renderer.
func (s *Styler) NewStyle() lipgloss.Style {
	return s.renderer.NewStyle()
}

func (s *Styler) apply(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s *Styler) Bold(text string) string {
	return s.apply(s.NewStyle().Bold(true), text)
}

func (s *Styler) Underline(text string) string {
	return s.apply(s.NewStyle().Underline(true), text)
}

func (s *Styler) Reverse(text string) string {
	return s.apply(s.NewStyle().Reverse(true), text)
}

// Paint renders text in the foreground color c.
func (s *Styler) Paint(c Color, text string) string {
	return s.apply(s.NewStyle().Foreground(lipgloss.Color(c)), text)
}

// Clear clears the screen. It writes nothing when styling is disabled so
// redirected output stays free of control sequences.
func (s *Styler) Clear(w io.Writer) {
	if !s.enabled {
		return
	}
	fmt.Fprint(w, clearScreen)
}
