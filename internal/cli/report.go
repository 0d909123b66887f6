package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordcheck/pkg/session"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#88C0D0"))
	mistakeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF616A"))
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3BE8C"))
	plainStyle   = lipgloss.NewStyle()
)

// Renderer writes reports, optionally colored.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Report writes every mistake followed by its suggestions, or a single
// line saying the text is clean.
func (r *Renderer) Report(report session.Report) error {
	if report.Clean() {
		_, err := fmt.Fprintln(r.w, r.style(plainStyle, "No spelling mistakes found."))
		return err
	}

	var b strings.Builder
	b.WriteString(r.style(headerStyle, "Spelling mistakes found:"))
	b.WriteString("\n\n")
	for _, e := range report.Entries {
		b.WriteString(r.style(mistakeStyle, fmt.Sprintf("Line %d: %s", e.Line, e.Word)))
		b.WriteString("\n")
		suggestions := "None"
		if len(e.Suggestions) > 0 {
			suggestions = strings.Join(e.Suggestions, ", ")
		}
		b.WriteString(r.style(suggestStyle, fmt.Sprintf("Suggestions for '%s': %s", e.Word, suggestions)))
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}
