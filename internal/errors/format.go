package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// colorEnabled controls whether ANSI colors are used. It follows the
// terminal detection done by the color package.
var colorEnabled = !color.NoColor

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

// paint returns a color honoring colorEnabled.
func paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if colorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Format returns a formatted error message for terminal display.
func (e *SodaError) Format() string {
	var b strings.Builder

	header := paint(color.FgRed, color.Bold)
	title := paint(color.FgWhite, color.Bold)
	cyan := paint(color.FgCyan)

	// Header line
	b.WriteString("\n")
	if e.Code != "" {
		header.Fprint(&b, "ERROR ")
		title.Fprint(&b, e.Code+": ")
	} else {
		header.Fprint(&b, "ERROR: ")
	}
	b.WriteString(e.Message)
	b.WriteString("\n\n")

	// Detail
	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		paint(color.FgHiBlack).Fprint(&b, "Cause: ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	// Suggestion
	if e.Suggestion != "" {
		b.WriteString("  ")
		cyan.Fprint(&b, "Hint: ")
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	// Example
	if e.Example != "" {
		b.WriteString("  ")
		cyan.Fprint(&b, "Example:")
		b.WriteString("\n")
		for _, line := range strings.Split(e.Example, "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *SodaError) FormatCompact() string {
	var b strings.Builder

	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Wrapped != nil {
		b.WriteString(" (")
		b.WriteString(e.Wrapped.Error())
		b.WriteString(")")
	}

	return b.String()
}

// FormatJSON returns the error as a JSON object.
func (e *SodaError) FormatJSON() string {
	out := struct {
		Code       string   `json:"code,omitempty"`
		Category   Category `json:"category"`
		Message    string   `json:"message"`
		Detail     string   `json:"detail,omitempty"`
		Suggestion string   `json:"suggestion,omitempty"`
		Cause      string   `json:"cause,omitempty"`
	}{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	var current strings.Builder

	for _, word := range words {
		if current.Len()+len(word)+1 > width {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// PrintError prints a formatted error to w. Errors that wrap a SodaError
// print its full form.
func PrintError(w io.Writer, err error) {
	var se *SodaError
	if As(err, &se) {
		fmt.Fprint(w, se.Format())
		return
	}
	fmt.Fprint(w, "\n")
	paint(color.FgRed, color.Bold).Fprint(w, "ERROR:")
	fmt.Fprintf(w, " %s\n\n", err.Error())
}
