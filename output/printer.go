// Package output provides console formatting for the explorer
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const separatorWidth = 40

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// Renderable is anything that knows how to print itself
type Renderable interface {
	Render(printer *Printer)
}

// ResolveColors determines whether to use colors based on the flag and environment
func ResolveColors(noColor bool) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// NewPrinterWithWriters creates a printer with custom writers
func NewPrinterWithWriters(out io.Writer, err io.Writer, useColors bool) *Printer {
	return &Printer{
		out:       out,
		err:       err,
		useColors: useColors,
	}
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Prompt prints a message without a trailing newline
func (p *Printer) Prompt(message string) {
	if p.useColors {
		color.New(color.Bold).Fprint(p.out, message)
		return
	}
	fmt.Fprint(p.out, message)
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
	} else {
		fmt.Fprintf(p.out, "\n%s\n", title)
	}
}

// Stat prints a "label: value" line with the label highlighted
func (p *Printer) Stat(label string, value interface{}) {
	if p.useColors {
		fmt.Fprintf(p.out, "%s %v\n", color.New(color.Bold).Sprint(label+":"), value)
		return
	}
	fmt.Fprintf(p.out, "%s: %v\n", label, value)
}

// Separator prints the line that closes a report
func (p *Printer) Separator() {
	fmt.Fprintln(p.out, strings.Repeat("-", separatorWidth))
}
