package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/vitestarter/vitestarter/pkg/types"
)

const (
	successSymbol = "✓"
	failureSymbol = "✗"
)

// Printer writes progress lines to out and failures to errOut
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// NewPrinter creates a printer. FormatAuto is resolved against out.
func NewPrinter(out, errOut io.Writer, format Format) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		format: Resolve(format, out),
	}
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) styled(style, text string) string {
	if p.format != FormatTerminal {
		return text
	}
	return GetStyle(style).Render(text)
}

// Println writes an unstyled line
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Blank writes an empty line
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Banner writes a heading surrounded by blank lines
func (p *Printer) Banner(text string) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.styled("Banner", text))
}

// Step announces a unit of work
func (p *Printer) Step(text string) {
	fmt.Fprintln(p.out, p.styled("Step", text))
}

// Detail writes an indented "label: a, b, c" line
func (p *Printer) Detail(label string, values []string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.styled("Label", label+":"), strings.Join(values, ", "))
}

// Created reports a written file
func (p *Printer) Created(path string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.styled("Label", "Created:"), p.styled("Path", path))
}

// Success writes a line prefixed with a check mark
func (p *Printer) Success(text string) {
	fmt.Fprintf(p.out, "%s %s\n", p.symbol(true), p.styled("Success", text))
}

// Failure writes a line prefixed with a cross to the error stream
func (p *Printer) Failure(text string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.symbol(false), p.styled("Error", text))
}

// Error reports a fatal error on the error stream
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "%s %v\n", p.styled("Error", "Error:"), err)
}

// FeatureSelected echoes a positive selection decision
func (p *Printer) FeatureSelected(f types.Feature) {
	fmt.Fprintf(p.out, "%s %s will be installed\n", p.symbol(true), f.Description)
}

// FeatureSkipped echoes a negative selection decision
func (p *Printer) FeatureSkipped(f types.Feature) {
	fmt.Fprintf(p.out, "%s %s\n", p.symbol(false), p.styled("Muted", f.Description+" will be skipped"))
}

func (p *Printer) symbol(ok bool) string {
	if p.format != FormatTerminal {
		if ok {
			return successSymbol
		}
		return failureSymbol
	}
	if ok {
		return pterm.Success.MessageStyle.Sprint(successSymbol)
	}
	return pterm.Error.MessageStyle.Sprint(failureSymbol)
}
