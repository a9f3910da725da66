// Package presenter prints the user-facing success and failure markers of the
// CLI, with colour when the terminal supports it.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/skillmaker/internal/branding"
	"github.com/fatih/color"
)

// ColorMode selects whether output is coloured.
type ColorMode int

const (
	// ColorAuto lets fatih/color detect terminal support.
	ColorAuto ColorMode = iota
	// ColorAlways forces colour.
	ColorAlways
	// ColorNever disables colour.
	ColorNever
)

// Presenter writes formatted messages to an output and an error stream.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Presenter on stdout/stderr with the colour mode taken from
// the environment.
func New() *Presenter {
	return NewWithOptions(os.Stdout, os.Stderr, DetectColorMode())
}

// NewWithOptions returns a Presenter on the given writers.
func NewWithOptions(out, errOut io.Writer, mode ColorMode) *Presenter {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}
	return &Presenter{out: out, errOut: errOut}
}

// DetectColorMode honours NO_COLOR and <PREFIX>_COLOR (always|never|auto).
func DetectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}
	switch os.Getenv(branding.EnvVar("COLOR")) {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Out returns the standard output writer.
func (p *Presenter) Out() io.Writer { return p.out }

// Success prints a green check line.
func (p *Presenter) Success(format string, args ...any) {
	color.New(color.FgGreen, color.Bold).Fprintf(p.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Failure prints a red cross line to the output stream.
func (p *Presenter) Failure(format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprintf(p.out, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Info prints a plain line.
func (p *Presenter) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warning prints a yellow line to the error stream.
func (p *Presenter) Warning(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(p.errOut, "[WARN] %s\n", fmt.Sprintf(format, args...))
}

// Error prints err to the error stream.
func (p *Presenter) Error(err error) {
	if err == nil {
		return
	}
	color.New(color.FgRed, color.Bold).Fprintf(p.errOut, "[ERROR] %v\n", err)
}

// Check prints one indented principle result.
func (p *Presenter) Check(name string, passed bool, detail string) {
	mark := color.New(color.FgGreen).Sprint("✓")
	if !passed {
		mark = color.New(color.FgRed).Sprint("✗")
	}
	if detail != "" {
		fmt.Fprintf(p.out, "  %s %s (%s)\n", mark, name, detail)
		return
	}
	fmt.Fprintf(p.out, "  %s %s\n", mark, name)
}
