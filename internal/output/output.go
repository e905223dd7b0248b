// Package output provides the stdout printer for ggo's primary data:
// branch lists, alias lists, stats tables. Diagnostics go through the log
// package on stderr instead.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output.
type Printer struct {
	w io.Writer
}

// New creates a Printer that writes to w unchanged.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewTerminal creates a Printer for f that downsamples ANSI styling to the
// colour profile detected from f and environ. Styling is stripped when f is
// not a terminal, so piped output stays plain text.
func NewTerminal(f *os.File, environ []string) *Printer {
	return &Printer{w: colorprofile.NewWriter(f, environ)}
}

// WithPrinter attaches p to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a terminal Printer on os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return NewTerminal(os.Stdout, os.Environ())
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes output followed by a newline.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the destination writer, for encoders that stream into it.
func (p *Printer) Writer() io.Writer {
	return p.w
}
