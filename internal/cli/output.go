package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/cli/styles"
)

// Output writes results to stdout and failures to stderr
type Output struct {
	w    io.Writer
	errW io.Writer
}

// NewOutput creates an Output writing results to w and failures to errW
func NewOutput(w, errW io.Writer) *Output {
	return &Output{w: w, errW: errW}
}

// Success prints a "✅ ..." line
func (o *Output) Success(format string, args ...any) {
	writeLine(o.w, styles.SuccessStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Failure prints the generic "❌ An error occurred: ..." line every failed
// operation is reported with
func (o *Output) Failure(err error) {
	writeLine(o.errW, styles.ErrorStyle.Render("❌ An error occurred: "+err.Error()))
}

// Error prints a "❌ ..." line with a custom message
func (o *Output) Error(format string, args ...any) {
	writeLine(o.errW, styles.ErrorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Info prints a plain line
func (o *Output) Info(format string, args ...any) {
	writeLine(o.w, fmt.Sprintf(format, args...))
}

func writeLine(w io.Writer, line string) {
	if _, err := fmt.Fprintln(w, line); err != nil {
		slog.Error("error writing output", "error", err)
	}
}
