package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/roster/internal/config/colors"
)

// Huh renders each prompt as a one-field huh form
type Huh struct {
	theme      huh.Theme
	accessible bool
	input      *lineReader
	output     io.Writer
}

// HuhOption is a functional option for configuring a Huh prompter
type HuhOption func(*Huh)

// WithInput reads answers from r instead of stdin
func WithInput(r io.Reader) HuhOption {
	return func(h *Huh) {
		if r != nil {
			h.input = newLineReader(r)
		}
	}
}

// WithOutput writes prompts to w instead of stdout
func WithOutput(w io.Writer) HuhOption {
	return func(h *Huh) {
		h.output = w
	}
}

// NewHuh creates a Prompter. Accessible mode drops the full-screen widgets
// and reads plain lines, which also works when stdin is not a terminal.
func NewHuh(colorScheme colors.ColorScheme, accessible bool, opts ...HuhOption) *Huh {
	h := &Huh{
		theme:      NewTheme(colorScheme),
		accessible: accessible,
	}
	for _, opt := range opts {
		opt(h)
	}

	// Line mode reads stdin directly, so wrap it to notice end of input.
	// The full-screen mode needs the real terminal file.
	if h.input == nil && accessible {
		h.input = newLineReader(os.Stdin)
	}
	return h
}

var _ Prompter = (*Huh)(nil)

// Select implements Prompter
func (h *Huh) Select(ctx context.Context, title string, labels []string) (int, error) {
	options := make([]huh.Option[int], len(labels))
	for i, label := range labels {
		options[i] = huh.NewOption(label, i)
	}

	var picked int
	field := huh.NewSelect[int]().
		Key("choice").
		Title(title).
		Options(options...).
		Value(&picked)

	if err := h.run(ctx, field); err != nil {
		return 0, err
	}
	return picked, nil
}

// Input implements Prompter
func (h *Huh) Input(ctx context.Context, title string) (string, error) {
	var value string
	field := huh.NewInput().
		Key("input").
		Title(title).
		Value(&value)

	if err := h.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (h *Huh) run(ctx context.Context, field huh.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithShowHelp(false).
		WithAccessible(h.accessible)
	if h.input != nil {
		h.input.begin()
		form = form.WithInput(h.input)
	}
	if h.output != nil {
		form = form.WithOutput(h.output)
	}

	err := form.RunWithContext(ctx)
	return runError(ctx, err, h.input != nil && h.input.exhausted())
}

// runError maps the outcome of a form run. Line mode reports end of input
// as a successful run with a zero answer, so exhaustion of the reader is
// checked before the answer is trusted.
func runError(ctx context.Context, err error, exhausted bool) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	if exhausted {
		return io.EOF
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// lineReader hands out at most one line per Read. huh scans every line mode
// prompt with a fresh buffered scanner, so anything it reads past the first
// newline would be lost to the next prompt.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
	eof     bool
	served  int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			return 0, err
		}
		l.pending = line
	}

	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	l.served += n
	return n, nil
}

// begin starts a new prompt
func (l *lineReader) begin() {
	l.served = 0
}

// exhausted reports whether input ended before the current prompt got any
// of it. A last line without a newline still counts as an answer.
func (l *lineReader) exhausted() bool {
	return l.eof && l.served == 0
}
