// Package prompt collects input from the user. Every call blocks the caller
// until the user answers.
package prompt

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when the user cancels a prompt (ctrl+c)
	ErrAborted = errors.New("prompt aborted")

	// ErrNoChoices is returned by SelectOne when the choice list is empty
	ErrNoChoices = errors.New("nothing to choose from")
)

// Prompter renders single-select and free-text prompts
type Prompter interface {
	// Select shows labels and returns the index of the one picked
	Select(ctx context.Context, title string, labels []string) (int, error)

	// Input returns the text typed by the user, unvalidated
	Input(ctx context.Context, title string) (string, error)
}

// Choice is one selectable option with the value it stands for
type Choice[T any] struct {
	Label string
	Value T
}

// NewChoice creates a choice
func NewChoice[T any](label string, value T) Choice[T] {
	return Choice[T]{Label: label, Value: value}
}

// SelectOne shows the labels of choices and returns the value of the one picked
func SelectOne[T any](ctx context.Context, p Prompter, title string, choices []Choice[T]) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, NoChoices(title)
	}

	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.Label
	}

	idx, err := p.Select(ctx, title, labels)
	if err != nil {
		return zero, err
	}
	if idx < 0 || idx >= len(choices) {
		return zero, fmt.Errorf("selection %d out of range for %q", idx, title)
	}
	return choices[idx].Value, nil
}

// NoChoices is the error for a select titled title that has nothing to
// offer. Operations return it before asking anything else.
func NoChoices(title string) error {
	return fmt.Errorf("%s %w", title, ErrNoChoices)
}
