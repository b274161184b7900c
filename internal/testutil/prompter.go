package testutil

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/thenoetrevino/roster/internal/prompt"
)

type answerKind int

const (
	answerPick answerKind = iota
	answerType
	answerFail
)

type answer struct {
	kind  answerKind
	value string
	err   error
}

// Asked records one prompt shown to the user
type Asked struct {
	Title  string
	Labels []string // nil for text prompts
}

// ScriptedPrompter answers prompts from a fixed script, in order. Once the
// script is used up every prompt returns io.EOF, like a closed stdin.
type ScriptedPrompter struct {
	answers []answer
	Asked   []Asked
}

var _ prompt.Prompter = (*ScriptedPrompter)(nil)

// NewScriptedPrompter creates an empty script
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// Pick queues the selection of the option with the given label
func (s *ScriptedPrompter) Pick(label string) *ScriptedPrompter {
	s.answers = append(s.answers, answer{kind: answerPick, value: label})
	return s
}

// Type queues a free-text answer
func (s *ScriptedPrompter) Type(text string) *ScriptedPrompter {
	s.answers = append(s.answers, answer{kind: answerType, value: text})
	return s
}

// Fail queues an error for the next prompt, whatever its kind
func (s *ScriptedPrompter) Fail(err error) *ScriptedPrompter {
	s.answers = append(s.answers, answer{kind: answerFail, err: err})
	return s
}

// Remaining reports how many answers have not been consumed
func (s *ScriptedPrompter) Remaining() int {
	return len(s.answers)
}

// Titles returns the title of every prompt shown so far
func (s *ScriptedPrompter) Titles() []string {
	titles := make([]string, len(s.Asked))
	for i, a := range s.Asked {
		titles[i] = a.Title
	}
	return titles
}

func (s *ScriptedPrompter) next() (answer, bool) {
	if len(s.answers) == 0 {
		return answer{}, false
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, true
}

// Select implements prompt.Prompter
func (s *ScriptedPrompter) Select(ctx context.Context, title string, labels []string) (int, error) {
	s.Asked = append(s.Asked, Asked{Title: title, Labels: slices.Clone(labels)})
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	a, ok := s.next()
	if !ok {
		return 0, io.EOF
	}

	switch a.kind {
	case answerFail:
		return 0, a.err
	case answerPick:
		idx := slices.Index(labels, a.value)
		if idx < 0 {
			return 0, fmt.Errorf("scripted pick %q not among %q for %q", a.value, labels, title)
		}
		return idx, nil
	default:
		return 0, fmt.Errorf("scripted text %q given to select prompt %q", a.value, title)
	}
}

// Input implements prompt.Prompter
func (s *ScriptedPrompter) Input(ctx context.Context, title string) (string, error) {
	s.Asked = append(s.Asked, Asked{Title: title})
	if err := ctx.Err(); err != nil {
		return "", err
	}

	a, ok := s.next()
	if !ok {
		return "", io.EOF
	}

	switch a.kind {
	case answerFail:
		return "", a.err
	case answerType:
		return a.value, nil
	default:
		return "", fmt.Errorf("scripted pick %q given to text prompt %q", a.value, title)
	}
}
