// Package ui asks for command input interactively when it was not given on
// the command line.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/sgaunet/boolco/internal/textutil"
	"github.com/sgaunet/boolco/pkg/api"
)

// ErrPromptCancelled is returned when the user aborts a prompt with Ctrl+C.
var ErrPromptCancelled = errors.New("prompt cancelled")

// Message is the answer to the post prompt.
type Message struct {
	Name    string `survey:"name"`
	Content string `survey:"content"`
}

// Prompter runs survey prompts on the process terminal.
type Prompter struct {
	opts []survey.AskOpt
}

// NewPrompter creates a prompter. opts are passed to every survey call,
// e.g. survey.WithStdio in tests.
func NewPrompter(opts ...survey.AskOpt) *Prompter {
	return &Prompter{opts: opts}
}

// AskMessage asks for the fields of a board message that are still empty.
func (p *Prompter) AskMessage(name, content string) (Message, error) {
	answer := Message{Name: name, Content: content}

	var questions []*survey.Question
	if name == "" {
		questions = append(questions, nameQuestion())
	}
	if content == "" {
		questions = append(questions, contentQuestion())
	}
	if len(questions) == 0 {
		return answer, nil
	}

	if err := survey.Ask(questions, &answer, p.opts...); err != nil {
		return Message{}, wrapPromptError(err)
	}
	return answer, nil
}

// AskLookupName asks for the name to look up hidden names in.
func (p *Prompter) AskLookupName() (string, error) {
	var name string
	q := lookupQuestion()
	if err := survey.AskOne(q.Prompt, &name, append(p.opts, survey.WithValidator(q.Validate))...); err != nil {
		return "", wrapPromptError(err)
	}
	return name, nil
}

func nameQuestion() *survey.Question {
	return &survey.Question{
		Name:   "name",
		Prompt: &survey.Input{Message: "Name:"},
		Validate: survey.ComposeValidators(
			survey.Required,
			maxLength(api.MaxMessageNameLength),
		),
	}
}

func contentQuestion() *survey.Question {
	return &survey.Question{
		Name: "content",
		Prompt: &survey.Multiline{
			Message: "Message:",
			Help:    fmt.Sprintf("up to %d characters, finish with an empty line", api.MaxMessageContentLength),
		},
		Validate: survey.ComposeValidators(
			survey.Required,
			maxLength(api.MaxMessageContentLength),
		),
	}
}

func lookupQuestion() *survey.Question {
	return &survey.Question{
		Name: "name",
		Prompt: &survey.Input{
			Message: "Discord name:",
			Help:    fmt.Sprintf("%d to %d characters", api.MinLookupNameLength, api.MaxLookupNameLength),
		},
		Validate: survey.ComposeValidators(
			survey.Required,
			minLength(api.MinLookupNameLength),
			maxLength(api.MaxLookupNameLength),
		),
	}
}

// minLength and maxLength replace survey's rune-counting validators so the
// prompt agrees with the checks in pkg/api.
func minLength(n int) survey.Validator {
	return func(ans any) error {
		if s, ok := ans.(string); ok && textutil.Length(s) < n {
			return fmt.Errorf("value is too short. Min length is %d", n)
		}
		return nil
	}
}

func maxLength(n int) survey.Validator {
	return func(ans any) error {
		if s, ok := ans.(string); ok && textutil.Length(s) > n {
			return fmt.Errorf("value is too long. Max length is %d", n)
		}
		return nil
	}
}

func wrapPromptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptCancelled
	}
	return fmt.Errorf("failed to read input: %w", err)
}
