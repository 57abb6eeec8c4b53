package dialog

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindYesNo  Kind = "yes_no"
	KindText   Kind = "text"
	KindForm   Kind = "form"
	KindChoice Kind = "choice"
	KindMulti  Kind = "multi"
	KindResult Kind = "result"
	KindError  Kind = "error"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Options  []Option `json:"options,omitempty"`
	Value    string   `json:"value,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

// Prompt is what a node shows while it waits for input. Lines carry the
// diagnostic frames and examples, Question the actual question.
type Prompt struct {
	Node     string   `json:"node"`
	Kind     Kind     `json:"kind"`
	Title    string   `json:"title,omitempty"`
	Lines    []string `json:"lines,omitempty"`
	Question string   `json:"question,omitempty"`
	Fields   []Field  `json:"fields,omitempty"`
	Options  []Option `json:"options,omitempty"`
	Yes      string   `json:"yes,omitempty"`
	No       string   `json:"no,omitempty"`
	Decline  string   `json:"decline,omitempty"`
	Warning  string   `json:"warning,omitempty"`
	Result   string   `json:"result,omitempty"`
}

type Input struct {
	Answer  *bool             `json:"answer,omitempty" yaml:"answer,omitempty"`
	Text    string            `json:"text,omitempty" yaml:"text,omitempty"`
	Decline bool              `json:"decline,omitempty" yaml:"decline,omitempty"`
	Choice  string            `json:"choice,omitempty" yaml:"choice,omitempty"`
	Choices []string          `json:"choices,omitempty" yaml:"choices,omitempty"`
	Fields  map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func Yes() Input {
	answer := true
	return Input{Answer: &answer}
}

func No() Input {
	answer := false
	return Input{Answer: &answer}
}

func Text(text string) Input {
	return Input{Text: text}
}

func Decline() Input {
	return Input{Decline: true}
}

func Choose(values ...string) Input {
	if len(values) == 1 {
		return Input{Choice: values[0]}
	}
	return Input{Choices: values}
}

func Form(fields map[string]string) Input {
	return Input{Fields: fields}
}

// YesNo reads a yes/no answer; anything else is rejected with a warning.
func (in Input) YesNo() (bool, error) {
	if in.Answer == nil {
		return false, Invalid("yes or no expected")
	}
	return *in.Answer, nil
}

func (in Input) Field(name string) string {
	return strings.TrimSpace(in.Fields[name])
}

func (in Input) TrimmedText() string {
	return strings.TrimSpace(in.Text)
}

var (
	ErrFinished       = errors.New("the analysis is finished")
	ErrUnknownNode    = errors.New("unknown node")
	ErrRoutingLoop    = errors.New("routing did not settle")
	ErrNotInteractive = errors.New("node does not take input")
)

// InputError rejects an answer without moving the session; Warning is shown
// to the user as is.
type InputError struct {
	Warning string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Warning
}

func Invalid(warning string) error {
	return &InputError{Warning: warning}
}

func IsInvalid(err error) (*InputError, bool) {
	var inputErr *InputError
	ok := errors.As(err, &inputErr)
	return inputErr, ok
}
