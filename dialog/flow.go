package dialog

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/logger"
)

// maxRoutes bounds how many router nodes may run between two prompts.
const maxRoutes = 64

type State[S any] interface {
	Clone() S
}

// Step is a node. Enter runs on arrival and may move on at once by returning
// the next node; routers only have Enter. Nodes that wait for the user have
// Prompt, and Answer unless they are terminal.
type Step[S any] struct {
	Enter  func(s *S) string
	Prompt func(s *S) Prompt
	Answer func(s *S, in Input) (string, error)
}

type Frame[S any] struct {
	Node  string `json:"node"`
	State S      `json:"state"`
}

type Session[S any] struct {
	Node    string     `json:"node"`
	History []Frame[S] `json:"history"`
	State   S          `json:"state"`
}

type Flow[S State[S]] struct {
	Name  string
	Start string
	Nodes []string
	Steps map[string]Step[S]
}

// Begin places a fresh session on the start node and runs its routers.
func (f *Flow[S]) Begin(sess *Session[S], state S) error {
	sess.History = nil
	sess.State = state
	return f.Jump(sess, f.Start)
}

// Jump moves to the node without recording history.
func (f *Flow[S]) Jump(sess *Session[S], node string) error {
	sess.Node = node
	return f.settle(sess)
}

func (f *Flow[S]) step(node string) (Step[S], error) {
	step, ok := f.Steps[node]
	if !ok {
		return Step[S]{}, fmt.Errorf("%s: %w '%s'", f.Name, ErrUnknownNode, node)
	}
	return step, nil
}

func (f *Flow[S]) settle(sess *Session[S]) error {
	flowLogger := logger.NewLogger(f.Name)
	for i := 0; i < maxRoutes; i++ {
		step, err := f.step(sess.Node)
		if err != nil {
			return err
		}
		if step.Enter == nil {
			return nil
		}
		next := step.Enter(&sess.State)
		if next == "" || next == sess.Node {
			return nil
		}
		flowLogger.Debug().Str("from", sess.Node).Str("to", next).Msg("Routed")
		sess.Node = next
	}
	return fmt.Errorf("%s: %w at '%s'", f.Name, ErrRoutingLoop, sess.Node)
}

func (f *Flow[S]) Prompt(sess *Session[S]) (Prompt, error) {
	step, err := f.step(sess.Node)
	if err != nil {
		return Prompt{}, err
	}
	if step.Prompt == nil {
		return Prompt{}, fmt.Errorf("%s: %w '%s'", f.Name, ErrNotInteractive, sess.Node)
	}
	prompt := step.Prompt(&sess.State)
	prompt.Node = sess.Node
	return prompt, nil
}

// Answer applies the input to the current node. A rejected answer leaves the
// session untouched; an accepted one is recorded so Back can undo it.
func (f *Flow[S]) Answer(sess *Session[S], in Input) error {
	step, err := f.step(sess.Node)
	if err != nil {
		return err
	}
	if step.Answer == nil {
		return ErrFinished
	}

	frame := Frame[S]{Node: sess.Node, State: sess.State.Clone()}
	next, err := step.Answer(&sess.State, in)
	if err != nil {
		sess.State = frame.State
		return err
	}

	sess.History = append(sess.History, frame)
	sess.Node = next
	flowLogger := logger.NewLogger(f.Name)
	flowLogger.Debug().Str("from", frame.Node).Str("to", next).Msg("Answered")
	if err := f.settle(sess); err != nil {
		f.Back(sess)
		return err
	}
	return nil
}

// Back restores the node and state in force before the last accepted answer.
// With no history it does nothing.
func (f *Flow[S]) Back(sess *Session[S]) bool {
	if len(sess.History) == 0 {
		return false
	}
	last := sess.History[len(sess.History)-1]
	sess.History = sess.History[:len(sess.History)-1]
	sess.Node = last.Node
	sess.State = last.State
	return true
}

// Validate checks that the closed list of nodes and the step table agree.
func (f *Flow[S]) Validate() error {
	for _, node := range f.Nodes {
		step, ok := f.Steps[node]
		if !ok {
			return fmt.Errorf("%s: node '%s' has no step", f.Name, node)
		}
		if step.Enter == nil && step.Prompt == nil {
			return fmt.Errorf("%s: node '%s' neither routes nor prompts", f.Name, node)
		}
		if step.Answer != nil && step.Prompt == nil {
			return fmt.Errorf("%s: node '%s' takes input without a prompt", f.Name, node)
		}
	}
	if len(f.Steps) != len(f.Nodes) {
		return fmt.Errorf("%s: %d steps for %d nodes", f.Name, len(f.Steps), len(f.Nodes))
	}
	if _, ok := f.Steps[f.Start]; !ok {
		return fmt.Errorf("%s: start node '%s' has no step", f.Name, f.Start)
	}
	return nil
}
