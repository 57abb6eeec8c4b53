package fsm

import (
	"errors"
	"fmt"
)

type MachineRule[T any] struct {
	Dst  string
	Cond Condition[T]
}

// Machine maps a state to its outgoing rules. Rules are tried in order and the
// first satisfied one decides the destination.
type Machine[T any] map[string][]MachineRule[T]

func (fsm Machine[T]) Input(value T, currentState string) string {
	rules, isOk := fsm[currentState]
	if !isOk {
		errTxt := fmt.Sprintf("Wrong rule: there is no transitions from '%s' state", currentState)
		panic(errors.New(errTxt))
	}

	for _, rule := range rules {
		if rule.Cond(value) {
			return rule.Dst
		}
	}

	return currentState
}

// States lists every state with outgoing rules.
func (fsm Machine[T]) States() []string {
	states := make([]string, 0, len(fsm))
	for s := range fsm {
		states = append(states, s)
	}
	return states
}
