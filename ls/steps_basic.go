package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
)

const basicFailure = "No fue posible generar una estructura lógica con estos parámetros."

var senseOptions = []dialog.Option{
	{Value: "see", Label: "Vista"},
	{Value: "hear", Label: "Oído"},
	{Value: "smell", Label: "Olfato"},
	{Value: "taste", Label: "Gusto"},
	{Value: "feel", Label: "Tacto"},
}

// Structures built from the class templates.
func (e *Engine) basicSteps() map[string]dialog.Step[State] {
	perception := e.lex.Classes.Perception
	causatives := []string{AktCausativeState, AktCausativeAchievement, AktCausativeAccomplishment, AktCausativeProcess, AktCausativeSemelfactive}
	plain := []string{AktState, AktAchievement, AktAccomplishment, AktProcess, AktSemelfactive}

	template := func(s *State) string {
		op := e.op(s)
		body, ok := NonCausative(s.X, s.Y, s.Locus, s.Pred, op)
		if s.dynamic() {
			body, ok = ActivityOf(s.X, s.Y, s.Locus, s.Pred, op)
		}
		if !ok {
			return s.fail(basicFailure)
		}
		return s.build(New(body))
	}

	return map[string]dialog.Step[State]{
		NodeBasic: {
			Enter: func(s *State) string {
				switch {
				case isActiveAccomplishment(s.Akt):
					return NodeActiveAccomplishment
				case s.dynamic() && s.causative():
					if lexicon.IsEmpty(s.Y) {
						return s.fail(basicFailure)
					}
					return NodeCausativeActivity
				case oneOf(s.Akt, causatives...):
					body, ok := Causative(s.X, s.Y, s.Pred, e.op(s))
					if !ok {
						return s.fail(basicFailure)
					}
					return s.build(New(body))
				case s.dynamic():
					if !lexicon.IsEmpty(s.Y) && lexicon.IsEmpty(s.Locus) {
						return NodePerception
					}
					return template(s)
				case oneOf(s.Akt, plain...):
					if s.Akt != AktState && !lexicon.IsEmpty(s.Y) {
						return NodePerception
					}
					return template(s)
				}
				return s.fail(basicFailure)
			},
		},

		NodePerception: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s indica un tipo de percepción sensorial?", lexicon.Capitalize(s.Pred)))
			},
			Answer: decide(func(s *State, yes bool) string {
				if !yes {
					return NodeBasicFinal
				}
				if sense, ok := s.lookup(perception); ok {
					s.Pred = sense
					return NodeBasicFinal
				}
				return NodeSense
			}),
		},

		NodeSense: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindChoice,
					Question: "Indica el sentido involucrado en el acto de percepción:",
					Options:  senseOptions,
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				for _, opt := range senseOptions {
					if opt.Value == in.Choice {
						s.Pred = opt.Value
						return NodeBasicFinal, nil
					}
				}
				return "", dialog.Invalid("Por favor, selecciona una opción antes de continuar.")
			},
		},

		NodeBasicFinal: {
			Enter: template,
		},

		NodeCausativeActivity: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt(fmt.Sprintf("Escribe en infinitivo la actividad realizada por %s (ej.: comer):", s.Y))
			},
			Answer: readInfinitive(func(s *State) string {
				body, ok := CausativeActivity(s.X, s.Y, s.Pred, e.op(s))
				if !ok {
					return s.fail(basicFailure)
				}
				return s.build(New(body))
			}),
		},
	}
}
