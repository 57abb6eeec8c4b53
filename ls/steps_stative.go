package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
)

// feeling is pred' (x, [sensation']) with the sensation as a bare constant.
func feeling(pred, experiencer, sensation string) Expr {
	return Apply(pred, Arg(experiencer), Pred(lexicon.Predicate(sensation)))
}

// States described with estar or ser and caused sensations.
func (e *Engine) stativeSteps() map[string]dialog.Step[State] {
	return map[string]dialog.Step[State]{
		NodeStative: {
			Enter: func(s *State) string {
				switch {
				case !lexicon.IsEmpty(s.Y):
					return NodeSensationObject
				case !lexicon.IsEmpty(s.X):
					return NodeEssential
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s describe una sensación o fenómeno climático usando estar como verbo no auxiliar (ej.: está nublado)?", sentence(s)))
			},
			Answer: branch(NodeWeatherState, NodeLocative),
		},

		NodeWeatherState: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe la sensación o fenómeno climático (ej.: frío, nublado):")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.setPred(text)
				return s.build(New(Pred(s.Pred, weather)))
			}),
		},

		NodeEssential: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s expresa un atributo esencial del sujeto usando ser (ej.: Ana es alta)?", sentence(s)))
			},
			Answer: branch(NodeEssentialPred, NodeSensationState),
		},

		NodeEssentialPred: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe el atributo:")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.setPred(text)
				return s.build(New(feeling("be", s.X, text)))
			}),
		},

		NodeSensationState: {
			Prompt: func(s *State) dialog.Prompt {
				p := yesNo("¿El estado es un tipo de sensación o sentimiento (ej.: frío o amor)?")
				p.Warning = "Si es un verbo de percepción sensorial, responde que no."
				return p
			},
			Answer: branch(NodeSensationStatePred, NodeLocative),
		},

		NodeSensationStatePred: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe esa sensación o sentimiento (ej.: frío o enamorado):")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.setPred(text)
				return s.build(New(feeling("feel", s.X, text)))
			}),
		},

		NodeSensationObject: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s expresa una sensación o sentimiento?", lexicon.Capitalize(s.Y)))
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(feeling("feel", s.X, s.Y)))
				}
				return NodeLocative
			}),
		},

		NodeCausativeSensation: {
			Prompt: func(s *State) dialog.Prompt {
				if s.Akt == AktCausativeState {
					return yesNo("¿El estado es un tipo de sensación o sentimiento (ej.: miedo, amor, frío)?")
				}
				return yesNo("¿El evento resultante involucra una sensación o sentimiento (ej.: miedo, amor, frío)?")
			},
			Answer: branch(NodeCausativeSensationPred, NodeLocative),
		},

		NodeCausativeSensationPred: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe esa sensación o sentimiento (ej.: miedo, amor, frío):")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.setPred(text)
				experiencer := s.Y
				if !lexicon.IsEmpty(s.Z) {
					experiencer = s.Z
				}
				return s.build(New(Cause(Causer(s.X), Modify(e.op(s), feeling("feel", experiencer, text)))))
			}),
		},
	}
}
