package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
)

const weather = "weather"

// Dative constructions, weather hacer and the impersonal uses of ir and
// bastar.
func (e *Engine) specialSteps() map[string]dialog.Step[State] {
	special := e.lex.Classes.Special

	return map[string]dialog.Step[State]{
		NodeFilterSe: {
			Prompt: func(s *State) dialog.Prompt {
				p := yesNo(fmt.Sprintf("¿La oración %s contiene la partícula se (como en se me/te/le)?", sentence(s)),
					"Ejemplos con se: Se me perdió el reloj, A Pepe se le olvidaron las llaves",
					"Ejemplos sin se: Te duele la cabeza, A Ana le gustan los helados",
				)
				p.Yes, p.No = "Sí, lleva SE", "No lleva SE"
				return p
			},
			Answer: branch(NodeExperiencerPred, NodeBodyPart),
		},

		NodeExperiencerPred: {
			Prompt: infinitivePrompt,
			Answer: readText(infinitiveWarning, func(s *State, text string) string {
				s.Lemma = lexicon.Predicate(text)
				s.Pred = e.participle(s.Lemma)
				return NodeExperiencerAnticausative
			}),
		},

		NodeExperiencerAnticausative: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo("¿El verbo de la cláusula tiene una contraparte causativa (ej.: romperse / romper)?")
			},
			Answer: decide(func(s *State, yes bool) string {
				event := Modify(e.op(s), Pred(s.Pred, s.X))
				if yes {
					event = Cause(Causer(lexicon.Empty), event)
				}
				s.Structure = New(And(event, Pred("affected", s.Z)))
				s.PreDo = s.Structure.Clone()
				return NodeResult
			}),
		},

		NodeBodyPart: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s es una parte de %s?", lexicon.Capitalize(s.X), s.Z))
			},
			Answer: decide(func(s *State, yes bool) string {
				s.BodyPart = yes
				if yes {
					return NodeDativePred
				}
				return NodeDativePattern
			}),
		},

		NodeDativePattern: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s tiene una estructura parecida a alguno de estos ejemplos?", sentence(s)),
					fmt.Sprintf("Me/te/le [verbo] %s", s.X),
					fmt.Sprintf("A %s me/te/le [verbo] %s", s.Z, s.X),
				)
			},
			Answer: decide(func(s *State, yes bool) string {
				switch {
				case yes:
					return NodeDativePred
				case s.Akt != AktState:
					return NodeLocativeDative
				}
				return NodeLocative
			}),
		},

		NodeDativePred: {
			Prompt: infinitivePrompt,
			Answer: readInfinitive(func(s *State) string {
				op := e.op(s)
				if s.BodyPart {
					event := Pred(s.Pred, s.X)
					if s.dynamic() {
						event = Activity(s.X, event)
					}
					return s.build(New(And(Modify(op, event), Pred("have.as.part", s.Z, s.X))))
				}
				event := Pred(s.Pred, s.X, s.Z)
				if s.dynamic() {
					event = Activity(s.X, event)
				}
				return s.build(WithMR(Modify(op, event), MR1))
			}),
		},

		NodeWeatherHacer: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿El verbo de %s es hacer?", s.Clause))
			},
			Answer: branch(NodeWeatherPred, NodeLocative),
		},

		NodeWeatherPred: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe la sensación en forma de adjetivo (ej.: caluroso):")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.setPred(text)
				event := Pred(s.Pred, weather)
				if s.dynamic() {
					event = Activity(weather, event)
				}
				return s.build(New(Modify(e.op(s), event)))
			}),
		},

		NodeImpersonal: {
			Prompt: func(s *State) dialog.Prompt {
				p := infinitivePrompt(s)
				p.Title = "Caso impersonal"
				return p
			},
			Answer: readInfinitive(func(s *State) string {
				switch {
				case s.in(special, "impersonal_motion"):
					return NodeImpersonalIr
				case s.in(special, "sufficiency"):
					return NodeImpersonalBastar
				}
				return NodeLocative
			}),
		},

		NodeImpersonalIr: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe el adverbio o equivalente (ej.: bien):")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				return s.build(WithMR(Modify(e.op(s), Pred(lexicon.Predicate(text), s.Z)), MR0))
			}),
		},

		NodeImpersonalBastar: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe la información del complemento sin preposición (ej.: tu amistad):")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.Regimen = text
				return s.build(WithMR(Modify(e.op(s), Pred("have.enough.with", s.Z, text)), MR0))
			}),
		},

		NodeLocativeDative: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s señala el destino de un desplazamiento por parte de %s?", lexicon.Capitalize(s.Z), s.X))
			},
			Answer: branch(NodeLocativeDativeBuild, NodeIndirectObject),
		},

		NodeLocativeDativeBuild: {
			Enter: func(s *State) string {
				if s.Akt == AktActiveAccomplishment {
					return ""
				}
				event := Pred("be-LOC", s.Z, s.X)
				if s.dynamic() {
					event = Activity(s.X, event)
				}
				return s.build(New(Modify(e.op(s), event)))
			},
			Prompt: infinitivePrompt,
			Answer: readInfinitive(func(s *State) string {
				return s.build(New(And(
					Activity(s.X, Pred(s.Pred, s.X)),
					Modify("PROC", Pred("covering.path.distance", s.X)),
					Modify("FIN", Pred("be-LOC", s.Z, s.X)),
				)))
			}),
		},
	}
}
