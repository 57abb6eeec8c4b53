package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
)

// Mental states, prepositional complements and the verbs that have a
// structure of their own.
func (e *Engine) predicateSteps() map[string]dialog.Step[State] {
	classes := e.lex.Classes
	regimenClasses := []string{AktState, AktActivity, AktProcess, AktAchievement, AktAccomplishment, AktSemelfactive}

	// dynamic wraps a state in do' (x, [...]) for dynamic events.
	dynamic := func(s *State, event Expr) Expr {
		if s.dynamic() {
			return Activity(s.X, event)
		}
		return event
	}

	return map[string]dialog.Step[State]{
		NodeMind: {
			Enter: func(s *State) string {
				if lexicon.IsEmpty(s.Y) || s.causative() || oneOf(s.Akt, AktActiveAccomplishment, AktActivity) {
					return NodeRegimen
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				p := yesNo(fmt.Sprintf("¿%s describe que %s tiene en su mente o llega a tener en su mente lo expresado en %s?", sentence(s), s.X, s.Y))
				p.Warning = "Si se trata de un verbo de dicción o de percepción sensorial, responde que no."
				return p
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(Modify(e.op(s), Pred("know", s.X, s.Y))))
				}
				return NodeRegimen
			}),
		},

		NodeRegimen: {
			Enter: func(s *State) string {
				if oneOf(s.Akt, regimenClasses...) && lexicon.IsEmpty(s.Y) {
					return ""
				}
				return NodePredicate
			},
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Alguno de los constituyentes de %s es un complemento de régimen (ej.: de defectos en la obra carece de defectos)?", s.Clause))
			},
			Answer: branch(NodeRegimenForm, NodePredicate),
		},

		NodeRegimenForm: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind: dialog.KindForm,
					Fields: []dialog.Field{
						{Name: FieldInfinitive, Label: "Escribe el infinitivo del verbo:"},
						{Name: FieldRegimen, Label: "Escribe la información del complemento de régimen (sin preposición):"},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				inf, regimen := in.Field(FieldInfinitive), in.Field(FieldRegimen)
				if inf == "" || regimen == "" {
					return "", dialog.Invalid("Por favor, escribe el infinitivo y el complemento de régimen.")
				}
				s.setPred(inf)
				s.Regimen = regimen
				if classes.Diction.In("conversar", lexicon.Stem(s.Pred)) {
					return NodeSpecialPredicates, nil
				}
				return s.build(WithMR(Modify(e.op(s), dynamic(s, Pred(s.Pred, s.X, regimen))), MR1)), nil
			},
		},

		NodeSpecialPredicates: {
			Enter: func(s *State) string {
				op := e.op(s)
				possession := classes.Possession
				_, impersonal := s.lookup(classes.ImpersonalPerception)
				switch {
				case impersonal && !s.dynamic() && lexicon.IsEmpty(s.Y):
					return NodeImpersonalPerception
				case lexicon.IsEmpty(s.X) && s.in(classes.Weather, "weather"):
					return s.build(New(Modify(op, Apply("do", Pred(s.Pred)))))
				case s.in(classes.Diction, "conversar"):
					return NodeInterlocutor
				case s.in(classes.Special, "forgetting"):
					return s.build(New(Modify(op, dynamic(s, Not(Pred("know", s.X, s.Y))))))
				case s.in(possession, "perder"):
					return s.build(New(Modify(op, dynamic(s, Not(Pred("have", s.X, s.Y))))))
				case s.in(possession, "obtener") && !lexicon.IsEmpty(s.Y):
					if s.dynamic() {
						return s.build(New(Modify(op, Activity(s.X, Modify("INGR", Pred("have", s.X, s.Y))))))
					}
					return s.build(New(Modify(op, Pred("have", s.X, s.Y))))
				case s.Akt != AktState:
					return NodeBasic
				}

				switch {
				case s.in(classes.Special, "ignorance"):
					return s.build(New(Not(Pred("know", s.X, s.Y))))
				case s.in(classes.Existence, "exist") && lexicon.IsEmpty(s.Y):
					return s.build(New(Pred("exist", s.X)))
				case s.in(classes.Special, "existential"):
					return s.build(WithMR(Pred("exist", s.Y), MR0))
				case s.in(possession, "tener") && !lexicon.IsEmpty(s.Y):
					return NodePossessionPart
				}
				return NodeBasic
			},
		},

		NodeImpersonalPerception: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt(fmt.Sprintf("Escribe la cualidad percibida en %s (ej.: mal, raro, a chocolate):", s.Clause))
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				sense, _ := s.lookup(classes.ImpersonalPerception)
				s.Structure = New(Modify(e.op(s), Pred(sense+"."+lexicon.Predicate(text), s.X)))
				s.PreDo = s.Structure.Clone()
				s.Reciprocal = true
				return NodeAnticausative
			}),
		},

		NodeInterlocutor: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Hay un interlocutor en %s?", s.Clause))
			},
			Answer: branch(NodeInterlocutorForm, NodeBasic),
		},

		NodeInterlocutorForm: {
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe quién es el interlocutor:")
			},
			Answer: readText(textWarning, func(s *State, text string) string {
				s.Interlocutor = text
				return NodeReciprocalIntent
			}),
		},

		NodeReciprocalIntent: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Tanto %s como %s actuaron de manera intencional en la conversación?", s.X, s.Interlocutor))
			},
			Answer: decide(func(s *State, yes bool) string {
				op := e.op(s)
				speech := func(speaker, hearer string) Expr {
					return Purp(
						Activity(speaker, Pred("express.something.to."+dotted(hearer), speaker, s.Y)),
						Modify(op, Pred("know", hearer, s.Y)),
					)
				}
				first, second := speech(s.X, s.Interlocutor), speech(s.Interlocutor, s.X)
				if yes {
					first, second = Intend(first), Intend(second)
				}
				s.Structure = New(And(first, second))
				s.PreDo = s.Structure.Clone()
				s.Reciprocal = true
				return NodeAnticausative
			}),
		},

		NodePossessionPart: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s es una parte constituyente de %s?", lexicon.Capitalize(s.Y), s.X))
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(Pred("have.as.part", s.X, s.Y)))
				}
				return NodePossessionKin
			}),
		},

		NodePossessionKin: {
			Enter: func(s *State) string {
				if !s.in(classes.Special, "kinship") {
					return s.build(New(Pred("have", s.X, s.Y)))
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s indica una relación de parentesco?", lexicon.Capitalize(s.Y)))
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(Pred("have.as.kin", s.X, s.Y)))
				}
				return s.build(New(Pred("have", s.X, s.Y)))
			}),
		},
	}
}
