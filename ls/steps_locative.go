package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"strings"
)

const beLoc = "be-LOC"

var placeOptions = []dialog.Option{
	{Value: PlaceSource, Label: "1. Procedencia"},
	{Value: PlaceDestination, Label: "2. Destino"},
}

func readPlace(next string) func(*State, dialog.Input) (string, error) {
	return func(s *State, in dialog.Input) (string, error) {
		switch in.Choice {
		case PlaceSource, PlaceDestination:
			s.Place = in.Choice
			return next, nil
		}
		return "", dialog.Invalid(optionWarning)
	}
}

// located is be-LOC' (locus, theme), negated when the theme leaves the place.
func (s *State) located(theme string) Expr {
	loc := Pred(beLoc, s.Locus, theme)
	if s.Place == PlaceSource {
		return Not(loc)
	}
	return loc
}

func participants(s *State) string {
	var present []string
	for _, arg := range []string{s.X, s.Y} {
		if !lexicon.IsEmpty(arg) {
			present = append(present, arg)
		}
	}
	if len(present) == 0 {
		return "los participantes"
	}
	return strings.Join(present, " o ")
}

// Location, destination and source arguments.
func (e *Engine) locativeSteps() map[string]dialog.Step[State] {
	classes := e.lex.Classes
	motionClasses := []string{AktActivity, AktAchievement, AktAccomplishment, AktProcess, AktSemelfactive}
	causativeMotion := []string{AktCausativeAchievement, AktCausativeAccomplishment, AktCausativeProcess, AktCausativeSemelfactive}

	withLocus := func(s *State, have string) Expr {
		return And(Pred(have, s.X, s.Y), Pred(beLoc, s.Locus, s.Y))
	}

	return map[string]dialog.Step[State]{
		NodeLocative: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(
					fmt.Sprintf("¿Alguno de sus constituyentes argumentales (no periféricos) o el atributo (si es pertinente) indica la ubicación, el destino o el punto de partida de %s?", participants(s)),
					fmt.Sprintf("Considera la cláusula %s.", s.Clause),
				)
			},
			Answer: branch(NodeLocativeForm, NodeMind),
		},

		NodeLocativeForm: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind: dialog.KindForm,
					Fields: []dialog.Field{
						{Name: FieldPlace, Label: "Escribe la información del lugar, sin preposición:"},
						{Name: FieldInfinitive, Label: "Escribe el infinitivo del verbo:"},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				place, inf := in.Field(FieldPlace), in.Field(FieldInfinitive)
				if place == "" || inf == "" {
					return "", dialog.Invalid("Por favor, escribe el lugar y el infinitivo.")
				}
				s.Locus = lexicon.Argument(place)
				s.setPred(inf)
				return NodeLocativeProcess, nil
			},
		},

		NodeLocativeProcess: {
			Enter: func(s *State) string {
				op := e.op(s)
				switch {
				case s.in(classes.Special, "existential"):
					theme := s.Y
					if lexicon.IsEmpty(theme) {
						theme = s.X
					}
					return s.build(WithMR(Pred(beLoc, s.Locus, lexicon.Argument(theme)), MR1))
				case s.in(classes.Possession, "tener"):
					return NodeHaveLocative
				case s.Pred == "olvidar":
					return s.build(New(And(Modify(op, Not(Pred("know", s.X, s.Y))), Pred(beLoc, s.Locus, s.Y))))
				case s.in(classes.Transfer, "sacar") && !((s.Pred == "arrancar" || s.Pred == "retirar") && !s.causative()):
					return s.build(New(Cause(Causer(s.X), Modify(op, Not(Pred(beLoc, s.Locus, s.Y))))))
				case oneOf(s.Akt, motionClasses...):
					if _, ok := s.lookup(classes.Motion); ok {
						return NodePlaceKind
					}
					return NodeLocativeResult
				case oneOf(s.Akt, causativeMotion...):
					return NodeLocativeResultCausative
				}
				if s.Akt != AktActiveAccomplishment {
					s.Pred, s.Lemma = beLoc, ""
				}
				return NodeBasic
			},
		},

		NodeHaveLocative: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s está situado en alguna parte de %s?", lexicon.Capitalize(s.Y), s.X))
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(withLocus(s, "have.as.part")))
				}
				return NodeKinLocative
			}),
		},

		NodeKinLocative: {
			Enter: func(s *State) string {
				if !s.in(classes.Special, "kinship") {
					return s.build(New(withLocus(s, s.Pred)))
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿%s indica una relación de parentesco?", lexicon.Capitalize(s.Y)))
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(withLocus(s, "have.as.kin")))
				}
				return s.build(New(withLocus(s, s.Pred)))
			}),
		},

		NodeLocativeResult: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Como resultado del evento, %s dejó de estar o llegó a estar en %s?", s.X, s.Locus))
			},
			Answer: branch(NodePlaceKind, NodeBasic),
		},

		NodePlaceKind: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindChoice,
					Question: fmt.Sprintf("¿%s es la procedencia o el destino?", lexicon.Capitalize(s.Locus)),
					Options:  placeOptions,
				}
			},
			Answer: readPlace(NodeMotion),
		},

		NodeMotion: {
			Enter: func(s *State) string {
				event := s.located(s.X)
				if s.dynamic() {
					event = Activity(s.X, event)
				}
				return s.build(New(Modify(e.op(s), event)))
			},
		},

		NodeLocativeResultCausative: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Como resultado del evento, %s dejó de estar o llegó a estar en %s?", s.Y, s.Locus))
			},
			Answer: branch(NodePlaceKindCausative, NodeBasic),
		},

		NodePlaceKindCausative: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindChoice,
					Question: fmt.Sprintf("¿%s es la procedencia o el destino?", lexicon.Capitalize(s.Locus)),
					Options:  placeOptions,
				}
			},
			Answer: readPlace(NodeMotionCausative),
		},

		NodeMotionCausative: {
			Enter: func(s *State) string {
				event := s.located(s.Y)
				if s.dynamic() {
					event = Activity(s.Y, event)
				}
				return s.build(New(Cause(Causer(s.X), Modify(e.op(s), event))))
			},
		},
	}
}
