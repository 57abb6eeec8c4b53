package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
)

// Active accomplishment kinds.
const (
	KindCreation     = "creacion"
	KindConsumption  = "consumo"
	KindDisplacement = "desplazamiento"
	KindOther        = "otros"
)

var accomplishmentOptions = []dialog.Option{
	{Value: KindCreation, Label: "Creación"},
	{Value: KindConsumption, Label: "Consumo"},
	{Value: KindDisplacement, Label: "Desplazamiento"},
	{Value: KindOther, Label: "Ninguno de estos"},
}

// accomplished is do' (actor, [activity]) ∧ PROC proc ∧ FIN fin.
func accomplished(actor string, activity, proc, fin Expr) Expr {
	return And(Activity(actor, activity), Modify("PROC", proc), Modify("FIN", fin))
}

func activityPrompt(actor, example string) func(*State) dialog.Prompt {
	return func(s *State) dialog.Prompt {
		who := s.Y
		if actor == "z" {
			who = s.Z
		}
		return textPrompt(fmt.Sprintf("Escribe en infinitivo la actividad realizada por %s (ej.: %s):", who, example))
	}
}

// Creation, consumption, displacement and other active accomplishments.
func (e *Engine) accomplishmentSteps() map[string]dialog.Step[State] {
	nourishment := e.lex.Classes.Nourishment
	motion := e.lex.Classes.Motion

	consumed := func(actor, food, pred string) Expr {
		return accomplished(actor, Pred(pred, actor, food), Pred("being.consumed", food), Pred("consumed", food))
	}
	// partOf names the result state by the participle of the activity verb.
	partOf := func(s *State, actor string, activity Expr, theme string) Expr {
		result := e.participle(s.Pred)
		return accomplished(actor, activity, Pred(result, theme), Pred(result, theme))
	}
	// governed is partOf for a verb with a prepositional complement.
	governed := func(s *State, actor, prep, regimen string) Expr {
		result := e.participle(s.Pred) + "." + prep
		return accomplished(actor,
			Pred(s.Pred+"."+prep, actor, regimen),
			Pred(result, actor, regimen),
			Pred(result, actor, regimen),
		)
	}

	return map[string]dialog.Step[State]{
		NodeActiveAccomplishment: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindChoice,
					Question: "Selecciona la clase semántica que mejor se ajuste al verbo:",
					Options:  accomplishmentOptions,
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				switch in.Choice {
				case KindCreation:
					return NodeCreation, nil
				case KindConsumption:
					return NodeConsumption, nil
				case KindDisplacement:
					return NodeDisplacement, nil
				case KindOther:
					return NodeOther, nil
				}
				return "", dialog.Invalid(optionWarning)
			},
		},

		NodeCreation: {
			Enter: func(s *State) string {
				if s.causative() {
					return ""
				}
				return s.build(New(And(append([]Expr{Activity(s.X, Pred(s.Pred, s.X, s.Y))}, created(s.Y)...)...)))
			},
			Prompt: activityPrompt("z", "escribir"),
			Answer: readInfinitive(func(s *State) string {
				effect := append([]Expr{Activity(s.Z, Pred(s.Pred, s.Z, s.Y))}, created(s.Y)...)
				return s.build(New(Cause(Causer(s.X), And(effect...))))
			}),
		},

		NodeConsumption: {
			Enter: func(s *State) string {
				if s.causative() {
					return ""
				}
				return s.build(New(consumed(s.X, s.Y, s.Pred)))
			},
			Prompt: func(s *State) dialog.Prompt {
				return textPrompt("Escribe el infinitivo del verbo de la oración original (ej.: alimentar):")
			},
			Answer: readInfinitive(func(*State) string { return NodeConsumptionCausative }),
		},

		NodeConsumptionCausative: {
			Prompt: func(s *State) dialog.Prompt {
				if !s.in(nourishment, "alimentar") {
					return activityPrompt("z", "comer")(s)
				}
				return dialog.Prompt{
					Kind: dialog.KindForm,
					Fields: []dialog.Field{
						{Name: FieldInfinitive, Label: fmt.Sprintf("Escribe en infinitivo la actividad realizada por %s (ej.: comer):", s.Y)},
						{Name: FieldFood, Label: "Escribe el alimento que fue consumido (ej.: una manzana):"},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				if !s.in(nourishment, "alimentar") {
					return readInfinitive(func(s *State) string {
						return s.build(New(Cause(Causer(s.X), consumed(s.Z, s.Y, s.Pred))))
					})(s, in)
				}
				inf, food := in.Field(FieldInfinitive), in.Field(FieldFood)
				if inf == "" || food == "" {
					return "", dialog.Invalid("Por favor, escribe la actividad y el alimento.")
				}
				s.setPred(inf)
				return s.build(New(Cause(Causer(s.X), consumed(s.Y, lexicon.Predicate(food), s.Pred)))), nil
			},
		},

		NodeDisplacement: {
			Enter: func(s *State) string {
				if class, ok := s.lookup(motion); ok {
					s.Pred = class
				}
				if (lexicon.IsEmpty(s.Locus) || !lexicon.IsEmpty(s.Y)) && !s.causative() {
					return s.build(New(accomplished(s.X,
						Pred(s.Pred, s.X),
						Pred("covering.path.distance", s.X, s.Y),
						Pred(beLoc, s.Locus, s.X),
					)))
				}
				return NodeDisplacementPlace
			},
		},

		NodeDisplacementPlace: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindChoice,
					Question: fmt.Sprintf("¿%s es (1) la procedencia o (2) el destino?", lexicon.Capitalize(s.Locus)),
					Options:  placeOptions,
				}
			},
			Answer: readPlace(NodeDisplacementBuild),
		},

		NodeDisplacementBuild: {
			Enter: func(s *State) string {
				if s.causative() {
					return ""
				}
				return s.build(New(accomplished(s.X,
					Pred(s.Pred, s.X),
					Pred("covering.path.distance", s.X),
					s.located(s.X),
				)))
			},
			Prompt: activityPrompt("y", "correr"),
			Answer: readInfinitive(func(s *State) string {
				return s.build(New(Cause(Causer(s.X), accomplished(s.Y,
					Pred(s.Pred, s.Y),
					Pred("covering.path.distance", s.Y),
					s.located(s.Y),
				))))
			}),
		},

		NodeOther: {
			Enter: func(s *State) string {
				switch {
				case s.causative() && !lexicon.IsEmpty(s.Z):
					return ""
				case s.causative():
					return NodeOtherRegimen
				case !lexicon.IsEmpty(s.Y):
					return s.build(New(partOf(s, s.X, Pred(s.Pred, s.X, s.Y), s.Y)))
				}
				return NodeOtherRegimenNC
			},
			Prompt: activityPrompt("z", "pintar"),
			Answer: readInfinitive(func(s *State) string {
				return s.build(New(Cause(Causer(s.X), partOf(s, s.Z, Pred(s.Pred, s.Z, s.Y), s.Y))))
			}),
		},

		NodeOtherRegimen: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Alguno de los constituyentes de %s es un complemento de régimen (ej.: en mi amigo en Ana transformó a Pepe en mi amigo)?", s.Clause))
			},
			Answer: branch(NodeOtherRegimenForm, NodeOtherNoRegimen),
		},

		NodeOtherRegimenForm: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind: dialog.KindForm,
					Fields: []dialog.Field{
						{Name: FieldInfinitive, Label: fmt.Sprintf("Escribe en infinitivo la actividad realizada por %s (ej.: transformarse):", s.Y)},
						{Name: FieldPreposition, Label: "Escribe la preposición regida por el verbo (ej.: en):"},
						{Name: FieldRegimen, Label: "Escribe la información del complemento de régimen, sin preposición (ej.: mi amigo):"},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				inf, prep, regimen := in.Field(FieldInfinitive), lexicon.Predicate(in.Field(FieldPreposition)), in.Field(FieldRegimen)
				if inf == "" || prep == "" || regimen == "" {
					return "", dialog.Invalid("Por favor, completa todos los campos.")
				}
				s.setPred(inf)
				s.Regimen = regimen
				return s.build(New(Cause(Causer(s.X), governed(s, s.Y, prep, regimen)))), nil
			},
		},

		NodeOtherNoRegimen: {
			Prompt: activityPrompt("y", "comer"),
			Answer: readInfinitive(func(s *State) string {
				return s.build(New(Cause(Causer(s.X), partOf(s, s.Y, Pred(s.Pred, s.Y), s.Y))))
			}),
		},

		NodeOtherRegimenNC: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Alguno de los constituyentes de %s es un complemento de régimen (ej.: en mi amigo en Pepe se transformó en mi amigo)?", s.Clause))
			},
			Answer: branch(NodeOtherRegimenNCForm, NodeOtherNoRegimenNC),
		},

		NodeOtherRegimenNCForm: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind: dialog.KindForm,
					Fields: []dialog.Field{
						{Name: FieldPreposition, Label: "Escribe la preposición regida por el verbo (ej.: en):"},
						{Name: FieldRegimen, Label: "Escribe la información del complemento de régimen, sin preposición (ej.: mi amigo):"},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				prep, regimen := lexicon.Predicate(in.Field(FieldPreposition)), in.Field(FieldRegimen)
				if prep == "" || regimen == "" {
					return "", dialog.Invalid("Por favor, completa todos los campos.")
				}
				s.Regimen = regimen
				return s.build(New(governed(s, s.X, prep, regimen))), nil
			},
		},

		NodeOtherNoRegimenNC: {
			Enter: func(s *State) string {
				return s.build(New(partOf(s, s.X, Pred(s.Pred, s.X), s.X)))
			},
		},
	}
}
