package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/fsm"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/morph"
)

const (
	yesLabel = "Sí"
	noLabel  = "No"

	textWarning       = "Por favor, escribe una respuesta."
	infinitiveWarning = "Por favor, escribe el infinitivo."
	optionWarning     = "Por favor, selecciona una opción."
)

func flag(v bool) *bool {
	return &v
}

func yesNo(question string, lines ...string) dialog.Prompt {
	return dialog.Prompt{Kind: dialog.KindYesNo, Lines: lines, Question: question, Yes: yesLabel, No: noLabel}
}

func textPrompt(question string, lines ...string) dialog.Prompt {
	return dialog.Prompt{Kind: dialog.KindText, Lines: lines, Question: question}
}

func infinitivePrompt(*State) dialog.Prompt {
	return textPrompt("Escribe el infinitivo del verbo:")
}

// branch moves to one of two nodes on a yes/no answer.
func branch(yes, no string) func(*State, dialog.Input) (string, error) {
	return decide(func(_ *State, answer bool) string {
		if answer {
			return yes
		}
		return no
	})
}

func decide(fn func(s *State, yes bool) string) func(*State, dialog.Input) (string, error) {
	return func(s *State, in dialog.Input) (string, error) {
		yes, err := in.YesNo()
		if err != nil {
			return "", err
		}
		return fn(s, yes), nil
	}
}

// readText rejects an empty answer with the warning.
func readText(warning string, fn func(s *State, text string) string) func(*State, dialog.Input) (string, error) {
	return func(s *State, in dialog.Input) (string, error) {
		text := in.TrimmedText()
		if text == "" {
			return "", dialog.Invalid(warning)
		}
		return fn(s, text), nil
	}
}

// readInfinitive stores the typed verb as the predicate before moving on.
func readInfinitive(fn func(s *State) string) func(*State, dialog.Input) (string, error) {
	return readText(infinitiveWarning, func(s *State, text string) string {
		s.setPred(text)
		return fn(s)
	})
}

func sentence(s *State) string {
	return lexicon.Capitalize(s.Clause)
}

// dotted turns an argument into a constant fragment: "el libro" -> "el.libro".
func dotted(arg string) string {
	return lexicon.Predicate(arg)
}

var featureOptions = []dialog.Option{
	{Value: "1sg", Label: "Primera persona singular"},
	{Value: "2sg", Label: "Segunda persona singular"},
	{Value: "3sg", Label: "Tercera persona singular"},
	{Value: "1pl", Label: "Primera persona plural"},
	{Value: "2pl", Label: "Segunda persona plural"},
	{Value: "3pl", Label: "Tercera persona plural"},
}

func validFeature(v string) bool {
	for _, opt := range featureOptions {
		if opt.Value == v {
			return true
		}
	}
	return false
}

func akt(s State) string { return s.Akt }
func subject(s State) string { return s.X }
func object(s State) string { return s.Y }
func indirect(s State) string { return s.Z }

func filled(slot func(State) string) fsm.Condition[State] {
	return func(s State) bool {
		return !lexicon.IsEmpty(slot(s))
	}
}

func missing(slot func(State) string) fsm.Condition[State] {
	return fsm.NewNegateCondition(filled(slot))
}

func causativeAkt(s State) bool {
	return isCausative(s.Akt)
}

func dynamicEvent(s State) bool {
	return s.dynamic()
}

var causativeSensationClasses = map[string]bool{
	AktCausativeState:          true,
	AktCausativeAchievement:    true,
	AktCausativeAccomplishment: true,
	AktCausativeProcess:        true,
}

// specialCases picks the first family of constructions that can apply given
// the class, the filled slots and dynamicity.
func specialCases() fsm.Machine[State] {
	notCausative := fsm.NewNegateCondition[State](causativeAkt)
	return fsm.Machine[State]{
		NodeSpecialCase: {
			{Dst: NodeFilterSe, Cond: fsm.NewCombineCondition(
				notCausative,
				fsm.NewNegateCondition(fsm.NewTextValueCondition(akt, AktActiveAccomplishment)),
				filled(subject), missing(object), filled(indirect),
			)},
			{Dst: NodeWeatherHacer, Cond: fsm.NewCombineCondition(missing(subject), filled(object))},
			{Dst: NodeImpersonal, Cond: fsm.NewCombineCondition(
				fsm.NewNegateCondition[State](dynamicEvent),
				missing(subject), missing(object), filled(indirect),
			)},
			{Dst: NodeLocativeDative, Cond: fsm.NewCombineCondition(
				notCausative,
				fsm.NewNegateCondition(fsm.NewTextValueCondition(akt, AktState)),
				filled(subject), missing(object), filled(indirect),
			)},
			{Dst: NodeStative, Cond: fsm.NewTextValueCondition(akt, AktState)},
			{Dst: NodeCausativeSensation, Cond: fsm.NewWordSetCondition(akt, causativeSensationClasses)},
			{Dst: NodeIndirectObject, Cond: filled(indirect)},
			{Dst: NodeLocative, Cond: fsm.AnyCondition[State]},
		},
	}
}

func (s *State) infinitiveMode() bool {
	switch {
	case oneOf(s.Akt, AktActivity, AktActiveAccomplishment):
		return true
	case oneOf(s.Akt, AktAchievement, AktSemelfactive):
		return s.dynamic()
	}
	return !lexicon.IsEmpty(s.Y) && !s.causative() && (s.dynamic() || s.Akt == AktState)
}

func (e *Engine) entrySteps() map[string]dialog.Step[State] {
	return map[string]dialog.Step[State]{
		NodeStart: {
			Enter: func(s *State) string {
				if s.Seeded && s.Akt != "" && s.Clause != "" {
					return NodeArguments
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				options := make([]dialog.Option, len(AktClasses))
				for i, akt := range AktClasses {
					options[i] = dialog.Option{Value: akt, Label: lexicon.Capitalize(akt)}
				}
				return dialog.Prompt{
					Kind:  dialog.KindForm,
					Title: "Estructura lógica",
					Fields: []dialog.Field{
						{Name: FieldAkt, Label: "Selecciona el aktionsart del predicado:", Options: options, Value: s.Akt},
						{Name: FieldClause, Label: "Escribe la cláusula de la que quieres obtener su estructura lógica:", Value: s.Clause},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				akt := lexicon.Normalize(in.Field(FieldAkt))
				if !IsAkt(akt) {
					return "", dialog.Invalid("Por favor, selecciona un aktionsart.")
				}
				clause := in.Field(FieldClause)
				if clause == "" {
					return "", dialog.Invalid("Por favor, escribe la cláusula.")
				}
				s.Akt = akt
				s.Clause = clause
				return NodeArguments, nil
			},
		},

		NodeArguments: {
			Prompt: func(s *State) dialog.Prompt {
				var fields []dialog.Field
				slots := []struct {
					name, label, value string
				}{
					{FieldSubject, "Sujeto", s.X},
					{FieldObject, "Complemento directo (sin «a», si es pertinente)", s.Y},
					{FieldIndirect, "Complemento indirecto (sin «a», si es pertinente)", s.Z},
				}
				for _, slot := range slots {
					value := slot.value
					if lexicon.IsEmpty(value) {
						value = ""
					}
					fields = append(fields,
						dialog.Field{Name: slot.name, Label: slot.label, Value: value, Optional: true},
						dialog.Field{
							Name:     slot.name + AffixSuffix,
							Label:    slot.label + ": la información se expresa únicamente en un afijo o clítico",
							Options:  featureOptions,
							Optional: true,
						},
					)
				}
				return dialog.Prompt{
					Kind:     dialog.KindForm,
					Title:    "Identificación de argumentos",
					Lines:    []string{fmt.Sprintf("Selecciona los argumentos presentes en la cláusula %s (sintácticos o morfológicos).", s.Clause)},
					Warning:  "Si hay argumentos sintácticos, privilegia estos.",
					Fields:   fields,
					Question: "Deja en blanco los argumentos que no estén presentes.",
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				var values [3]string
				for i, name := range []string{FieldSubject, FieldObject, FieldIndirect} {
					text := in.Field(name)
					if text == "" {
						if feature := in.Field(name + AffixSuffix); feature != "" {
							if !validFeature(feature) {
								return "", dialog.Invalid("Por favor, selecciona una persona de la lista.")
							}
							text = feature
						}
					}
					values[i] = lexicon.Argument(text)
				}
				s.X, s.Y, s.Z = values[0], values[1], values[2]
				return NodeDynamicity, nil
			},
		},

		NodeDynamicity: {
			Enter: func(s *State) string {
				if s.Dynamic != nil {
					return NodeSpecialCase
				}
				switch {
				case oneOf(s.Akt, AktActivity, AktCausativeActivity, AktActiveAccomplishment, AktCausativeActiveAccomplishment):
					s.Dynamic = flag(true)
				case oneOf(s.Akt, AktAchievement, AktSemelfactive, AktCausativeAchievement, AktCausativeSemelfactive):
					return ""
				default:
					s.Dynamic = flag(false)
				}
				return NodeSpecialCase
			},
			Prompt: func(s *State) dialog.Prompt {
				var p dialog.Prompt
				if s.causative() {
					p = textPrompt(fmt.Sprintf("Escribe el evento resultante de %s, sin el segmento causativo (ej.: el gato rompió el jarrón → el jarrón se rompió):", s.Clause))
				} else {
					p = yesNo(fmt.Sprintf("¿%s es compatible con expresiones como enérgicamente, con fuerza o con ganas?", sentence(s)))
				}
				p.Title = "Verificación de dinamicidad"
				return p
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				if s.causative() {
					return readText("Por favor, escribe el evento resultante.", func(s *State, text string) string {
						s.ResultClause = text
						return NodeDynamicityConfirm
					})(s, in)
				}
				return decide(func(s *State, yes bool) string {
					s.Dynamic = flag(yes)
					return NodeSpecialCase
				})(s, in)
			},
		},

		NodeDynamicityConfirm: {
			Prompt: func(s *State) dialog.Prompt {
				p := yesNo(fmt.Sprintf("¿Es %s compatible con expresiones como enérgicamente, con fuerza o con ganas?", s.ResultClause))
				p.Title = "Verificación de dinamicidad"
				return p
			},
			Answer: decide(func(s *State, yes bool) string {
				s.Dynamic = flag(yes)
				return NodeSpecialCase
			}),
		},

		NodeSpecialCase: {
			Enter: func(s *State) string {
				return e.router.Input(*s, NodeSpecialCase)
			},
		},

		NodePredicate: {
			Enter: func(s *State) string {
				if oneOf(s.Akt, AktCausativeActivity, AktCausativeActiveAccomplishment) ||
					(oneOf(s.Akt, AktCausativeAchievement, AktCausativeSemelfactive) && s.dynamic()) {
					// the activity is asked for later, once per participant
					s.Pred, s.Lemma = "", ""
					return NodeSpecialPredicates
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				if s.infinitiveMode() {
					p := infinitivePrompt(s)
					p.Title = "Identificación del predicado"
					return p
				}
				return dialog.Prompt{
					Kind:  dialog.KindForm,
					Title: "Identificación del predicado",
					Fields: []dialog.Field{
						{Name: FieldPredicate, Label: "Escribe el infinitivo del verbo (o el adjetivo/atributo si se trata de un verbo copulativo o seudocopulativo):"},
						{Name: FieldPredType, Label: "Tipo de predicado", Options: []dialog.Option{
							{Value: PredVerb, Label: "Verbo"},
							{Value: PredAttribute, Label: "Adjetivo/atributo"},
						}},
					},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				if s.infinitiveMode() {
					return readInfinitive(func(*State) string { return NodeSpecialPredicates })(s, in)
				}
				kind := in.Field(FieldPredType)
				if kind != PredVerb && kind != PredAttribute {
					return "", dialog.Invalid("Por favor, indica si es un verbo o un adjetivo/atributo.")
				}
				text := lexicon.Predicate(in.Field(FieldPredicate))
				if text == "" {
					return "", dialog.Invalid("Por favor, escribe el predicado.")
				}
				if kind == PredAttribute {
					s.Pred, s.Lemma = text, ""
					return NodeSpecialPredicates, nil
				}
				s.Lemma = text
				s.Pred = text
				if morph.IsInfinitive(text) {
					s.Pred = e.participle(text)
				}
				return NodeSpecialPredicates, nil
			},
		},
	}
}

func (e *Engine) participle(infinitive string) string {
	return lexicon.Predicate(morph.Participle(e.lex, infinitive))
}
