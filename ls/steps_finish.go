package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"strings"
)

const glossNotice = "El programa traduce automáticamente los predicados del español al inglés, pero puede cometer errores en casos de ambigüedad léxica."

// Intentionality, the anticausative reading, glossing, predicate review and
// operators.
func (e *Engine) finishSteps() map[string]dialog.Step[State] {
	finishLogger := logger.NewLogger(flowName)
	anticausativeClasses := []string{AktAccomplishment, AktAchievement, AktProcess, AktSemelfactive}

	operatorPrompt := func(s *State) dialog.Prompt {
		var options []dialog.Option
		var fields []dialog.Field
		var lines []string
		tiers := map[lexicon.Tier][]string{}
		for _, op := range e.lex.Logical.Operators {
			options = append(options, dialog.Option{Value: op.Code, Label: fmt.Sprintf("%s (%s)", op.Description, op.Code)})
			tiers[op.Tier] = append(tiers[op.Tier], op.Code)
			if !op.TakesValue {
				continue
			}
			label := "Valor para " + op.Code
			if op.Examples != "" {
				label += " (ej.: " + op.Examples + ")"
			}
			fields = append(fields, dialog.Field{Name: op.Code, Label: label, Optional: true})
		}
		for _, tier := range []struct {
			tier  lexicon.Tier
			label string
		}{
			{lexicon.TierClausal, "Operadores clausulares"},
			{lexicon.TierCore, "Operadores centrales"},
			{lexicon.TierNuclear, "Operadores nucleares"},
		} {
			if codes := tiers[tier.tier]; len(codes) > 0 {
				lines = append(lines, tier.label+": "+strings.Join(codes, ", "))
			}
		}
		lines = append(lines, s.Glossed.String())
		return dialog.Prompt{
			Kind:     dialog.KindMulti,
			Title:    "Selección de operadores",
			Lines:    lines,
			Question: "Marca los operadores que desees añadir e ingresa sus valores:",
			Options:  options,
			Fields:   fields,
		}
	}

	return map[string]dialog.Step[State]{
		NodeIntentionality: {
			Enter: func(s *State) string {
				if s.Reciprocal {
					return NodeAnticausative
				}
				if !lexicon.IsEmpty(s.X) && (s.dynamic() || s.causative()) {
					return ""
				}
				return NodeAnticausative
			},
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿La acción de %s fue efectuada intencionalmente por %s?", s.Clause, s.X), s.Structure.String())
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					s.Structure = Intentional(s.Structure)
					s.WithDo = s.Structure.Clone()
				} else {
					s.WithDo = Structure{}
				}
				return NodeAnticausative
			}),
		},

		NodeAnticausative: {
			Enter: func(s *State) string {
				if oneOf(s.Akt, anticausativeClasses...) && lexicon.IsEmpty(s.Y) {
					return ""
				}
				if s.WithDo.IsZero() {
					s.PreDo = s.Structure.Clone()
				}
				return NodeResult
			},
			Prompt: func(s *State) dialog.Prompt {
				return yesNo("¿El verbo de la cláusula está construido con el clítico se y tiene una contraparte causativa (ej.: romperse / romper)?", s.Structure.String())
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					s.Structure = Anticausative(s.Structure)
				}
				if s.WithDo.IsZero() {
					s.PreDo = s.Structure.Clone()
				}
				return NodeResult
			}),
		},

		NodeResult: {
			Enter: func(s *State) string {
				s.Glossed = e.gloss(s.Structure)
				s.Predicates = s.Glossed.Predicates(e.lex.IsKeyword)
				s.Editing, s.EditIndex = nil, 0
				finishLogger.Debug().Str("structure", s.Structure.String()).Str("glossed", s.Glossed.String()).Msg("Structure glossed")
				if len(s.Predicates) == 0 {
					return NodeAskOperators
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				p := yesNo("¿Quieres modificar alguno de los predicados?", s.Glossed.String())
				p.Title = "Estructura lógica"
				p.Warning = glossNotice
				p.Result = s.Glossed.String()
				p.Yes, p.No = "Sí, modificar predicados", "No, continuar"
				return p
			},
			Answer: branch(NodeSelectPredicates, NodeAskOperators),
		},

		NodeSelectPredicates: {
			Enter: func(s *State) string {
				if len(s.Predicates) == 1 {
					s.Editing, s.EditIndex = cloneStrings(s.Predicates), 0
					return NodeCorrectPredicates
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				options := make([]dialog.Option, len(s.Predicates))
				for i, p := range s.Predicates {
					options[i] = dialog.Option{Value: p, Label: p + "'"}
				}
				return dialog.Prompt{
					Kind:     dialog.KindMulti,
					Lines:    []string{s.Glossed.String()},
					Question: "Selecciona los predicados que quieres modificar:",
					Options:  options,
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				chosen := in.Choices
				if in.Choice != "" {
					chosen = append(chosen, in.Choice)
				}
				known := make(map[string]bool, len(s.Predicates))
				for _, p := range s.Predicates {
					known[p] = true
				}
				var editing []string
				for _, p := range s.Predicates {
					for _, c := range chosen {
						if c == p {
							editing = append(editing, p)
							break
						}
					}
				}
				for _, c := range chosen {
					if !known[c] {
						return "", dialog.Invalid(fmt.Sprintf("El predicado %s no está en la estructura.", c))
					}
				}
				if len(editing) == 0 {
					return NodeAskOperators, nil
				}
				s.Editing, s.EditIndex = editing, 0
				return NodeCorrectPredicates, nil
			},
		},

		NodeCorrectPredicates: {
			Enter: func(s *State) string {
				if s.EditIndex >= len(s.Editing) {
					return NodeAskOperators
				}
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				current := s.Editing[s.EditIndex]
				question := fmt.Sprintf("Predicado %d de %d: %s", s.EditIndex+1, len(s.Editing), current)
				if len(s.Predicates) == 1 {
					question = fmt.Sprintf("El predicado traducido es %s. ¿Quieres modificarlo?", current)
				}
				return dialog.Prompt{
					Kind:     dialog.KindForm,
					Lines:    []string{s.Glossed.String()},
					Question: question,
					Fields:   []dialog.Field{{Name: FieldPredicate, Label: "Escribe el predicado corregido:", Value: current}},
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				current := s.Editing[s.EditIndex]
				corrected := strings.Join(strings.Fields(in.Field(FieldPredicate)), ".")
				if corrected != "" && corrected != current {
					s.Glossed = s.Glossed.RenamePredicate(current, corrected)
				}
				s.EditIndex++
				return NodeCorrectPredicates, nil
			},
		},

		NodeAskOperators: {
			Prompt: func(s *State) dialog.Prompt {
				p := yesNo("¿Quieres añadir operadores a la estructura lógica?", s.Glossed.String())
				p.Yes, p.No = "Sí, añadir operadores", "No, finalizar"
				return p
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return NodeSelectOperators
				}
				s.Operators = nil
				s.Final = s.Glossed.Clone()
				return NodeFinal
			}),
		},

		NodeSelectOperators: {
			Prompt: operatorPrompt,
			Answer: func(s *State, in dialog.Input) (string, error) {
				codes := in.Choices
				if in.Choice != "" {
					codes = append(codes, in.Choice)
				}
				selected := make([]OperatorValue, 0, len(codes))
				for _, code := range codes {
					selected = append(selected, OperatorValue{Code: code, Value: in.Field(code)})
				}
				ops, err := NormalizeOperators(e.lex, selected)
				if err != nil {
					return "", dialog.Invalid(err.Error())
				}
				s.Operators = ops
				s.Final = WithOperators(s.Glossed, ops)
				return NodeFinal, nil
			},
		},

		NodeFinal: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:   dialog.KindResult,
					Title:  "Resultado final",
					Lines:  []string{s.Final.Markup()},
					Result: s.Final.String(),
				}
			},
		},

		NodeError: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{Kind: dialog.KindError, Title: "Error", Lines: s.Failure}
			},
		},
	}
}
