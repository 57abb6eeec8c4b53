package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
)

// hitVerb is the one hitting verb that also reads as a transfer when it has a
// direct object (pegar una patada).
const hitVerb = "pegar"

// created is PROC being.created' (y) ∧ FIN exist' (y).
func created(y string) []Expr {
	return []Expr{
		Modify("PROC", Pred("being.created", y)),
		Modify("FIN", Pred("exist", y)),
	}
}

// dictionPurpose is the purpose half of speech-act structures that name the
// act (thanks, blessing...): know' (z, agradecimiento por y).
func dictionPurpose(z, noun, prep, y string) Expr {
	return Pred("know", z, noun+" "+prep+" "+y)
}

// Verbs with an indirect object: transfer, deprivation, speech acts and
// teaching.
func (e *Engine) indirectSteps() map[string]dialog.Step[State] {
	transfer := e.lex.Classes.Transfer
	diction := e.lex.Classes.Diction
	deprivation := e.lex.Classes.Deprivation
	special := e.lex.Classes.Special

	have := func(s *State) Expr {
		return Cause(Causer(s.X), Modify(e.op(s), Pred("have", s.Z, s.Y)))
	}
	nominal := func(s *State, class string) (string, bool) {
		if n, ok := diction.Nominal(class, s.Pred); ok {
			return n, true
		}
		return diction.Nominal(class, s.Lemma)
	}

	return map[string]dialog.Step[State]{
		NodeIndirectObject: {
			Prompt: func(s *State) dialog.Prompt {
				p := infinitivePrompt(s)
				p.Title = "Verbo con complemento indirecto"
				return p
			},
			Answer: readInfinitive(func(s *State) string {
				switch s.Akt {
				case AktActiveAccomplishment:
					return NodeDictionRA
				case AktCausativeActiveAccomplishment:
					return NodeTeachRAC
				}
				return NodeIndirectType
			}),
		},

		NodeTeachRAC: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Es %s un verbo como enseñar o mostrar?", s.Pred))
			},
			Answer: decide(func(s *State, yes bool) string {
				if !yes {
					return NodeLocative
				}
				effect := append([]Expr{Activity(s.Z, Pred("know", s.Z, s.Y))}, created(s.Y)...)
				return s.build(New(Cause(Activity(s.X, Pred(s.Pred, s.X, s.Y)), And(effect...))))
			}),
		},

		NodeDictionRA: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Es %s un verbo de dicción?", s.Pred))
			},
			Answer: branch(NodeDictionRABuild, NodeLocative),
		},

		NodeDictionRABuild: {
			Enter: func(s *State) string {
				x, y, z := s.X, s.Y, s.Z
				if s.in(diction, "preguntar") {
					const question = "pregunta"
					act := append([]Expr{Activity(x, Pred("express.question", x, question))}, created(question)...)
					return s.build(New(Purp(And(act...), Activity(z, Pred("express.something", z, y)))))
				}
				for _, dc := range []struct{ class, prep string }{{"agradecer", "por"}, {"bendecir", "de"}} {
					if noun, ok := nominal(s, dc.class); ok {
						act := append([]Expr{Activity(x, Pred("express."+dotted(noun), x, y))}, created(noun)...)
						return s.build(New(Purp(And(act...), dictionPurpose(z, noun, dc.prep, y))))
					}
				}
				act := append([]Expr{Activity(x, Pred("express.something", x, y))}, created(y)...)
				return s.build(New(Purp(And(act...), Pred("know", z, y))))
			},
		},

		NodeIndirectType: {
			Enter: func(s *State) string {
				switch {
				case s.in(transfer, "sacar"):
					if s.Pred == "arrancar" && !s.causative() {
						return NodeLocative
					}
					return s.build(New(Purp(
						Cause(Causer(s.X), Modify(e.op(s), Not(Pred("have", s.Z, s.Y)))),
						Pred("have", s.X, s.Y),
					)))
				case s.in(transfer, "dar_poner"), s.Lemma == hitVerb && !lexicon.IsEmpty(s.Y):
					return s.build(New(have(s)))
				}
				return NodeTransfer
			},
		},

		NodeTransfer: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿El significado típico de %s es la transferencia de un objeto físico?", s.Pred))
			},
			Answer: decide(func(s *State, yes bool) string {
				if yes {
					return s.build(New(have(s)))
				}
				return NodeDiction
			}),
		},

		NodeDiction: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Es %s un verbo de dicción?", s.Pred))
			},
			Answer: branch(NodeDictionBuild, NodeOtherIndirect),
		},

		NodeDictionBuild: {
			Enter: func(s *State) string {
				x, y, z, op := s.X, s.Y, s.Z, e.op(s)
				if s.in(diction, "preguntar") {
					topic := "something"
					if !lexicon.IsEmpty(y) {
						topic = dotted(y)
					}
					return s.build(New(Purp(
						Modify(op, Activity(x, Pred("express.question", x))),
						Activity(z, Pred("express."+topic, z, y)),
					)))
				}
				for _, dc := range []struct{ class, prep string }{{"agradecer", "por"}, {"bendecir", "de"}} {
					if noun, ok := nominal(s, dc.class); ok {
						return s.build(New(Purp(
							Modify(op, Activity(x, Pred("express."+dotted(noun), x, y))),
							dictionPurpose(z, noun, dc.prep, y),
						)))
					}
				}
				return s.build(New(Purp(
					Modify(op, Activity(x, Pred("express.something", x, y))),
					Pred("know", z, y),
				)))
			},
		},

		NodeOtherIndirect: {
			Enter: func(s *State) string {
				switch {
				case s.in(deprivation, "desatribuir"):
					return s.build(New(Cause(Causer(s.X), Modify(e.op(s), Not(Pred("have", s.Z, s.Y))))))
				case s.in(deprivation, "ocultar"):
					return s.build(New(Cause(Causer(s.X), Modify(e.op(s), Not(Pred("know", s.Z, s.Y))))))
				}
				return NodeTeach
			},
		},

		NodeTeach: {
			Prompt: func(s *State) dialog.Prompt {
				return yesNo(fmt.Sprintf("¿Es %s un verbo como enseñar o mostrar?", s.Pred))
			},
			Answer: decide(func(s *State, yes bool) string {
				switch {
				case yes:
					return s.build(New(Cause(Causer(s.X), Modify(e.op(s), Pred("know", s.Z, s.Y)))))
				case s.in(special, "hitting"):
					return s.build(WithMR(Modify(e.op(s), Activity(s.X, Pred("hit", s.X, s.Z))), MR1))
				}
				return s.fail(
					"Error. No se puede generar una estructura lógica con estos datos.",
					fmt.Sprintf("Asegúrate de que %s sea un argumento de %s y de que no se trate de un dativo ético o parte de una construcción aplicativa.", s.Z, s.Pred),
				)
			}),
		},
	}
}
