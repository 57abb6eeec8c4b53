package ls

import (
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/fsm"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/carlosgonzalezvergara/vendler/translate"
	"strings"
)

const flowName = "LogicalStructure"

var (
	ErrNoResult      = errors.New("the logical structure is not finished")
	ErrUnknownAkt    = errors.New("unknown aktionsart class")
	ErrMissingClause = errors.New("the clause is empty")
)

// Glosser turns a Spanish predicate constant into its English gloss. It never
// fails: anything it cannot gloss comes back unchanged.
type Glosser interface {
	Gloss(name string) string
}

// GlossFunc adapts a plain function to Glosser.
type GlossFunc func(name string) string

func (f GlossFunc) Gloss(name string) string {
	return f(name)
}

// Engine builds logical structures for Spanish clauses.
type Engine struct {
	lex     *lexicon.Lexicon
	glosser Glosser
	router  fsm.Machine[State]
	flow    *dialog.Flow[State]
}

func NewEngine(lex *lexicon.Lexicon, glosser Glosser) (*Engine, error) {
	if glosser == nil {
		glosser = GlossFunc(func(name string) string { return name })
	}
	e := &Engine{lex: lex, glosser: glosser, router: specialCases()}
	e.flow = &dialog.Flow[State]{
		Name:  flowName,
		Start: NodeStart,
		Nodes: Nodes,
		Steps: e.steps(),
	}
	if err := e.flow.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewDefaultEngine uses the built-in lexicon and the translator configured in
// the environment.
func NewDefaultEngine() (*Engine, error) {
	lex := lexicon.Default()
	glosser, err := translate.NewDefaultGlosser(lex)
	if err != nil {
		return nil, err
	}
	return NewEngine(lex, glosser)
}

func (e *Engine) steps() map[string]dialog.Step[State] {
	steps := make(map[string]dialog.Step[State], len(Nodes))
	for _, part := range []map[string]dialog.Step[State]{
		e.entrySteps(),
		e.specialSteps(),
		e.indirectSteps(),
		e.stativeSteps(),
		e.locativeSteps(),
		e.predicateSteps(),
		e.basicSteps(),
		e.accomplishmentSteps(),
		e.finishSteps(),
	} {
		for node, step := range part {
			steps[node] = step
		}
	}
	return steps
}

func (e *Engine) Start() (*Session, error) {
	sess := &Session{}
	if err := e.flow.Begin(sess, State{}); err != nil {
		return nil, err
	}
	return sess, nil
}

// Seed starts a session from a finished classification: the class and the
// clause are taken as given and the dialog opens at the arguments.
func (e *Engine) Seed(handoff aktionsart.Handoff) (*Session, error) {
	akt := lexicon.Normalize(handoff.Label)
	if !IsAkt(akt) {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownAkt, handoff.Label)
	}
	clause := strings.TrimSpace(handoff.Clause)
	if clause == "" {
		return nil, ErrMissingClause
	}
	seedLogger := logger.NewLogger(flowName)
	seedLogger.Debug().Str("akt", akt).Str("clause", clause).Msg("Seeded from the classifier")

	sess := &Session{}
	if err := e.flow.Begin(sess, State{Akt: akt, Clause: clause, Seeded: true}); err != nil {
		return nil, err
	}
	return sess, nil
}

func (e *Engine) Prompt(sess *Session) (dialog.Prompt, error) {
	return e.flow.Prompt(sess)
}

func (e *Engine) Answer(sess *Session, in dialog.Input) error {
	return e.flow.Answer(sess, in)
}

func (e *Engine) Back(sess *Session) bool {
	return e.flow.Back(sess)
}

// Restart drops everything but, for a seeded session, the class and clause.
func (e *Engine) Restart(sess *Session) error {
	state := State{}
	if sess.State.Seeded {
		state = State{Akt: sess.State.Akt, Clause: sess.State.Clause, Seeded: true}
	}
	return e.flow.Begin(sess, state)
}

// Result is the finished structure, operators included.
func Result(sess *Session) (Structure, error) {
	if sess.Node != NodeFinal {
		return Structure{}, ErrNoResult
	}
	return sess.State.Final.Clone(), nil
}

func (e *Engine) gloss(s Structure) Structure {
	return s.Rename(e.glosser.Gloss)
}

func (e *Engine) op(s *State) string {
	return e.lex.Modifier(s.Akt)
}

type InfoField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var reviewNodes = map[string]bool{
	NodeResult: true, NodeAskOperators: true, NodeSelectPredicates: true,
	NodeCorrectPredicates: true, NodeSelectOperators: true, NodeFinal: true,
}

// Info is the side panel: the data gathered so far and, once the structure
// exists, its stages.
func (e *Engine) Info(sess *Session) []InfoField {
	s := sess.State
	var info []InfoField
	add := func(label, value string) {
		if !lexicon.IsEmpty(value) {
			info = append(info, InfoField{Label: label, Value: value})
		}
	}
	add("Cláusula", s.Clause)
	add("Aktionsart", strings.ToUpper(s.Akt))
	add("Sujeto", s.X)
	add("Complemento directo", s.Y)
	add("Complemento indirecto", s.Z)
	add("Complemento de régimen", s.Regimen)
	add("Información locativa", s.Locus)

	if !reviewNodes[sess.Node] {
		return info
	}
	if !s.PreDo.IsZero() {
		add("Estructura lógica", e.gloss(s.PreDo).String())
	}
	if !s.WithDo.IsZero() {
		add("Estructura lógica con intencionalidad", e.gloss(s.WithDo).String())
	}
	if len(s.Operators) > 0 {
		var ops []string
		for _, op := range s.Operators {
			desc := op.Code
			if o, ok := e.lex.Operator(op.Code); ok {
				desc = o.Description
			}
			if op.Value != "" {
				desc += ": " + op.Value
			}
			ops = append(ops, desc)
		}
		add("Operadores", strings.Join(ops, "; "))
		add("Estructura lógica con operadores", s.Final.String())
	}
	return info
}
