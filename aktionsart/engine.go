package aktionsart

import (
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/carlosgonzalezvergara/vendler/morph"
)

const (
	NodeStart         = "start"
	NodeCausativity   = "causativity"
	NodeVerifyCause   = "verify_cause"
	NodeBasicEvent    = "basic_event"
	NodeCleanup       = "cleanup"
	NodeFixCleanup    = "fix_cleanup"
	NodeMorphAnalysis = "morph_analysis"
	NodeManualMorph   = "manual_morph"
	NodeStativity     = "stativity"
	NodePunctuality   = "punctuality"
	NodeTelicity      = "telicity"
	NodeDynamicity    = "dynamicity"
	NodeResult        = "result"
)

var Nodes = []string{
	NodeStart, NodeCausativity, NodeVerifyCause, NodeBasicEvent, NodeCleanup, NodeFixCleanup,
	NodeMorphAnalysis, NodeManualMorph, NodeStativity, NodePunctuality, NodeTelicity,
	NodeDynamicity, NodeResult,
}

// Manual entry field names.
const (
	FieldInfinitive = "infinitive"
	FieldGerund     = "gerund"
	FieldParticiple = "participle"
	FieldSubject    = "subject"
	FieldPostverbal = "postverbal"
	FieldPerson     = "person"
)

var ErrNoResult = errors.New("the analysis has not reached a result")

type State struct {
	Lang     Lang             `json:"lang"`
	Features Features         `json:"features"`
	Clause   morph.ClauseData `json:"clause"`
	Verb     string           `json:"verb,omitempty"`
	Lemma    string           `json:"lemma,omitempty"`
	Analyzed bool             `json:"analyzed,omitempty"`

	OriginalClause      string `json:"original_clause,omitempty"`
	CurrentClause       string `json:"current_clause,omitempty"`
	CleanClause         string `json:"clean_clause,omitempty"`
	NonCausativeVariant string `json:"non_causative_variant,omitempty"`
	Paraphrase          string `json:"paraphrase,omitempty"`
}

func (s State) Clone() State {
	s.Features = s.Features.Clone()
	return s
}

type Session = dialog.Session[State]

// Engine runs the classifier in one language.
type Engine struct {
	lang     Lang
	texts    *catalog
	persons  map[string]string
	analyzer morph.Analyzer
	flow     *dialog.Flow[State]
}

func NewEngine(lang Lang, lex *lexicon.Lexicon, analyzer morph.Analyzer) (*Engine, error) {
	e := &Engine{lang: lang, analyzer: analyzer}
	switch lang {
	case English:
		e.texts = &englishCatalog
		e.persons = lex.English.Persons
	case Spanish:
		e.texts = &spanishCatalog
		e.persons = lex.Spanish.Persons
	default:
		return nil, fmt.Errorf("unsupported language '%s'", lang)
	}
	if e.analyzer == nil {
		e.analyzer = morph.Unavailable{}
	}

	name := fmt.Sprintf("Aktionsart (%s)", lang)
	e.flow = &dialog.Flow[State]{
		Name:  name,
		Start: NodeStart,
		Nodes: Nodes,
		Steps: e.steps(name),
	}
	if err := e.flow.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewDefaultEngine wires the built-in analyzer for the language.
func NewDefaultEngine(lang Lang) (*Engine, error) {
	lex := lexicon.Default()
	var analyzer morph.Analyzer
	switch lang {
	case English:
		analyzer = morph.NewEnglishAnalyzer(lex)
	case Spanish:
		analyzer = morph.NewSpanishAnalyzer(lex)
	}
	return NewEngine(lang, lex, analyzer)
}

func (e *Engine) Lang() Lang {
	return e.lang
}

func (e *Engine) Start() (*Session, error) {
	sess := &Session{}
	if err := e.flow.Begin(sess, State{Lang: e.lang, Clause: morph.NewClauseData()}); err != nil {
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

func (e *Engine) Restart(sess *Session) error {
	return e.flow.Begin(sess, State{Lang: e.lang, Clause: morph.NewClauseData()})
}

// Handoff is what the classifier passes on to the logical structure builder.
type Handoff struct {
	Label  string `json:"label"`
	Clause string `json:"clause"`
}

func Result(sess *Session) (Handoff, error) {
	if sess.Node != NodeResult {
		return Handoff{}, ErrNoResult
	}
	return Handoff{
		Label:  Label(sess.State.Features, sess.State.Lang),
		Clause: sess.State.OriginalClause,
	}, nil
}

// Status is the side panel: what is known about the clause so far.
type Status struct {
	Clause       string   `json:"clause,omitempty"`
	NonCausative string   `json:"non_causative,omitempty"`
	CleanClause  string   `json:"clean_clause,omitempty"`
	Features     []string `json:"features,omitempty"`
	Result       string   `json:"result,omitempty"`
}

func StatusOf(sess *Session) Status {
	s := sess.State
	status := Status{
		Clause:       s.OriginalClause,
		NonCausative: s.NonCausativeVariant,
		CleanClause:  s.CleanClause,
		Features:     s.Features.Tags(s.Lang),
	}
	if sess.Node == NodeResult {
		status.Result = Label(s.Features, s.Lang)
	}
	return status
}

func (e *Engine) yesNo(title string, lines []string, question string) dialog.Prompt {
	return dialog.Prompt{
		Kind:     dialog.KindYesNo,
		Title:    title,
		Lines:    lines,
		Question: question,
		Yes:      e.texts.yes,
		No:       e.texts.no,
	}
}

func formatAll(formats []string, args ...interface{}) []string {
	lines := make([]string, len(formats))
	for i, f := range formats {
		lines[i] = fmt.Sprintf(f, args...)
	}
	return lines
}

func (e *Engine) personOptions() []dialog.Option {
	var options []dialog.Option
	for _, p := range morph.Persons {
		if label, ok := e.persons[string(p)]; ok {
			options = append(options, dialog.Option{Value: string(p), Label: label})
		}
	}
	return options
}

func (e *Engine) steps(name string) map[string]dialog.Step[State] {
	t := e.texts
	engineLogger := logger.NewLogger(name)

	return map[string]dialog.Step[State]{
		NodeStart: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{Kind: dialog.KindText, Lines: t.startLines, Question: t.startQuestion}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				clause := in.TrimmedText()
				if clause == "" {
					return "", dialog.Invalid(t.startWarning)
				}
				s.OriginalClause = clause
				s.CurrentClause = clause
				return NodeCausativity, nil
			},
		},

		NodeCausativity: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindText,
					Title:    t.causativityTitle,
					Lines:    append([]string{fmt.Sprintf(t.causativityIntro, s.CurrentClause)}, t.causativityModels...),
					Question: t.causativityQuestion,
					Decline:  t.causativityDecline,
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				paraphrase := in.TrimmedText()
				if in.Decline || paraphrase == "" {
					s.Features.Causative = flag(false)
					return NodeCleanup, nil
				}
				s.Paraphrase = paraphrase
				return NodeVerifyCause, nil
			},
		},

		NodeVerifyCause: {
			Prompt: func(s *State) dialog.Prompt {
				paraphrase := lexicon.Capitalize(s.Paraphrase)
				return e.yesNo("",
					append(append([]string{t.verifyIntro}, formatAll(t.verifyCriteria[:2], paraphrase, s.CurrentClause)...), t.verifyCriteria[2]),
					fmt.Sprintf(t.verifyQuestion, paraphrase),
				)
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				if yes {
					return NodeBasicEvent, nil
				}
				s.Features.Causative = flag(false)
				return NodeCleanup, nil
			},
		},

		NodeBasicEvent: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{
					Kind:     dialog.KindText,
					Lines:    append([]string{t.basicEventIntro}, t.basicEventModels...),
					Question: t.basicEventQuestion,
					Decline:  t.basicEventDecline,
				}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				event := in.TrimmedText()
				if in.Decline || event == "" {
					s.Features.Causative = flag(false)
					return NodeCleanup, nil
				}
				s.Features.Causative = flag(true)
				s.NonCausativeVariant = event
				s.CurrentClause = event
				return NodeCleanup, nil
			},
		},

		NodeCleanup: {
			Prompt: func(s *State) dialog.Prompt {
				lines := append([]string{fmt.Sprintf(t.cleanupIntro, s.CurrentClause), t.cleanupNote}, t.cleanupItems...)
				return e.yesNo("", lines, t.cleanupQuestion)
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				if yes {
					return NodeFixCleanup, nil
				}
				s.CleanClause = s.CurrentClause
				return NodeMorphAnalysis, nil
			},
		},

		NodeFixCleanup: {
			Prompt: func(s *State) dialog.Prompt {
				return dialog.Prompt{Kind: dialog.KindText, Question: fmt.Sprintf(t.fixCleanupQuestion, s.CurrentClause)}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				clause := in.TrimmedText()
				if clause == "" {
					return "", dialog.Invalid(t.fixCleanupWarning)
				}
				s.CurrentClause = clause
				s.CleanClause = clause
				return NodeMorphAnalysis, nil
			},
		},

		NodeMorphAnalysis: {
			Enter: func(s *State) string {
				analysis, ok := e.analyzer.Analyze(s.CurrentClause)
				s.Analyzed = ok
				if !ok {
					engineLogger.Debug().Str("clause", s.CurrentClause).Msg("Automatic analysis failed, asking for manual entry")
					return NodeManualMorph
				}
				s.Verb = analysis.Verb
				s.Lemma = analysis.Lemma
				s.Clause = analysis.Clause
				return ""
			},
			Prompt: func(s *State) dialog.Prompt {
				nothing := func(v string) string {
					if v == "" {
						return t.morphNothing
					}
					return v
				}
				values := [6]string{
					lexicon.Normalize(s.Verb), s.Lemma, s.Clause.Gerund, s.Clause.Participle,
					nothing(s.Clause.Subject), nothing(s.Clause.Postverbal),
				}
				lines := []string{t.morphIntro}
				for i, row := range t.morphRows {
					lines = append(lines, row+": "+values[i])
				}
				return e.yesNo("", lines, t.morphQuestion)
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				if yes {
					return NodeStativity, nil
				}
				return NodeManualMorph, nil
			},
		},

		NodeManualMorph: {
			Prompt: func(s *State) dialog.Prompt {
				d := s.Clause
				values := [5]string{d.Infinitive, d.Gerund, d.Participle, d.Subject, d.Postverbal}
				names := [5]string{FieldInfinitive, FieldGerund, FieldParticiple, FieldSubject, FieldPostverbal}
				fields := make([]dialog.Field, 0, 6)
				for i, name := range names {
					fields = append(fields, dialog.Field{
						Name:     name,
						Label:    fmt.Sprintf(t.manualFields[i], s.CurrentClause),
						Value:    values[i],
						Optional: name == FieldSubject || name == FieldPostverbal,
					})
				}
				fields = append(fields, dialog.Field{
					Name:    FieldPerson,
					Label:   t.manualPerson,
					Options: e.personOptions(),
					Value:   string(d.PersonNumber),
				})
				return dialog.Prompt{Kind: dialog.KindForm, Fields: fields}
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				person := morph.Person(in.Field(FieldPerson))
				if person == "" {
					person = s.Clause.PersonNumber
				}
				if !person.Valid() {
					return "", dialog.Invalid(t.personWarning)
				}
				s.Clause = morph.ClauseData{
					Infinitive:   in.Field(FieldInfinitive),
					Gerund:       in.Field(FieldGerund),
					Participle:   in.Field(FieldParticiple),
					Subject:      in.Field(FieldSubject),
					Postverbal:   in.Field(FieldPostverbal),
					PersonNumber: person,
				}
				return NodeStativity, nil
			},
		},

		NodeStativity: {
			Prompt: func(s *State) dialog.Prompt {
				lines := append([]string{t.stativityIntro}, formatAll(t.stativityDialogues, lexicon.Capitalize(s.CurrentClause))...)
				return e.yesNo(t.stativityTitle, lines, fmt.Sprintf(t.stativityQuestion, s.CurrentClause))
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				s.Features.Stative = flag(!yes)
				if yes {
					return NodePunctuality, nil
				}
				return NodeResult, nil
			},
		},

		NodePunctuality: {
			Prompt: func(s *State) dialog.Prompt {
				frame := lexicon.Capitalize(t.durative(s.Clause))
				lines := append([]string{t.punctualityIntro}, formatAll(t.punctualityDuratives, frame)...)
				return e.yesNo(t.punctualityTitle, lines, t.punctualityQuestion)
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				s.Features.Punctual = flag(!yes)
				return NodeTelicity, nil
			},
		},

		NodeTelicity: {
			Prompt: func(s *State) dialog.Prompt {
				imagine := fmt.Sprintf(t.telicityImagine, t.ongoing(s.Clause), t.stopped(s.Clause))
				return e.yesNo(t.telicityTitle, []string{imagine}, fmt.Sprintf(t.telicityQuestion, t.perfect(s.Clause)))
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				s.Features.Telic = flag(!yes)
				// punctual classes are told apart by telicity alone
				if isSet(s.Features.Punctual) {
					return NodeResult, nil
				}
				return NodeDynamicity, nil
			},
		},

		NodeDynamicity: {
			Prompt: func(s *State) dialog.Prompt {
				frame := lexicon.Capitalize(t.manner(s.Clause))
				lines := append([]string{t.dynamicityIntro}, formatAll(t.dynamicityManners, frame)...)
				return e.yesNo(t.dynamicityTitle, lines, t.dynamicityQuestion)
			},
			Answer: func(s *State, in dialog.Input) (string, error) {
				yes, err := in.YesNo()
				if err != nil {
					return "", err
				}
				s.Features.Dynamic = flag(yes)
				return NodeResult, nil
			},
		},

		NodeResult: {
			Prompt: func(s *State) dialog.Prompt {
				label := Label(s.Features, s.Lang)
				return dialog.Prompt{
					Kind:   dialog.KindResult,
					Title:  t.resultTitle,
					Lines:  []string{fmt.Sprintf(t.resultText, s.OriginalClause, label)},
					Result: label,
				}
			},
		},
	}
}
