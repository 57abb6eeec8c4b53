package ls

import (
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"strings"
)

// Aktionsart classes as the classifier labels them in Spanish.
const (
	AktState                         = "estado"
	AktCausativeState                = "estado causativo"
	AktActivity                      = "actividad"
	AktCausativeActivity             = "actividad causativa"
	AktSemelfactive                  = "semelfactivo"
	AktCausativeSemelfactive         = "semelfactivo causativo"
	AktAchievement                   = "logro"
	AktCausativeAchievement          = "logro causativo"
	AktProcess                       = "proceso"
	AktCausativeProcess              = "proceso causativo"
	AktAccomplishment                = "realización"
	AktCausativeAccomplishment       = "realización causativa"
	AktActiveAccomplishment          = "realización activa"
	AktCausativeActiveAccomplishment = "realización activa causativa"
)

// AktClasses is the display order: each class next to its causative.
var AktClasses = []string{
	AktState, AktCausativeState, AktActivity, AktCausativeActivity,
	AktSemelfactive, AktCausativeSemelfactive, AktAchievement, AktCausativeAchievement,
	AktProcess, AktCausativeProcess, AktAccomplishment, AktCausativeAccomplishment,
	AktActiveAccomplishment, AktCausativeActiveAccomplishment,
}

func IsAkt(label string) bool {
	for _, akt := range AktClasses {
		if akt == label {
			return true
		}
	}
	return false
}

func isCausative(akt string) bool {
	return strings.HasSuffix(akt, " causativo") || strings.HasSuffix(akt, " causativa")
}

func isActiveAccomplishment(akt string) bool {
	return akt == AktActiveAccomplishment || akt == AktCausativeActiveAccomplishment
}

func oneOf(akt string, set ...string) bool {
	for _, v := range set {
		if akt == v {
			return true
		}
	}
	return false
}

// Place of a locative argument relative to the motion.
const (
	PlaceSource      = "procedencia"
	PlaceDestination = "destino"
)

type State struct {
	Akt    string `json:"akt,omitempty"`
	Clause string `json:"clause,omitempty"`
	Seeded bool   `json:"seeded,omitempty"`

	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
	Z string `json:"z,omitempty"`

	Locus        string `json:"locus,omitempty"`
	Regimen      string `json:"regimen,omitempty"`
	Interlocutor string `json:"interlocutor,omitempty"`
	Dynamic      *bool  `json:"dynamic,omitempty"`
	ResultClause string `json:"result_clause,omitempty"`
	Pred         string `json:"pred,omitempty"`
	Lemma        string `json:"lemma,omitempty"`
	BodyPart     bool   `json:"body_part,omitempty"`
	Place        string `json:"place,omitempty"`

	Structure  Structure `json:"structure"`
	PreDo      Structure `json:"pre_do"`
	WithDo     Structure `json:"with_do"`
	Reciprocal bool      `json:"reciprocal,omitempty"`

	Glossed    Structure       `json:"glossed"`
	Predicates []string        `json:"predicates,omitempty"`
	Editing    []string        `json:"editing,omitempty"`
	EditIndex  int             `json:"edit_index,omitempty"`
	Operators  []OperatorValue `json:"operators,omitempty"`
	Final      Structure       `json:"final"`

	Failure []string `json:"failure,omitempty"`
}

func (s State) Clone() State {
	if s.Dynamic != nil {
		dynamic := *s.Dynamic
		s.Dynamic = &dynamic
	}
	s.Structure = s.Structure.Clone()
	s.PreDo = s.PreDo.Clone()
	s.WithDo = s.WithDo.Clone()
	s.Glossed = s.Glossed.Clone()
	s.Final = s.Final.Clone()
	s.Predicates = cloneStrings(s.Predicates)
	s.Editing = cloneStrings(s.Editing)
	s.Failure = cloneStrings(s.Failure)
	if s.Operators != nil {
		s.Operators = append([]OperatorValue(nil), s.Operators...)
	}
	return s
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v...)
}

func (s *State) dynamic() bool {
	return s.Dynamic != nil && *s.Dynamic
}

func (s *State) causative() bool {
	return isCausative(s.Akt)
}

// setPred records a typed infinitive as the predicate.
func (s *State) setPred(text string) {
	s.Pred = lexicon.Predicate(text)
	s.Lemma = s.Pred
}

// in looks the predicate up by its constant first and by the infinitive it
// came from second.
func (s *State) in(c lexicon.Classifier, class string) bool {
	return c.In(class, s.Pred) || (s.Lemma != "" && c.In(class, s.Lemma))
}

func (s *State) lookup(c lexicon.Classifier) (string, bool) {
	if class, ok := c.Lookup(s.Pred); ok {
		return class, true
	}
	if s.Lemma == "" {
		return "", false
	}
	return c.Lookup(s.Lemma)
}

// build installs the structure and moves on to the intentionality check.
func (s *State) build(st Structure) string {
	s.Structure = st
	s.PreDo = st.Clone()
	return NodeIntentionality
}

func (s *State) fail(lines ...string) string {
	s.Failure = lines
	return NodeError
}

type Session = dialog.Session[State]
