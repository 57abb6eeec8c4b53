package ls

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"strings"
)

type Kind string

const (
	KindArg    Kind = "arg"
	KindPred   Kind = "pred"
	KindPrefix Kind = "prefix"
	KindDo     Kind = "do"
	KindCause  Kind = "cause"
	KindPurp   Kind = "purp"
	KindAnd    Kind = "and"
)

// Expr is a node of a logical structure. Arguments carry their text in Name;
// predicates their constant and arguments; prefixes (INGR, NOT, FIN...) their
// keyword and a single operand; the connectives their operands.
type Expr struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name,omitempty"`
	Args []Expr `json:"args,omitempty"`
}

func Arg(text string) Expr {
	return Expr{Kind: KindArg, Name: text}
}

// Pred applies a constant to plain arguments: Pred("have", "Ana", "Ø") is
// have' (Ana, Ø).
func Pred(name string, args ...string) Expr {
	e := Expr{Kind: KindPred, Name: name}
	for _, a := range args {
		e.Args = append(e.Args, Arg(a))
	}
	return e
}

// Apply is Pred with arbitrary operands; non-argument operands are printed in
// square brackets.
func Apply(name string, args ...Expr) Expr {
	return Expr{Kind: KindPred, Name: name, Args: args}
}

// Activity is do' (x, [inner]).
func Activity(x string, inner Expr) Expr {
	return Apply("do", Arg(x), inner)
}

// Modify puts an aspectual or polarity prefix in front of e; an empty keyword
// leaves e as is.
func Modify(keyword string, e Expr) Expr {
	if keyword == "" {
		return e
	}
	return Expr{Kind: KindPrefix, Name: keyword, Args: []Expr{e}}
}

func Not(e Expr) Expr {
	return Modify("NOT", e)
}

// Intend is the DO (...) layer of intentional action.
func Intend(e Expr) Expr {
	return Expr{Kind: KindDo, Name: "DO", Args: []Expr{e}}
}

func Cause(cause, effect Expr) Expr {
	return Expr{Kind: KindCause, Name: "CAUSE", Args: []Expr{cause, effect}}
}

func Purp(action, purpose Expr) Expr {
	return Expr{Kind: KindPurp, Name: "PURP", Args: []Expr{action, purpose}}
}

func And(conjuncts ...Expr) Expr {
	return Expr{Kind: KindAnd, Args: conjuncts}
}

// Causer is the [do' (x, Ø)] half of a causative.
func Causer(x string) Expr {
	return Pred("do", x, lexicon.Empty)
}

func (e Expr) IsZero() bool {
	return e.Kind == ""
}

func (e Expr) Clone() Expr {
	if e.Args != nil {
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = a.Clone()
		}
		e.Args = args
	}
	return e
}

// Rename returns a copy of e with every predicate constant passed through fn.
func (e Expr) Rename(fn func(string) string) Expr {
	e = e.Clone()
	e.rename(fn)
	return e
}

func (e *Expr) rename(fn func(string) string) {
	if e.Kind == KindPred {
		e.Name = fn(e.Name)
	}
	for i := range e.Args {
		e.Args[i].rename(fn)
	}
}

func (e Expr) walk(fn func(Expr)) {
	fn(e)
	for _, a := range e.Args {
		a.walk(fn)
	}
}

type OperatorValue struct {
	Code  string `json:"code" yaml:"code"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Structure is a logical structure with the macrorole marker and the operator
// layers kept apart from the body, so wrapping the body never moves them.
type Structure struct {
	Body      Expr            `json:"body"`
	MR        string          `json:"mr,omitempty"`
	Operators []OperatorValue `json:"operators,omitempty"`
}

// MR markers.
const (
	MR0 = "MR0"
	MR1 = "MR1"
)

func New(body Expr) Structure {
	return Structure{Body: body}
}

func WithMR(body Expr, mr string) Structure {
	return Structure{Body: body, MR: mr}
}

func (s Structure) IsZero() bool {
	return s.Body.IsZero()
}

func (s Structure) Clone() Structure {
	s.Body = s.Body.Clone()
	if s.Operators != nil {
		s.Operators = append([]OperatorValue(nil), s.Operators...)
	}
	return s
}

// Wrap replaces the body with fn(body); the marker stays outside.
func (s Structure) Wrap(fn func(Expr) Expr) Structure {
	s = s.Clone()
	s.Body = fn(s.Body)
	return s
}

func (s Structure) Rename(fn func(string) string) Structure {
	s = s.Clone()
	s.Body = s.Body.Rename(fn)
	return s
}

// RenamePredicate replaces one constant everywhere it occurs.
func (s Structure) RenamePredicate(old, new string) Structure {
	return s.Rename(func(name string) string {
		if name == old {
			return new
		}
		return name
	})
}

// Predicates lists, in order of appearance and without repetitions, the
// constants that are not RRG vocabulary. A constant whose first dotted part is
// vocabulary (express.question) does not count either.
func (s Structure) Predicates(isKeyword func(string) bool) []string {
	var preds []string
	seen := make(map[string]bool)
	s.Body.walk(func(e Expr) {
		if e.Kind != KindPred || seen[e.Name] {
			return
		}
		if isKeyword(e.Name) || isKeyword(lexicon.Stem(e.Name)) {
			return
		}
		seen[e.Name] = true
		preds = append(preds, e.Name)
	})
	return preds
}

func (s Structure) String() string {
	return s.Render(Plain)
}

func (s Structure) Markup() string {
	return s.Render(Markup)
}

func (s Structure) LaTeX() string {
	return s.Render(LaTeX)
}

func (s Structure) Render(st *Style) string {
	var sb strings.Builder
	if len(s.Operators) == 0 {
		st.expr(&sb, s.Body)
		if s.MR != "" {
			sb.WriteString(st.MRSeparator)
			sb.WriteString(st.MR(s.MR))
		}
		return st.Wrap(sb.String())
	}

	sb.WriteString("[")
	st.expr(&sb, s.Body)
	sb.WriteString("]")
	if s.MR != "" {
		sb.WriteString(st.MR(s.MR))
	}
	result := sb.String()
	for i := len(s.Operators) - 1; i >= 0; i-- {
		result = st.operator(s.Operators[i], result)
	}
	return st.Wrap(result)
}
