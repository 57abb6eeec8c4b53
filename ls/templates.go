package ls

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"sort"
	"strings"
)

// secondArg picks the single argument after x: y wins, then the locus, then
// none. Both at once cannot be expressed by the simple templates.
func secondArg(x, y, locus string) ([]string, bool) {
	switch {
	case !lexicon.IsEmpty(y) && lexicon.IsEmpty(locus):
		return []string{x, y}, true
	case lexicon.IsEmpty(y) && !lexicon.IsEmpty(locus):
		return []string{x, locus}, true
	case lexicon.IsEmpty(y) && lexicon.IsEmpty(locus):
		return []string{x}, true
	}
	return nil, false
}

// NonCausative is OP pred' (x, y), OP pred' (x, locus) or OP pred' (x).
func NonCausative(x, y, locus, pred, op string) (Expr, bool) {
	args, ok := secondArg(x, y, locus)
	if !ok {
		return Expr{}, false
	}
	return Modify(op, Pred(pred, args...)), true
}

// ActivityOf is OP do' (x, [pred' (...)]) with the same argument choice as
// NonCausative.
func ActivityOf(x, y, locus, pred, op string) (Expr, bool) {
	args, ok := secondArg(x, y, locus)
	if !ok {
		return Expr{}, false
	}
	return Modify(op, Activity(x, Pred(pred, args...))), true
}

// Causative is [do' (x, Ø)] CAUSE [OP pred' (y)]; it needs a causee.
func Causative(x, y, pred, op string) (Expr, bool) {
	if lexicon.IsEmpty(y) {
		return Expr{}, false
	}
	return Cause(Causer(x), Modify(op, Pred(pred, y))), true
}

// CausativeActivity is [do' (x, Ø)] CAUSE [OP do' (y, [pred' (y)])].
func CausativeActivity(x, y, pred, op string) (Expr, bool) {
	if lexicon.IsEmpty(y) {
		return Expr{}, false
	}
	return Cause(Causer(x), Modify(op, Activity(y, Pred(pred, y)))), true
}

// Intentional wraps the whole structure in DO (...).
func Intentional(s Structure) Structure {
	return s.Wrap(Intend)
}

// Anticausative adds the unspecified cause [do' (Ø, Ø)] CAUSE [...].
func Anticausative(s Structure) Structure {
	return s.Wrap(func(body Expr) Expr {
		return Cause(Causer(lexicon.Empty), body)
	})
}

// NormalizeOperators validates the selection against the catalog, upper-cases
// the values and orders the layers by catalog position, so that the first
// catalog entries end up outermost.
func NormalizeOperators(lex *lexicon.Lexicon, selected []OperatorValue) ([]OperatorValue, error) {
	ops := make([]OperatorValue, 0, len(selected))
	seen := make(map[string]bool)
	for _, sel := range selected {
		op, ok := lex.Operator(sel.Code)
		if !ok {
			return nil, fmt.Errorf("unknown operator '%s'", sel.Code)
		}
		if seen[op.Code] {
			continue
		}
		seen[op.Code] = true

		value := ""
		if op.TakesValue {
			value = strings.ToUpper(strings.TrimSpace(sel.Value))
			if op.Code == "STA" && value == "NEG" {
				value = "NEG +"
			}
		}
		ops = append(ops, OperatorValue{Code: op.Code, Value: value})
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return lex.OperatorIndex(ops[i].Code) < lex.OperatorIndex(ops[j].Code)
	})
	return ops, nil
}

// WithOperators layers the operators around the structure. The marker stays
// right after the bracketed body, inside every operator.
func WithOperators(s Structure, ops []OperatorValue) Structure {
	s = s.Clone()
	s.Operators = append([]OperatorValue(nil), ops...)
	return s
}
