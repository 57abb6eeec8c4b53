package ls

import (
	"html"
	"strings"
)

// Style decides how each piece of a structure is written out.
type Style struct {
	Constant      func(name string) string
	Keyword       func(keyword string) string
	Argument      func(arg string) string
	Value         func(value string) string
	OpenOperator  func(code string) string
	CloseOperator string
	MR            func(mr string) string
	MRSeparator   string
	Comma         string
	Conjunction   string
	Wrap          func(string) string
}

func identity(s string) string {
	return s
}

func bracketed(mr string) string {
	return "[" + mr + "]"
}

// Plain is the copyable text form, with angle brackets for operators.
var Plain = &Style{
	Constant:      func(name string) string { return name + "'" },
	Keyword:       identity,
	Argument:      identity,
	Value:         identity,
	OpenOperator:  func(code string) string { return "⟨" + code },
	CloseOperator: "⟩",
	MR:            bracketed,
	MRSeparator:   " ",
	Comma:         ", ",
	Conjunction:   " ∧ ",
	Wrap:          identity,
}

// Markup is the HTML fragment shown by clients: constants in bold, operator
// codes subscripted and their values in italics.
var Markup = &Style{
	Constant:      func(name string) string { return "<b>" + html.EscapeString(name) + "'</b>" },
	Keyword:       identity,
	Argument:      html.EscapeString,
	Value:         func(value string) string { return "<i>" + html.EscapeString(value) + "</i>" },
	OpenOperator:  func(code string) string { return "&lt;<sub>" + code + "</sub>" },
	CloseOperator: "&gt;",
	MR:            bracketed,
	MRSeparator:   " ",
	Comma:         ", ",
	Conjunction:   " ∧ ",
	Wrap:          identity,
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
)

// LaTeX is math-mode source.
var LaTeX = &Style{
	Constant: func(name string) string { return `\mathbf{` + latexEscaper.Replace(name) + `'}` },
	Keyword:  func(keyword string) string { return `\;\text{` + keyword + `}\;` },
	Argument: func(arg string) string {
		if arg == "Ø" {
			return `\varnothing`
		}
		return `\text{` + latexEscaper.Replace(arg) + `}`
	},
	Value:         func(value string) string { return `\textit{` + latexEscaper.Replace(value) + `}\;` },
	OpenOperator:  func(code string) string { return `\langle_{\text{` + code + `}}\;` },
	CloseOperator: `\rangle`,
	MR:            func(mr string) string { return `\;[\text{` + mr + `}]` },
	MRSeparator:   " ",
	Comma:         ", ",
	Conjunction:   ` \wedge `,
	Wrap:          func(s string) string { return "$" + s + "$" },
}

func (st *Style) expr(sb *strings.Builder, e Expr) {
	switch e.Kind {
	case KindArg:
		sb.WriteString(st.Argument(e.Name))
	case KindPred:
		sb.WriteString(st.Constant(e.Name))
		if len(e.Args) == 0 {
			return
		}
		sb.WriteString(" (")
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(st.Comma)
			}
			if a.Kind == KindArg {
				sb.WriteString(st.Argument(a.Name))
				continue
			}
			sb.WriteString("[")
			st.expr(sb, a)
			sb.WriteString("]")
		}
		sb.WriteString(")")
	case KindPrefix:
		sb.WriteString(st.Keyword(e.Name))
		sb.WriteString(" ")
		st.expr(sb, e.Args[0])
	case KindDo:
		sb.WriteString(st.Keyword(e.Name))
		sb.WriteString(" (")
		st.expr(sb, e.Args[0])
		sb.WriteString(")")
	case KindCause, KindPurp:
		// chains read left to right: [a] CAUSE [b] PURP [c]
		if left := e.Args[0]; left.Kind == KindCause || left.Kind == KindPurp {
			st.expr(sb, left)
			sb.WriteString(" ")
		} else {
			sb.WriteString("[")
			st.expr(sb, left)
			sb.WriteString("] ")
		}
		sb.WriteString(st.Keyword(e.Name))
		sb.WriteString(" [")
		st.expr(sb, e.Args[1])
		sb.WriteString("]")
	case KindAnd:
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(st.Conjunction)
			}
			st.expr(sb, a)
		}
	}
}

// splitPlus separates the trailing "+" of codes and values such as
// "NEG.INT +" and "NEG +".
func splitPlus(s string) (string, bool) {
	if strings.HasSuffix(s, " +") {
		return strings.TrimSuffix(s, " +"), true
	}
	return s, false
}

func (st *Style) operator(op OperatorValue, inner string) string {
	code, plus := splitPlus(op.Code)
	parts := []string{st.OpenOperator(code)}
	if plus {
		parts = append(parts, st.Value("+"))
	}
	if op.Value != "" {
		value, valuePlus := splitPlus(op.Value)
		parts = append(parts, st.Value(value))
		if valuePlus {
			parts = append(parts, st.Value("+"))
		}
	}
	parts = append(parts, inner)
	return strings.Join(parts, " ") + st.CloseOperator
}
