package ls

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		s    Structure
		want string
	}{
		{"Plain predicate", New(Pred("alta", "Ana")), "alta' (Ana)"},
		{"Bare constant", New(Apply("do", Pred("llover"))), "do' ([llover'])"},
		{"Activity", New(Modify("SEML", Activity("Pedro", Pred("toser", "Pedro")))), "SEML do' (Pedro, [toser' (Pedro)])"},
		{"Marker", WithMR(Pred("exist", "agua"), MR0), "exist' (agua) [MR0]"},
		{
			"Causative chain",
			New(Purp(
				Cause(Causer("Ana"), Modify("INGR", Not(Pred("have", "Pedro", "el libro")))),
				Pred("have", "Ana", "el libro"),
			)),
			"[do' (Ana, Ø)] CAUSE [INGR NOT have' (Pedro, el libro)] PURP [have' (Ana, el libro)]",
		},
		{
			"Accomplishment",
			New(And(
				Activity("Ana", Pred("comer", "Ana", "pan")),
				Modify("PROC", Pred("being.consumed", "pan")),
				Modify("FIN", Pred("consumed", "pan")),
			)),
			"do' (Ana, [comer' (Ana, pan)]) ∧ PROC being.consumed' (pan) ∧ FIN consumed' (pan)",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.s.String())
		})
	}
}

func TestWrapKeepsMarkerOutside(t *testing.T) {
	s := WithMR(Modify("INGR", Pred("roto", "la ventana")), MR1)

	anti := Anticausative(s)
	require.Equal(t, "[do' (Ø, Ø)] CAUSE [INGR roto' (la ventana)] [MR1]", anti.String())
	require.Equal(t, "INGR roto' (la ventana) [MR1]", s.String())

	hit := WithMR(Activity("Pedro", Pred("hit", "Pedro", "Juan")), MR1)
	require.Equal(t, "DO (do' (Pedro, [hit' (Pedro, Juan)])) [MR1]", Intentional(hit).String())
}

func TestOperators(t *testing.T) {
	lex := lexicon.Default()
	run := New(Pred("run", "Peter"))

	t.Run("First catalog entry is outermost", func(t *testing.T) {
		ops, err := NormalizeOperators(lex, []OperatorValue{{Code: "TNS", Value: "past"}, {Code: "IF", Value: " decl "}})
		require.NoError(t, err)
		require.Equal(t, []OperatorValue{{Code: "IF", Value: "DECL"}, {Code: "TNS", Value: "PAST"}}, ops)
		require.Equal(t, "⟨IF DECL ⟨TNS PAST [run' (Peter)]⟩⟩", WithOperators(run, ops).String())
	})

	t.Run("Marker stays inside the operators", func(t *testing.T) {
		ops, err := NormalizeOperators(lex, []OperatorValue{{Code: "TNS", Value: "PAST"}})
		require.NoError(t, err)
		s := WithOperators(WithMR(Pred("run", "Peter"), MR1), ops)
		require.Equal(t, "⟨TNS PAST [run' (Peter)][MR1]⟩", s.String())
	})

	t.Run("Negative status and internal negation", func(t *testing.T) {
		ops, err := NormalizeOperators(lex, []OperatorValue{{Code: "NEG.INT +", Value: "ignored"}, {Code: "STA", Value: "neg"}})
		require.NoError(t, err)
		require.Equal(t, []OperatorValue{{Code: "STA", Value: "NEG +"}, {Code: "NEG.INT +"}}, ops)
		require.Equal(t, "⟨STA NEG + ⟨NEG.INT + [run' (Peter)]⟩⟩", WithOperators(run, ops).String())
	})

	t.Run("Duplicates count once", func(t *testing.T) {
		ops, err := NormalizeOperators(lex, []OperatorValue{{Code: "ASP", Value: "prog"}, {Code: "ASP", Value: "perf"}})
		require.NoError(t, err)
		require.Equal(t, []OperatorValue{{Code: "ASP", Value: "PROG"}}, ops)
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := NormalizeOperators(lex, []OperatorValue{{Code: "XYZ"}})
		require.Error(t, err)
	})

	t.Run("Markup", func(t *testing.T) {
		ops := []OperatorValue{{Code: "TNS", Value: "PAST"}}
		require.Equal(t, "&lt;<sub>TNS</sub> <i>PAST</i> [<b>run'</b> (Peter)]&gt;", WithOperators(run, ops).Markup())
	})
}

func TestLaTeX(t *testing.T) {
	s := New(Cause(Causer("Ana"), Modify("INGR", Pred("roto", "Ø"))))
	require.Equal(t,
		`$[\mathbf{do'} (\text{Ana}, \varnothing)] \;\text{CAUSE}\; [\;\text{INGR}\; \mathbf{roto'} (\varnothing)]$`,
		s.LaTeX(),
	)
	require.Equal(t, `$\mathbf{be\_here'} (\text{50\%})$`, New(Pred("be_here", "50%")).LaTeX())
}

func TestPredicates(t *testing.T) {
	lex := lexicon.Default()
	s := New(And(
		Activity("Ana", Pred("comer", "Ana", "pan")),
		Modify("PROC", Pred("being.consumed", "pan")),
		Pred("express.question", "Ana"),
		Pred("comer", "Pedro"),
		Pred("roto", "pan"),
	))
	require.Equal(t, []string{"comer", "roto"}, s.Predicates(lex.IsKeyword))

	renamed := s.RenamePredicate("comer", "eat")
	require.Equal(t, []string{"eat", "roto"}, renamed.Predicates(lex.IsKeyword))
	require.Equal(t, []string{"comer", "roto"}, s.Predicates(lex.IsKeyword))
}

func TestClone(t *testing.T) {
	s := WithOperators(WithMR(Activity("Ana", Pred("correr", "Ana")), MR1), []OperatorValue{{Code: "TNS", Value: "PAST"}})
	c := s.Clone()
	c.Body.Args[1].Name = "run"
	c.Operators[0].Value = "FUT"

	if diff := cmp.Diff("⟨TNS PAST [do' (Ana, [correr' (Ana)])][MR1]⟩", s.String()); diff != "" {
		t.Fatalf("original changed (-want +got):\n%s", diff)
	}
}

func TestTemplates(t *testing.T) {
	t.Run("Non-causative slots", func(t *testing.T) {
		body, ok := NonCausative("Ana", "Ø", "Ø", "alta", "")
		require.True(t, ok)
		require.Equal(t, "alta' (Ana)", New(body).String())

		body, ok = NonCausative("Ana", "Ø", "la casa", "be-LOC", "")
		require.True(t, ok)
		require.Equal(t, "be-LOC' (Ana, la casa)", New(body).String())

		body, ok = NonCausative("Pedro", "la puerta", "Ø", "abierto", "BECOME")
		require.True(t, ok)
		require.Equal(t, "BECOME abierto' (Pedro, la puerta)", New(body).String())

		_, ok = NonCausative("Ana", "el libro", "la mesa", "puesto", "")
		require.False(t, ok)
	})

	t.Run("Activity", func(t *testing.T) {
		body, ok := ActivityOf("Pedro", "la pelota", "Ø", "patear", "SEML")
		require.True(t, ok)
		require.Equal(t, "SEML do' (Pedro, [patear' (Pedro, la pelota)])", New(body).String())

		_, ok = ActivityOf("Pedro", "la pelota", "el arco", "patear", "")
		require.False(t, ok)
	})

	t.Run("Causatives need a causee", func(t *testing.T) {
		_, ok := Causative("Ana", "Ø", "roto", "INGR")
		require.False(t, ok)
		body, ok := Causative("Ana", "el vaso", "roto", "INGR")
		require.True(t, ok)
		require.Equal(t, "[do' (Ana, Ø)] CAUSE [INGR roto' (el vaso)]", New(body).String())

		_, ok = CausativeActivity("Ana", "Ø", "correr", "")
		require.False(t, ok)
		body, ok = CausativeActivity("Ana", "Pedro", "correr", "")
		require.True(t, ok)
		require.Equal(t, "[do' (Ana, Ø)] CAUSE [do' (Pedro, [correr' (Pedro)])]", New(body).String())
	})
}
