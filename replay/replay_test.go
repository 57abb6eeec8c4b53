package replay

import (
	"context"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/stretchr/testify/require"
	"testing"
)

const script = `
name: smoke
cases:
  - name: Peter ran
    kind: aktionsart
    lang: en
    answers:
      - text: Peter ran
      - decline: true
      - answer: false
      - answer: true
      - answer: true
      - answer: true
      - answer: true
      - answer: true
    expect:
      node: result
      label: activity
  - name: Wrong label
    kind: aktionsart
    lang: en
    answers:
      - text: Peter ran
      - decline: true
      - answer: false
      - answer: true
      - answer: true
      - answer: true
      - answer: true
      - answer: true
    expect:
      label: state
  - name: Pedro abrió la puerta
    kind: ls
    answers:
      - fields: {aktionsart: realización, clausula: Pedro abrió la puerta}
      - fields: {sujeto: Pedro, cd: la puerta}
      - answer: false
      - answer: false
      - fields: {predicado: abrir, tipo: verbo}
      - answer: false
      - answer: false
      - answer: false
    expect:
      node: final
      structure: "BECOME abierto' (Pedro, la puerta)"
  - name: Seeded
    kind: ls
    seed: {label: logro, clause: Pedro llegó a casa}
    expect:
      node: argumentos
      label: logro
  - name: Rejected answer
    kind: ls
    answers:
      - text: quizá
    expect:
      node: inicio
  - name: Too many answers
    kind: aktionsart
    lang: en
    answers:
      - text: Peter ran
      - decline: true
      - answer: false
      - answer: true
      - answer: true
      - answer: true
      - answer: true
      - answer: true
      - answer: true
    expect:
      label: activity
`

func newRunner(t *testing.T) *Runner {
	lsEngine, err := ls.NewEngine(lexicon.Default(), nil)
	require.NoError(t, err)
	english, err := aktionsart.NewDefaultEngine(aktionsart.English)
	require.NoError(t, err)
	return NewRunner(lsEngine, english)
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(script))
	require.NoError(t, err)
	require.Equal(t, "smoke", s.Name)
	require.Len(t, s.Cases, 6)
	require.Equal(t, aktionsart.Spanish, s.Cases[2].Lang)
	require.Equal(t, dialog.Decline(), s.Cases[0].Answers[1])
	require.Equal(t, dialog.No(), s.Cases[0].Answers[2])
	require.Equal(t, "la puerta", s.Cases[2].Answers[1].Field(ls.FieldObject))
	require.Equal(t, &aktionsart.Handoff{Label: "logro", Clause: "Pedro llegó a casa"}, s.Cases[3].Seed)

	t.Run("Invalid", func(t *testing.T) {
		for name, data := range map[string]string{
			"Empty":             "name: nothing\n",
			"Unknown kind":      "cases:\n  - kind: other\n",
			"Unknown language":  "cases:\n  - kind: aktionsart\n    lang: fr\n",
			"Seeded classifier": "cases:\n  - kind: aktionsart\n    seed: {label: logro, clause: x}\n",
			"Not yaml":          "cases: [",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := ParseScript([]byte(data))
				require.Error(t, err)
			})
		}
		_, err := ParseScript([]byte("name: nothing\n"))
		require.ErrorIs(t, err, ErrEmptyScript)
	})
}

func TestRun(t *testing.T) {
	s, err := ParseScript([]byte(script))
	require.NoError(t, err)
	report := newRunner(t).Run(context.Background(), s)

	require.Equal(t, "smoke", report.Script)
	require.Equal(t, Summary{Total: 6, Passed: 3, Failed: 3}, report.Summary)
	require.Len(t, report.Cases, 6)

	byName := make(map[string]CaseResult)
	for _, c := range report.Cases {
		byName[c.Name] = c
	}

	t.Run("Passing", func(t *testing.T) {
		for _, name := range []string{"Peter ran", "Pedro abrió la puerta", "Seeded"} {
			require.True(t, byName[name].Passed, name)
			require.Empty(t, byName[name].Error)
			require.Nil(t, byName[name].Diff)
		}
		require.Equal(t, Outcome{Node: ls.NodeFinal, Label: "realización", Structure: "BECOME abierto' (Pedro, la puerta)"}, byName["Pedro abrió la puerta"].Actual)
		require.Equal(t, 8, byName["Pedro abrió la puerta"].Steps)
	})

	t.Run("Mismatch", func(t *testing.T) {
		c := byName["Wrong label"]
		require.False(t, c.Passed)
		require.Empty(t, c.Error)
		require.JSONEq(t, `{"label":"activity"}`, string(c.Diff))
	})

	t.Run("Rejected answer", func(t *testing.T) {
		c := byName["Rejected answer"]
		require.False(t, c.Passed)
		require.Contains(t, c.Error, "answer 1 at 'inicio'")
		require.Equal(t, 0, c.Steps)
		require.Equal(t, ls.NodeStart, c.Actual.Node)
	})

	t.Run("Too many answers", func(t *testing.T) {
		c := byName["Too many answers"]
		require.False(t, c.Passed)
		require.Contains(t, c.Error, dialog.ErrFinished.Error())
		require.Equal(t, 8, c.Steps)
		require.Equal(t, "activity", c.Actual.Label)
	})
}

func TestRunCanceled(t *testing.T) {
	s, err := ParseScript([]byte(script))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := newRunner(t).Run(ctx, s)
	require.Equal(t, Summary{Total: 6, Failed: 6}, report.Summary)
	for _, c := range report.Cases {
		require.Equal(t, context.Canceled.Error(), c.Error)
	}
}

func TestMissingClassifier(t *testing.T) {
	s, err := ParseScript([]byte("cases:\n  - kind: aktionsart\n    lang: es\n    expect: {node: start}\n"))
	require.NoError(t, err)
	report := newRunner(t).Run(context.Background(), s)
	require.Equal(t, 1, report.Summary.Failed)
	require.Contains(t, report.Cases[0].Error, "no classifier")
}
