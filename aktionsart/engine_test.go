package aktionsart

import (
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/morph"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type step struct {
	node  string
	input dialog.Input
}

var peterRan = []step{
	{NodeStart, dialog.Text("Peter ran")},
	{NodeCausativity, dialog.Decline()},
	{NodeCleanup, dialog.No()},
	{NodeMorphAnalysis, dialog.Yes()},
	{NodeStativity, dialog.Yes()},
	{NodePunctuality, dialog.Yes()},
	{NodeTelicity, dialog.Yes()},
	{NodeDynamicity, dialog.Yes()},
}

var catBrokeVase = []step{
	{NodeStart, dialog.Text("The cat broke the vase")},
	{NodeCausativity, dialog.Text("the cat caused the vase to break")},
	{NodeVerifyCause, dialog.Yes()},
	{NodeBasicEvent, dialog.Text("the vase broke")},
	{NodeCleanup, dialog.No()},
	{NodeMorphAnalysis, dialog.Yes()},
	{NodeStativity, dialog.Yes()},
	{NodePunctuality, dialog.No()},
	{NodeTelicity, dialog.No()},
}

func run(t *testing.T, engine *Engine, steps []step) *Session {
	sess, err := engine.Start()
	require.NoError(t, err)
	for _, s := range steps {
		require.Equal(t, s.node, sess.Node)
		require.NoError(t, engine.Answer(sess, s.input), s.node)
	}
	return sess
}

func TestEndToEnd(t *testing.T) {
	engine, err := NewDefaultEngine(English)
	require.NoError(t, err)

	t.Run("Peter ran", func(t *testing.T) {
		sess := run(t, engine, peterRan)
		require.Equal(t, NodeResult, sess.Node)

		handoff, err := Result(sess)
		require.NoError(t, err)
		require.Equal(t, Handoff{Label: "activity", Clause: "Peter ran"}, handoff)
	})

	t.Run("The cat broke the vase", func(t *testing.T) {
		sess := run(t, engine, catBrokeVase)
		require.Equal(t, NodeResult, sess.Node)
		require.Nil(t, sess.State.Features.Dynamic)
		require.Equal(t, "the vase broke", sess.State.NonCausativeVariant)
		require.Equal(t, "break", sess.State.Lemma)

		handoff, err := Result(sess)
		require.NoError(t, err)
		require.Equal(t, "causative achievement", handoff.Label)
		require.Equal(t, "The cat broke the vase", handoff.Clause)

		prompt, err := engine.Prompt(sess)
		require.NoError(t, err)
		require.Equal(t, dialog.KindResult, prompt.Kind)
		require.Equal(t, "causative achievement", prompt.Result)
		require.Equal(t, []string{"[+causative]", "[-stative]", "[+punctual]", "[+telic]"}, StatusOf(sess).Features)
	})

	t.Run("No result before the end", func(t *testing.T) {
		sess, err := engine.Start()
		require.NoError(t, err)
		_, err = Result(sess)
		require.ErrorIs(t, err, ErrNoResult)
	})
}

func TestBackIsInverse(t *testing.T) {
	engine, err := NewDefaultEngine(English)
	require.NoError(t, err)

	for name, steps := range map[string][]step{"Peter ran": peterRan, "The cat broke the vase": catBrokeVase} {
		t.Run(name, func(t *testing.T) {
			sess, err := engine.Start()
			require.NoError(t, err)
			for _, s := range steps {
				before := *sess
				before.State = sess.State.Clone()
				history := len(sess.History)

				require.NoError(t, engine.Answer(sess, s.input))
				require.True(t, engine.Back(sess))
				require.Equal(t, before.Node, sess.Node)
				require.Len(t, sess.History, history)
				if diff := cmp.Diff(before.State, sess.State); diff != "" {
					t.Fatalf("state after back at %s (-want +got):\n%s", s.node, diff)
				}

				require.NoError(t, engine.Answer(sess, s.input))
			}
		})
	}

	t.Run("Back at the start does nothing", func(t *testing.T) {
		sess, err := engine.Start()
		require.NoError(t, err)
		require.False(t, engine.Back(sess))
		require.Equal(t, NodeStart, sess.Node)
	})
}

func TestFeatureRollback(t *testing.T) {
	engine, err := NewDefaultEngine(English)
	require.NoError(t, err)
	sess := run(t, engine, peterRan[:6])
	require.Equal(t, NodeTelicity, sess.Node)
	require.NotNil(t, sess.State.Features.Punctual)

	require.True(t, engine.Back(sess))
	require.Equal(t, NodePunctuality, sess.Node)
	require.Nil(t, sess.State.Features.Punctual)
	require.NotNil(t, sess.State.Features.Stative)

	require.NoError(t, engine.Restart(sess))
	require.Equal(t, NodeStart, sess.Node)
	require.Empty(t, sess.History)
	require.Equal(t, Features{}, sess.State.Features)
}

func TestManualEntry(t *testing.T) {
	engine, err := NewEngine(English, lexicon.Default(), morph.Unavailable{})
	require.NoError(t, err)

	sess := run(t, engine, []step{
		{NodeStart, dialog.Text("Mary knows English yesterday")},
		{NodeCausativity, dialog.Text("")},
		{NodeCleanup, dialog.Yes()},
		{NodeFixCleanup, dialog.Text("Mary knows English")},
	})
	require.Equal(t, NodeManualMorph, sess.Node)
	require.Equal(t, "Mary knows English", sess.State.CleanClause)

	prompt, err := engine.Prompt(sess)
	require.NoError(t, err)
	require.Equal(t, dialog.KindForm, prompt.Kind)
	require.Len(t, prompt.Fields, 6)
	require.Len(t, prompt.Fields[5].Options, 6)

	t.Run("Unknown person is rejected", func(t *testing.T) {
		err := engine.Answer(sess, dialog.Form(map[string]string{FieldPerson: "4x"}))
		_, ok := dialog.IsInvalid(err)
		require.True(t, ok)
		require.Equal(t, NodeManualMorph, sess.Node)
	})

	require.NoError(t, engine.Answer(sess, dialog.Form(map[string]string{
		FieldInfinitive: "know",
		FieldGerund:     "knowing",
		FieldParticiple: "known",
		FieldSubject:    "Mary",
		FieldPostverbal: "English",
		FieldPerson:     "3s",
	})))
	require.Equal(t, NodeStativity, sess.Node)
	require.NoError(t, engine.Answer(sess, dialog.No()))

	handoff, err := Result(sess)
	require.NoError(t, err)
	require.Equal(t, "state", handoff.Label)
}

func TestDiagnosticFrames(t *testing.T) {
	t.Run("English", func(t *testing.T) {
		engine, err := NewDefaultEngine(English)
		require.NoError(t, err)
		sess := run(t, engine, peterRan[:5])
		require.Equal(t, NodePunctuality, sess.Node)

		prompt, err := engine.Prompt(sess)
		require.NoError(t, err)
		require.Contains(t, prompt.Lines, "Peter was running for an hour.")

		require.NoError(t, engine.Answer(sess, dialog.Yes()))
		prompt, err = engine.Prompt(sess)
		require.NoError(t, err)
		require.Equal(t, "Imagine that Peter is running and suddenly Peter stopped running.", prompt.Lines[0])
		require.Equal(t, "Would it then be true to say: Peter has run?", prompt.Question)
	})

	t.Run("Spanish", func(t *testing.T) {
		engine, err := NewDefaultEngine(Spanish)
		require.NoError(t, err)
		sess := run(t, engine, []step{
			{NodeStart, dialog.Text("Pedro corrió hasta su casa")},
			{NodeCausativity, dialog.Decline()},
			{NodeCleanup, dialog.No()},
		})
		require.Equal(t, NodeMorphAnalysis, sess.Node)
		require.Equal(t, "correr", sess.State.Lemma)

		require.NoError(t, engine.Answer(sess, dialog.Yes()))
		require.NoError(t, engine.Answer(sess, dialog.Yes()))
		prompt, err := engine.Prompt(sess)
		require.NoError(t, err)
		require.Contains(t, prompt.Lines, "Pedro estuvo corriendo hasta su casa durante una hora.")

		require.NoError(t, engine.Answer(sess, dialog.Yes()))
		prompt, err = engine.Prompt(sess)
		require.NoError(t, err)
		require.Equal(t, "Imagina que Pedro estuviera corriendo hasta su casa y de pronto dejara de correr hasta su casa.", prompt.Lines[0])
		require.True(t, strings.HasSuffix(prompt.Question, "Pedro ha corrido hasta su casa?"))
		require.Equal(t, "Sí", prompt.Yes)
	})
}

func TestLabel(t *testing.T) {
	f := func(stative, punctual, telic, dynamic bool) Features {
		return Features{Stative: flag(stative), Punctual: flag(punctual), Telic: flag(telic), Dynamic: flag(dynamic)}
	}
	cases := []struct {
		features Features
		english  string
		spanish  string
	}{
		{f(true, false, false, false), "state", "estado"},
		{f(true, true, true, true), "state", "estado"},
		{f(false, true, true, false), "achievement", "logro"},
		{f(false, true, false, true), "semelfactive", "semelfactivo"},
		{f(false, false, true, true), "active accomplishment", "realización activa"},
		{f(false, false, false, true), "activity", "actividad"},
		{f(false, false, true, false), "accomplishment", "realización"},
		{f(false, false, false, false), "process", "proceso"},
	}
	feminine := map[string]bool{"realización activa": true, "actividad": true, "realización": true}

	for _, c := range cases {
		t.Run(c.english, func(t *testing.T) {
			require.Equal(t, c.english, Label(c.features, English))
			require.Equal(t, c.spanish, Label(c.features, Spanish))

			causative := c.features.Clone()
			causative.Causative = flag(true)
			require.Equal(t, "causative "+c.english, Label(causative, English))
			suffix := " causativo"
			if feminine[c.spanish] {
				suffix = " causativa"
			}
			require.Equal(t, c.spanish+suffix, Label(causative, Spanish))
		})
	}
}

func TestParseLang(t *testing.T) {
	lang, err := ParseLang("EN")
	require.NoError(t, err)
	require.Equal(t, English, lang)

	lang, err = ParseLang("")
	require.NoError(t, err)
	require.Equal(t, Spanish, lang)

	_, err = ParseLang("fr")
	require.Error(t, err)
}
