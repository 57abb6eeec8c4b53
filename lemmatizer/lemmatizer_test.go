package lemmatizer

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEnglishAnalyzer(t *testing.T) {
	analyze := NewMorphologicalAnalyzer(NewEnglishRules(lexicon.Default()))

	for form, lemma := range map[string]string{
		"ran":     "run",
		"broke":   "break",
		"knows":   "know",
		"melted":  "melt",
		"stopped": "stop",
		"cried":   "cry",
		"Arrived": "arrive",
		"walk":    "walk",
	} {
		t.Run(form, func(t *testing.T) {
			got, ok := analyze(form)
			require.True(t, ok)
			require.Equal(t, lemma, got)
		})
	}

	t.Run("Not a verb", func(t *testing.T) {
		for _, form := range []string{"peter", "vase", "the", ""} {
			_, ok := analyze(form)
			require.False(t, ok, form)
		}
	})
}

func TestSpanishAnalyzer(t *testing.T) {
	analyze := NewMorphologicalAnalyzer(NewSpanishRules(lexicon.Default()))

	for form, lemma := range map[string]string{
		"corrió":     "correr",
		"rompió":     "romper",
		"estuvieron": "estar",
		"hizo":       "hacer",
		"caminaron":  "caminar",
		"sabe":       "saber",
		"murió":      "morir",
		"caminé":     "caminar",
	} {
		t.Run(form, func(t *testing.T) {
			got, ok := analyze(form)
			require.True(t, ok)
			require.Equal(t, lemma, got)
		})
	}

	t.Run("Long words sharing a stem", func(t *testing.T) {
		_, ok := analyze("supermercado")
		require.False(t, ok)
	})
}
