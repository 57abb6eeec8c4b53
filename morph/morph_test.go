package morph

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEnglishForms(t *testing.T) {
	lex := lexicon.Default()
	for lemma, want := range map[string][2]string{
		"run":    {"running", "run"},
		"melt":   {"melting", "melted"},
		"tie":    {"tying", "tied"},
		"bake":   {"baking", "baked"},
		"agree":  {"agreeing", "agreed"},
		"hop":    {"hopping", "hopped"},
		"open":   {"opening", "opened"},
		"visit":  {"visiting", "visited"},
		"snow":   {"snowing", "snowed"},
		"arrive": {"arriving", "arrived"},
	} {
		t.Run(lemma, func(t *testing.T) {
			ger, pp := EnglishForms(lex, lemma)
			require.Equal(t, want[0], ger)
			require.Equal(t, want[1], pp)
		})
	}
}

func TestSpanishForms(t *testing.T) {
	lex := lexicon.Default()
	for lemma, want := range map[string][2]string{
		"correr":    {"corriendo", "corrido"},
		"cantar":    {"cantando", "cantado"},
		"construir": {"construyendo", "construido"},
		"seguir":    {"siguiendo", "seguido"},
		"romper":    {"rompiendo", "roto"},
		"decir":     {"diciendo", "dicho"},
		"ir":        {"yendo", "ido"},
	} {
		t.Run(lemma, func(t *testing.T) {
			ger, pp := SpanishForms(lex, lemma)
			require.Equal(t, want[0], ger)
			require.Equal(t, want[1], pp)
		})
	}
}

func TestParticiple(t *testing.T) {
	lex := lexicon.Default()
	cases := []struct {
		in   string
		want string
	}{
		{"abrir", "abierto"},
		{"romperse", "roto"},
		{"Cantar", "cantado"},
		{"comer", "comido"},
		{"describir", "descrito"},
		{"alto", "alto"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Participle(lex, c.in), c.in)
	}
	require.True(t, IsInfinitive("romperse"))
	require.False(t, IsInfinitive("alto"))
}

func TestPerson(t *testing.T) {
	lex := lexicon.Default()

	t.Run("Spanish endings", func(t *testing.T) {
		require.Equal(t, FirstSingular, SpanishPerson("corrí"))
		require.Equal(t, SecondSingular, SpanishPerson("corriste"))
		require.Equal(t, ThirdSingular, SpanishPerson("corrió"))
		require.Equal(t, FirstPlural, SpanishPerson("corrimos"))
		require.Equal(t, ThirdPlural, SpanishPerson("corrieron"))
		require.Equal(t, ThirdSingular, SpanishPerson("está"))
	})

	t.Run("English subjects", func(t *testing.T) {
		require.Equal(t, FirstSingular, EnglishPerson(lex, "I"))
		require.Equal(t, ThirdPlural, EnglishPerson(lex, "they"))
		require.Equal(t, ThirdPlural, EnglishPerson(lex, "the dogs"))
		require.Equal(t, ThirdPlural, EnglishPerson(lex, "Ann and Bob"))
		require.Equal(t, ThirdSingular, EnglishPerson(lex, "Peter"))
		require.Equal(t, ThirdSingular, EnglishPerson(lex, ""))
	})
}

func TestFrames(t *testing.T) {
	data := ClauseData{
		Gerund: "running", Participle: "run", Infinitive: "run",
		Subject: "Peter", Postverbal: "home", PersonNumber: ThirdSingular,
	}
	require.Equal(t, "Peter was running home", data.Progressive(true))
	require.Equal(t, "Peter is running home", data.Progressive(false))
	require.Equal(t, "Peter has run home", data.Perfect())
	require.Equal(t, "Peter stopped running home", data.Stopped())

	data.Subject = ""
	data.Postverbal = ""
	data.PersonNumber = FirstPlural
	require.Equal(t, "were running", data.Progressive(true))
	require.Equal(t, "have run", data.Perfect())
	require.Equal(t, "(subject) stopped running", data.Stopped())

	es := ClauseData{
		Gerund: "corriendo", Participle: "corrido", Infinitive: "correr",
		Subject: "Pedro", Postverbal: "hasta su casa", PersonNumber: ThirdSingular,
	}
	require.Equal(t, "Pedro estuvo corriendo hasta su casa", es.Periphrasis(GerundPreterite))
	require.Equal(t, "Pedro está corriendo hasta su casa", es.Periphrasis(GerundPresent))
	require.Equal(t, "Pedro estuviera corriendo hasta su casa", es.Periphrasis(GerundSubjunctive))
	require.Equal(t, "Pedro ha corrido hasta su casa", es.Periphrasis(PerfectParticiple))
	require.Equal(t, "dejara de correr hasta su casa", es.Periphrasis(QuitInfinitive))
}

func TestAnalyzers(t *testing.T) {
	lex := lexicon.Default()

	t.Run("English", func(t *testing.T) {
		got, ok := NewEnglishAnalyzer(lex).Analyze("The cat broke the vase.")
		require.True(t, ok)
		want := Analysis{
			Verb:  "broke",
			Lemma: "break",
			Clause: ClauseData{
				Gerund: "breaking", Participle: "broken", Infinitive: "break",
				Subject: "The cat", Postverbal: "the vase", PersonNumber: ThirdSingular,
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("analysis mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("English pronoun subject", func(t *testing.T) {
		got, ok := NewEnglishAnalyzer(lex).Analyze("We ran home")
		require.True(t, ok)
		require.Equal(t, "We", got.Clause.Subject)
		require.Equal(t, FirstPlural, got.Clause.PersonNumber)
	})

	t.Run("Spanish with clitics", func(t *testing.T) {
		got, ok := NewSpanishAnalyzer(lex).Analyze("Pedro se rompió la pierna")
		require.True(t, ok)
		require.Equal(t, "romperse", got.Clause.Infinitive)
		require.Equal(t, "rompiendo", got.Clause.Gerund)
		require.Equal(t, "roto", got.Clause.Participle)
		require.Equal(t, "Pedro se", got.Clause.Subject)
		require.Equal(t, "la pierna", got.Clause.Postverbal)
		require.Equal(t, ThirdSingular, got.Clause.PersonNumber)
	})

	t.Run("Nothing to find", func(t *testing.T) {
		_, ok := NewEnglishAnalyzer(lex).Analyze("")
		require.False(t, ok)
		_, ok = Unavailable{}.Analyze("Peter ran")
		require.False(t, ok)
	})
}
