package morph

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/lemmatizer"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"strings"
	"unicode"
)

type Analysis struct {
	Verb   string     `json:"verb"`
	Lemma  string     `json:"lemma"`
	Clause ClauseData `json:"clause"`
}

// Analyzer finds the main verb of a clause. A false result is not an error:
// callers fall back to manual entry.
type Analyzer interface {
	Analyze(clause string) (Analysis, bool)
}

type token struct {
	text  string
	begin int
	end   int
}

// words splits on anything that is neither a letter, a digit nor an apostrophe,
// keeping byte offsets so the spans around the verb can be cut from the input.
func words(clause string) []token {
	var tokens []token
	start := -1
	for i, r := range clause {
		inWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
		switch {
		case inWord && start < 0:
			start = i
		case !inWord && start >= 0:
			tokens = append(tokens, token{clause[start:i], start, i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{clause[start:], start, len(clause)})
	}
	return tokens
}

func trimSpan(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) && r != '\''
	})
}

type englishAnalyzer struct {
	lex         *lexicon.Lexicon
	lemmatize   lemmatizer.MorphologicalAnalyzer
	determiners map[string]bool
}

func NewEnglishAnalyzer(lex *lexicon.Lexicon) Analyzer {
	a := &englishAnalyzer{
		lex:         lex,
		lemmatize:   lemmatizer.NewMorphologicalAnalyzer(lemmatizer.NewEnglishRules(lex)),
		determiners: make(map[string]bool),
	}
	for _, d := range lex.English.Determiners {
		a.determiners[d] = true
	}
	return a
}

func (a *englishAnalyzer) Analyze(clause string) (Analysis, bool) {
	morphLogger := logger.NewLogger("English analyzer")
	tokens := words(clause)
	for i, tok := range tokens {
		lower := lexicon.Normalize(tok.text)
		if a.determiners[lower] {
			continue
		}
		if _, isPronoun := a.lex.English.Pronouns[lower]; isPronoun && i == 0 {
			continue
		}
		lemma, ok := a.lemmatize(lower)
		if !ok {
			continue
		}

		data := NewClauseData()
		data.Infinitive = lemma
		data.Gerund, data.Participle = EnglishForms(a.lex, lemma)
		data.Subject = trimSpan(clause[:tok.begin])
		data.Postverbal = trimSpan(clause[tok.end:])
		data.PersonNumber = EnglishPerson(a.lex, data.Subject)
		morphLogger.Debug().Str("verb", tok.text).Str("lemma", lemma).Msg("Found verb")
		return Analysis{Verb: tok.text, Lemma: lemma, Clause: data}, true
	}
	morphLogger.Debug().Str("clause", clause).Msg("No verb found")
	return Analysis{}, false
}

type spanishAnalyzer struct {
	lex         *lexicon.Lexicon
	lemmatize   lemmatizer.MorphologicalAnalyzer
	clitics     map[string]bool
	determiners map[string]bool
}

func NewSpanishAnalyzer(lex *lexicon.Lexicon) Analyzer {
	a := &spanishAnalyzer{
		lex:         lex,
		lemmatize:   lemmatizer.NewMorphologicalAnalyzer(lemmatizer.NewSpanishRules(lex)),
		clitics:     make(map[string]bool),
		determiners: make(map[string]bool),
	}
	for _, c := range lex.Spanish.Clitics {
		a.clitics[c] = true
	}
	for _, d := range lex.Spanish.Determiners {
		a.determiners[d] = true
	}
	return a
}

// maxProclitics is how far back from the verb clitics are collected.
const maxProclitics = 4

func (a *spanishAnalyzer) Analyze(clause string) (Analysis, bool) {
	morphLogger := logger.NewLogger("Spanish analyzer")
	tokens := words(clause)
	for i, tok := range tokens {
		lower := lexicon.Normalize(tok.text)
		if a.clitics[lower] || a.determiners[lower] {
			continue
		}
		lemma, ok := a.lemmatize(lower)
		if !ok {
			continue
		}

		var clitics []string
		for j := i - 1; j >= 0 && j >= i-maxProclitics; j-- {
			c := lexicon.Normalize(tokens[j].text)
			if !a.clitics[c] {
				break
			}
			clitics = append([]string{c}, clitics...)
		}

		data := NewClauseData()
		data.Infinitive = lemma + strings.Join(clitics, "")
		data.Gerund, data.Participle = SpanishForms(a.lex, lemma)
		data.PersonNumber = SpanishPerson(lower)
		data.Subject = trimSpan(clause[:tok.begin])
		data.Postverbal = trimSpan(clause[tok.end:])
		morphLogger.Debug().Str("verb", tok.text).Str("lemma", lemma).Msg("Found verb")
		return Analysis{Verb: tok.text, Lemma: lemma, Clause: data}, true
	}
	morphLogger.Debug().Str("clause", clause).Msg("No verb found")
	return Analysis{}, false
}

// Unavailable is the analyzer used when automatic analysis is switched off.
type Unavailable struct{}

func (Unavailable) Analyze(string) (Analysis, bool) {
	return Analysis{}, false
}
