package lemmatizer

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"strings"
	"unicode/utf8"
)

// maxStemTail bounds how much of a word may follow a strong preterite stem
// ("estuv" + "ieron"), so that nouns sharing the prefix are not taken as verbs.
const maxStemTail = 5

type MorphologicalRules struct {
	VerbExc  map[string]string
	VerbBase map[string]bool
	VerbRule [][]string
	StemRule [][]string
}

func NewEnglishRules(lex *lexicon.Lexicon) *MorphologicalRules {
	rules := &MorphologicalRules{
		VerbExc:  lex.English.Exceptions,
		VerbBase: make(map[string]bool),
		VerbRule: lex.English.Rules,
	}
	for verb := range lex.English.Irregulars {
		rules.VerbBase[verb] = true
	}
	for _, verb := range lex.English.Verbs {
		rules.VerbBase[verb] = true
	}
	return rules
}

func NewSpanishRules(lex *lexicon.Lexicon) *MorphologicalRules {
	rules := &MorphologicalRules{
		VerbExc:  make(map[string]string, len(lex.Spanish.Exceptions)),
		VerbBase: make(map[string]bool),
		VerbRule: lex.Spanish.Rules,
		StemRule: lex.Spanish.StrongPreterites,
	}
	for form, lemma := range lex.Spanish.Exceptions {
		rules.VerbExc[lexicon.Normalize(form)] = lemma
	}
	for verb := range lex.Spanish.Irregulars {
		rules.VerbBase[verb] = true
	}
	for _, verb := range lex.Spanish.Verbs {
		rules.VerbBase[verb] = true
	}
	for _, stem := range lex.Spanish.StrongPreterites {
		rules.VerbBase[stem[1]] = true
	}
	for verb := range lex.Logical.Participles {
		rules.VerbBase[verb] = true
	}
	classes := lex.Classes
	for _, c := range []lexicon.Classifier{classes.Motion, classes.Weather, classes.Transfer, classes.Diction,
		classes.Deprivation, classes.Possession, classes.Perception, classes.Nourishment} {
		for _, class := range c.Classes() {
			for _, verb := range c.Members(class) {
				if EndsWithAny(verb, "ar", "er", "ir", "ír") {
					rules.VerbBase[verb] = true
				}
			}
		}
	}
	return rules
}

func (rules *MorphologicalRules) getException(form string) (string, bool) {
	exc, hasExc := rules.VerbExc[form]
	return exc, hasExc
}

func (rules *MorphologicalRules) getStem(form string) (string, bool) {
	for _, rule := range rules.StemRule {
		if strings.HasPrefix(form, rule[0]) && utf8.RuneCountInString(form)-utf8.RuneCountInString(rule[0]) <= maxStemTail {
			return rule[1], true
		}
	}
	return "", false
}

func (rules *MorphologicalRules) getBase(form string) (string, bool) {
	return getBaseAux(form, rules.VerbBase, rules.VerbRule)
}

func getBaseAux(form string, set map[string]bool, rules [][]string) (string, bool) {
	for _, rule := range rules {
		if strings.HasSuffix(form, rule[0]) {
			offset := len(form) - len(rule[0])
			base := form[0:offset] + rule[1]

			isOk := set[base]
			if isOk {
				return base, true
			}
		}
	}

	return "", false
}
