package morph

import (
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/lemmatizer"
	"strings"
)

type Person string

const (
	FirstSingular  Person = "1s"
	SecondSingular Person = "2s"
	ThirdSingular  Person = "3s"
	FirstPlural    Person = "1p"
	SecondPlural   Person = "2p"
	ThirdPlural    Person = "3p"
)

var Persons = []Person{FirstSingular, SecondSingular, ThirdSingular, FirstPlural, SecondPlural, ThirdPlural}

func (p Person) Valid() bool {
	for _, v := range Persons {
		if v == p {
			return true
		}
	}
	return false
}

func (p Person) index() int {
	for i, v := range Persons {
		if v == p {
			return i
		}
	}
	return 2
}

// EnglishForms returns the gerund and past participle of an English lemma.
func EnglishForms(lex *lexicon.Lexicon, lemma string) (string, string) {
	lemma = lexicon.Normalize(lemma)
	if irr, ok := lex.English.Irregulars[lemma]; ok {
		return irr.Gerund, irr.Participle
	}

	var ger string
	switch {
	case strings.HasSuffix(lemma, "ie"):
		ger = lemma[:len(lemma)-2] + "ying"
	case strings.HasSuffix(lemma, "e") && !strings.HasSuffix(lemma, "ee"):
		ger = lemma[:len(lemma)-1] + "ing"
	case doublesFinalConsonant(lemma):
		ger = lemma + lemma[len(lemma)-1:] + "ing"
	default:
		ger = lemma + "ing"
	}

	var pp string
	switch {
	case strings.HasSuffix(lemma, "e"):
		pp = lemma + "d"
	case doublesFinalConsonant(lemma):
		pp = lemma + lemma[len(lemma)-1:] + "ed"
	default:
		pp = lemma + "ed"
	}
	return ger, pp
}

// doublesFinalConsonant is the consonant-vowel-consonant check, minus the
// unstressed endings that keep a single consonant (enter, open, travel, visit).
func doublesFinalConsonant(lemma string) bool {
	n := len(lemma)
	if n <= 2 {
		return false
	}
	cvc := !strings.ContainsRune("aeiouwyx", rune(lemma[n-1])) &&
		strings.ContainsRune("aeiou", rune(lemma[n-2])) &&
		!strings.ContainsRune("aeiou", rune(lemma[n-3]))
	return cvc && !lemmatizer.EndsWithAny(lemma, "er", "en", "el", "it")
}

// SpanishForms returns the gerund and masculine singular participle of a
// Spanish infinitive. Unknown endings give empty forms.
func SpanishForms(lex *lexicon.Lexicon, lemma string) (string, string) {
	lemma = lexicon.Normalize(lemma)
	irr := lex.Spanish.Irregulars[lemma]
	ger, pp := irr.Gerund, irr.Participle
	stem := trimInfinitive(lemma)

	if ger == "" {
		switch {
		case strings.HasSuffix(lemma, "uir") && !lemmatizer.EndsWithAny(lemma, "guir", "quir", "güir"):
			ger = stem + "yendo"
		case strings.HasSuffix(lemma, "ar"):
			ger = stem + "ando"
		case lemmatizer.EndsWithAny(lemma, "er", "ir"):
			ger = stem + "iendo"
		}
	}
	if pp == "" {
		switch {
		case strings.HasSuffix(lemma, "ar"):
			pp = stem + "ado"
		case lemmatizer.EndsWithAny(lemma, "er", "ir"):
			pp = stem + "ido"
		}
	}
	return ger, pp
}

func trimInfinitive(lemma string) string {
	if lemmatizer.EndsWithAny(lemma, "ar", "er", "ir") {
		return lemma[:len(lemma)-2]
	}
	return lemma
}

var encliticOrder = []string{"se", "me", "te", "nos", "os"}

// Participle converts an infinitive, possibly carrying an enclitic, into the
// participle used as a logical-structure constant. Words that are not
// infinitives come back unchanged.
func Participle(lex *lexicon.Lexicon, infinitive string) string {
	inf := lexicon.Normalize(infinitive)
	for _, clitic := range encliticOrder {
		if strings.HasSuffix(inf, clitic) {
			inf = strings.TrimSuffix(inf, clitic)
			break
		}
	}

	if pp, ok := lex.Logical.Participles[inf]; ok {
		return pp
	}
	switch {
	case strings.HasSuffix(inf, "ar"):
		return inf[:len(inf)-2] + "ado"
	case lemmatizer.EndsWithAny(inf, "er", "ir"):
		return inf[:len(inf)-2] + "ido"
	}
	return inf
}

// IsInfinitive reports whether the predicate looks like a verb rather than an
// adjective, clitic forms included.
func IsInfinitive(pred string) bool {
	return lemmatizer.EndsWithAny(pred, "ar", "er", "ir", "arse", "erse", "irse")
}

// SpanishPerson reads person and number off a finite verb ending.
func SpanishPerson(verb string) Person {
	verb = lexicon.Normalize(verb)
	switch {
	case lemmatizer.EndsWithAny(verb, "é", "í"):
		return FirstSingular
	case lemmatizer.EndsWithAny(verb, "aste", "iste"):
		return SecondSingular
	case lemmatizer.EndsWithAny(verb, "amos", "imos", "emos"):
		return FirstPlural
	case lemmatizer.EndsWithAny(verb, "aron", "ieron", "eron"):
		return ThirdPlural
	case lemmatizer.EndsWithAny(verb, "as", "es"):
		return SecondSingular
	case strings.HasSuffix(verb, "ó"):
		return ThirdSingular
	case lemmatizer.EndsWithAny(verb, "an", "en"):
		return ThirdPlural
	}
	return ThirdSingular
}

// EnglishPerson reads person and number off the subject.
func EnglishPerson(lex *lexicon.Lexicon, subject string) Person {
	words := strings.Fields(lexicon.Normalize(subject))
	if len(words) == 0 {
		return ThirdSingular
	}
	if len(words) == 1 {
		if p, ok := lex.English.Pronouns[words[0]]; ok {
			return Person(p)
		}
	}
	for _, w := range words {
		if w == "and" {
			return ThirdPlural
		}
	}
	head := words[len(words)-1]
	if len(words) > 1 && strings.HasSuffix(head, "s") && !strings.HasSuffix(head, "ss") {
		return ThirdPlural
	}
	return ThirdSingular
}
