package morph

import (
	"fmt"
	"strings"
)

// ClauseData holds the morphological facts about the main predicate that the
// diagnostic frames are built from.
type ClauseData struct {
	Gerund       string `json:"gerund" yaml:"gerund"`
	Participle   string `json:"participle" yaml:"participle"`
	Infinitive   string `json:"infinitive" yaml:"infinitive"`
	Subject      string `json:"subject" yaml:"subject"`
	Postverbal   string `json:"postverbal" yaml:"postverbal"`
	PersonNumber Person `json:"person_number" yaml:"person_number"`
}

func NewClauseData() ClauseData {
	return ClauseData{PersonNumber: ThirdSingular}
}

func (data ClauseData) person() Person {
	if data.PersonNumber.Valid() {
		return data.PersonNumber
	}
	return ThirdSingular
}

var (
	bePresent = [6]string{"am", "are", "is", "are", "are", "are"}
	bePast    = [6]string{"was", "were", "was", "were", "were", "were"}

	estarPreterito  = [6]string{"estuve", "estuviste", "estuvo", "estuvimos", "estuvieron", "estuvieron"}
	estarPresente   = [6]string{"estoy", "estás", "está", "estamos", "están", "están"}
	estarSubjuntivo = [6]string{"estuviera", "estuvieras", "estuviera", "estuviéramos", "estuvieran", "estuvieran"}
	haberPresente   = [6]string{"he", "has", "ha", "hemos", "han", "han"}
	dejarSubjuntivo = [6]string{"dejara", "dejaras", "dejara", "dejáramos", "dejaran", "dejaran"}
)

func join(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// Progressive renders "Peter was running home" (past) or "Peter is running home".
func (data ClauseData) Progressive(past bool) string {
	be := bePresent[data.person().index()]
	if past {
		be = bePast[data.person().index()]
	}
	return join(data.Subject, fmt.Sprintf("%s %s", be, data.Gerund), data.Postverbal)
}

// Perfect renders "Peter has run home".
func (data ClauseData) Perfect() string {
	have := "have"
	if data.person() == ThirdSingular {
		have = "has"
	}
	return join(data.Subject, fmt.Sprintf("%s %s", have, data.Participle), data.Postverbal)
}

// Stopped renders "Peter stopped running home".
func (data ClauseData) Stopped() string {
	subject := data.Subject
	if subject == "" {
		subject = "(subject)"
	}
	return join(subject, "stopped "+data.Gerund, data.Postverbal)
}

type Periphrasis int

const (
	GerundPreterite Periphrasis = iota
	GerundPresent
	GerundSubjunctive
	PerfectParticiple
	QuitInfinitive
)

// Periphrasis renders the Spanish frames: estar + gerund in three tenses,
// haber + participle and "dejara de" + infinitive.
func (data ClauseData) Periphrasis(kind Periphrasis) string {
	i := data.person().index()
	switch kind {
	case GerundPreterite:
		return join(data.Subject, estarPreterito[i]+" "+data.Gerund, data.Postverbal)
	case GerundPresent:
		return join(data.Subject, estarPresente[i]+" "+data.Gerund, data.Postverbal)
	case GerundSubjunctive:
		return join(data.Subject, estarSubjuntivo[i]+" "+data.Gerund, data.Postverbal)
	case PerfectParticiple:
		return join(data.Subject, haberPresente[i]+" "+data.Participle, data.Postverbal)
	case QuitInfinitive:
		return join(dejarSubjuntivo[i]+" de "+data.Infinitive, data.Postverbal)
	}
	return ""
}
