package lemmatizer

import "github.com/carlosgonzalezvergara/vendler/lexicon"

// MorphologicalAnalyzer returns the infinitive of a finite verb form and
// whether the form was recognised as a verb at all.
type MorphologicalAnalyzer func(form string) (string, bool)

func NewMorphologicalAnalyzer(rules *MorphologicalRules) MorphologicalAnalyzer {
	return func(form string) (string, bool) {
		form = lexicon.Normalize(form)
		if form == "" {
			return "", false
		}

		// exceptions
		exception, isException := rules.getException(form)
		if isException {
			return exception, true
		}

		// strong preterites
		stem, isStem := rules.getStem(form)
		if isStem {
			return stem, true
		}

		if rules.VerbBase[form] {
			return form, true
		}

		// base-forms
		base, isBase := rules.getBase(form)
		if isBase {
			return base, true
		}

		return form, false
	}
}
