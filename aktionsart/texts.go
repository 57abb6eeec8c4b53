package aktionsart

import (
	"github.com/carlosgonzalezvergara/vendler/morph"
)

// catalog holds the wording of one language. Format strings take the clause
// texts in the order the prompt mentions them.
type catalog struct {
	yes, no string

	startLines    []string
	startQuestion string
	startWarning  string

	causativityTitle    string
	causativityIntro    string
	causativityModels   []string
	causativityQuestion string
	causativityDecline  string

	verifyIntro    string
	verifyCriteria []string
	verifyQuestion string

	basicEventIntro    string
	basicEventModels   []string
	basicEventQuestion string
	basicEventDecline  string

	cleanupIntro    string
	cleanupNote     string
	cleanupItems    []string
	cleanupQuestion string

	fixCleanupQuestion string
	fixCleanupWarning  string

	morphIntro    string
	morphRows     [6]string
	morphNothing  string
	morphQuestion string

	manualFields  [5]string
	manualPerson  string
	personWarning string

	stativityTitle     string
	stativityIntro     string
	stativityDialogues []string
	stativityQuestion  string

	punctualityTitle     string
	punctualityIntro     string
	punctualityDuratives []string
	punctualityQuestion  string

	telicityTitle    string
	telicityImagine  string
	telicityQuestion string

	dynamicityTitle    string
	dynamicityIntro    string
	dynamicityManners  []string
	dynamicityQuestion string

	resultTitle string
	resultText  string

	durative func(morph.ClauseData) string
	ongoing  func(morph.ClauseData) string
	stopped  func(morph.ClauseData) string
	perfect  func(morph.ClauseData) string
	manner   func(morph.ClauseData) string
}

var englishCatalog = catalog{
	yes: "Yes",
	no:  "No",

	startLines: []string{
		"This program will help you identify the aktionsart of the main predicate in a clause.",
		"Please type a clause with the verb you want to test conjugated in the simple past (e.g., Peter ran home).",
		"If it sounds very odd, type it in present (e.g., Mary knows English).",
	},
	startQuestion: "Clause:",
	startWarning:  "Please type a clause",

	causativityTitle: "Causativity test",
	causativityIntro: "Try to paraphrase %s following these models:",
	causativityModels: []string{
		"The cat broke the vase → The cat caused the vase to break",
		"Ana gave Pepe a book → Ana caused Pepe to have a book",
	},
	causativityQuestion: "Type your paraphrase:",
	causativityDecline:  "Not possible to paraphrase",

	verifyIntro: "Consider the following:",
	verifyCriteria: []string{
		"%[1]s should preserve the meaning of %[2]s.",
		"%[1]s must not add new arguments nor duplicate existing ones in %[2]s.",
		"Exclude consumption (eat an apple) and creation (write a story) readings.",
	},
	verifyQuestion: "Does %s meet these criteria?",

	basicEventIntro: "Type the resulting event or state without the cause:",
	basicEventModels: []string{
		"The cat broke the vase → the vase broke",
		"Ana gave Pepe a book → Pepe has a book",
	},
	basicEventQuestion: "Type your answer here:",
	basicEventDecline:  "I can't think of one",

	cleanupIntro: "This is the clause we will test: %s",
	cleanupNote:  "For the tests to work correctly, the clause must be 'clean'. Ensure it does not contain:",
	cleanupItems: []string{
		"Time expressions (e.g., yesterday, always, never, on Monday).",
		"Manner expressions (e.g., quickly, well, with calm).",
		"Negation (e.g., not, never).",
	},
	cleanupQuestion: "Does your clause contain any of these elements?",

	fixCleanupQuestion: "Please type %s again without those elements (e.g., Peter ran instead of Peter never ran yesterday):",
	fixCleanupWarning:  "Please type the clean clause",

	morphIntro:    "This is an analysis of some of the morphological and structural features of this clause:",
	morphRows:     [6]string{"Verb", "Infinitive", "Gerund", "Past Participle", "Before the verb", "After the verb"},
	morphNothing:  "nothing",
	morphQuestion: "Is this analysis correct?",

	manualFields: [5]string{
		"Type the infinitive of the verb in %s:",
		"Type the gerund of the verb in %s (e.g., 'melting', 'telling'):",
		"Type the past participle of the verb in %s (e.g., 'melted', 'told'):",
		"Type everything that comes before the verb in %s:",
		"Type everything that comes after the verb in %s:",
	},
	manualPerson:  "Select the person and number of the verb:",
	personWarning: "Select one of the listed persons",

	stativityTitle: "Stativity test",
	stativityIntro: "Consider the following dialogue:",
	stativityDialogues: []string{
		"— What happened a moment ago? — %s.",
		"— What happened yesterday? — %s.",
		"— What happened last month? — %s.",
	},
	stativityQuestion: "Do you think %s is a good answer to at least one of these questions?",

	punctualityTitle:     "Punctuality test",
	punctualityIntro:     "Consider these expressions:",
	punctualityDuratives: []string{"%s for an hour.", "%s for a month."},
	punctualityQuestion:  "Is any of these a valid expression (without forcing an iterative or imminent reading)?",

	telicityTitle:    "Telicity test",
	telicityImagine:  "Imagine that %s and suddenly %s.",
	telicityQuestion: "Would it then be true to say: %s?",

	dynamicityTitle:    "Dynamicity test",
	dynamicityIntro:    "Consider these expressions:",
	dynamicityManners:  []string{"%s vigorously.", "%s forcefully.", "%s with effort."},
	dynamicityQuestion: "Would any of these expressions sound natural to you?",

	resultTitle: "Analysis complete",
	resultText:  "The aktionsart of the clause %s is %s",

	durative: func(d morph.ClauseData) string { return d.Progressive(true) },
	ongoing:  func(d morph.ClauseData) string { return d.Progressive(false) },
	stopped:  morph.ClauseData.Stopped,
	perfect:  morph.ClauseData.Perfect,
	manner:   func(d morph.ClauseData) string { return d.Progressive(false) },
}

var spanishCatalog = catalog{
	yes: "Sí",
	no:  "No",

	startLines: []string{
		"Este programa te ayudará a identificar el aktionsart del predicado principal en una cláusula.",
		"Por favor, escribe una cláusula con el verbo que quieres probar conjugado en pretérito (ej.: Pedro corrió hasta su casa).",
		"Si suena muy extraña, escríbela en presente (ej.: María sabe inglés).",
	},
	startQuestion: "Cláusula:",
	startWarning:  "Por favor, escribe una cláusula",

	causativityTitle: "Prueba de causatividad",
	causativityIntro: "Intenta reformular %s siguiendo estos modelos:",
	causativityModels: []string{
		"El gato rompió el jarrón → El gato hizo/causó que el jarrón se rompiera",
		"Ana le dio un libro a Pepe → Ana hizo/causó que Pepe tuviera un libro",
	},
	causativityQuestion: "Escribe tu reformulación:",
	causativityDecline:  "No es posible reformularla",

	verifyIntro: "Considera lo siguiente:",
	verifyCriteria: []string{
		"%[1]s debe mantener el significado de %[2]s.",
		"%[1]s no debe añadir nuevos argumentos ni repetir otros ya existentes en %[2]s.",
		"No debe tratarse de expresiones de consumo (comer una manzana) o creación (escribir un cuento).",
	},
	verifyQuestion: "¿%s cumple con estos criterios?",

	basicEventIntro: "Escribe el evento o estado resultante sin la causa:",
	basicEventModels: []string{
		"El gato rompió el jarrón → el jarrón se rompió",
		"Ana le dio un libro a Pepe → Pepe tiene un libro",
	},
	basicEventQuestion: "Escribe tu respuesta aquí:",
	basicEventDecline:  "No se me ocurre ninguno",

	cleanupIntro: "Esta es la cláusula a la que aplicaremos las pruebas: %s",
	cleanupNote:  "Para que estas funcionen correctamente, la cláusula debe cumplir algunas condiciones formales. Asegúrate de que no tenga:",
	cleanupItems: []string{
		"Expresiones de tiempo (ej: ayer, siempre, el lunes).",
		"Expresiones de modo (ej: rápidamente, bien, mal, con calma).",
		"Negaciones (ej: no, tampoco).",
	},
	cleanupQuestion: "¿Tu cláusula contiene alguno de estos elementos?",

	fixCleanupQuestion: "Por favor, escribe %s de nuevo sin esos elementos (ej.: Pedro corrió en vez de Pedro nunca corrió ayer):",
	fixCleanupWarning:  "Por favor, escribe la cláusula limpia",

	morphIntro:    "Este es un análisis de algunos de los rasgos morfológicos y estructurales de la cláusula:",
	morphRows:     [6]string{"Verbo", "Infinitivo", "Gerundio", "Participio (masculino singular)", "Antes del verbo", "Después del verbo"},
	morphNothing:  "no hay nada",
	morphQuestion: "¿Es correcto este análisis?",

	manualFields: [5]string{
		"Escribe el infinitivo del verbo en %s, incluyendo los clíticos que haya:",
		"Escribe el gerundio del verbo en %s, sin clíticos:",
		"Escribe el participio (masculino singular) del verbo en %s:",
		"Escribe todo lo que hay antes del verbo en %s, incluyendo los clíticos, si los hay:",
		"Escribe todo lo que hay después del verbo en %s:",
	},
	manualPerson:  "Selecciona la persona y número del verbo:",
	personWarning: "Selecciona una de las personas de la lista",

	stativityTitle: "Prueba de estatividad",
	stativityIntro: "Observa los siguientes diálogos:",
	stativityDialogues: []string{
		"— ¿Qué pasó hace un rato? — %s.",
		"— ¿Qué pasó ayer? — %s.",
		"— ¿Qué pasó el mes pasado? — %s.",
	},
	stativityQuestion: "¿Te parece que %s es una buena respuesta a, al menos, una de estas preguntas?",

	punctualityTitle:     "Prueba de puntualidad",
	punctualityIntro:     "Observa estas expresiones:",
	punctualityDuratives: []string{"%s durante una hora.", "%s durante un mes."},
	punctualityQuestion:  "¿Es alguna de estas una expresión posible? (Si la expresión tiene sentido iterativo o de inminencia, responde que no).",

	telicityTitle:    "Prueba de telicidad",
	telicityImagine:  "Imagina que %s y de pronto %s.",
	telicityQuestion: "¿Se podría decir que %s?",

	dynamicityTitle:    "Prueba de dinamicidad",
	dynamicityIntro:    "Observa estas expresiones:",
	dynamicityManners:  []string{"%s enérgicamente.", "%s con fuerza.", "%s con ganas."},
	dynamicityQuestion: "¿Te parecería natural decir algunas de estas expresiones?",

	resultTitle: "Análisis finalizado",
	resultText:  "El aktionsart de la cláusula %s es %s",

	durative: func(d morph.ClauseData) string { return d.Periphrasis(morph.GerundPreterite) },
	ongoing:  func(d morph.ClauseData) string { return d.Periphrasis(morph.GerundSubjunctive) },
	stopped:  func(d morph.ClauseData) string { return d.Periphrasis(morph.QuitInfinitive) },
	perfect:  func(d morph.ClauseData) string { return d.Periphrasis(morph.PerfectParticiple) },
	manner:   func(d morph.ClauseData) string { return d.Periphrasis(morph.GerundPresent) },
}
