package lexicon

import (
	"embed"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"gopkg.in/yaml.v3"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed data/*.yaml
var dataFS embed.FS

const dataDir = "data"

type Forms struct {
	Gerund     string `yaml:"ger"`
	Participle string `yaml:"pp"`
}

type English struct {
	Irregulars  map[string]Forms  `yaml:"irregulars"`
	Exceptions  map[string]string `yaml:"exceptions"`
	Verbs       []string          `yaml:"verbs"`
	Rules       [][]string        `yaml:"rules"`
	Persons     map[string]string `yaml:"persons"`
	Pronouns    map[string]string `yaml:"pronouns"`
	Determiners []string          `yaml:"determiners"`
}

type Spanish struct {
	Irregulars       map[string]Forms  `yaml:"irregulars"`
	StrongPreterites [][]string        `yaml:"strong_preterites"`
	Exceptions       map[string]string `yaml:"exceptions"`
	Rules            [][]string        `yaml:"rules"`
	Clitics          []string          `yaml:"clitics"`
	Verbs            []string          `yaml:"verbs"`
	Persons          map[string]string `yaml:"persons"`
	Determiners      []string          `yaml:"determiners"`
}

type Tier string

const (
	TierClausal Tier = "clausal"
	TierCore    Tier = "core"
	TierNuclear Tier = "nuclear"
)

type Operator struct {
	Code        string `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
	Tier        Tier   `yaml:"tier" json:"tier"`
	TakesValue  bool   `yaml:"takes_value" json:"takes_value"`
	Examples    string `yaml:"examples" json:"examples,omitempty"`
}

type Logical struct {
	Keywords    []string          `yaml:"keywords"`
	Corrections map[string]string `yaml:"corrections"`
	Participles map[string]string `yaml:"participles"`
	Modifiers   map[string]string `yaml:"modifiers"`
	Operators   []Operator        `yaml:"operators"`
}

type Classes struct {
	Motion               Classifier `yaml:"motion"`
	Weather              Classifier `yaml:"weather"`
	Transfer             Classifier `yaml:"transfer"`
	Diction              Classifier `yaml:"diction"`
	Deprivation          Classifier `yaml:"deprivation"`
	Possession           Classifier `yaml:"possession"`
	Existence            Classifier `yaml:"existence"`
	Perception           Classifier `yaml:"perception"`
	ImpersonalPerception Classifier `yaml:"impersonal_perception"`
	Nourishment          Classifier `yaml:"nourishment"`
	Special              Classifier `yaml:"special"`
}

// document is the shape of every data file; each file fills one section.
type document struct {
	English *English `yaml:"english"`
	Spanish *Spanish `yaml:"spanish"`
	Logical *Logical `yaml:"logical"`
	Classes *Classes `yaml:"classes"`
}

type Lexicon struct {
	English English
	Spanish Spanish
	Logical Logical
	Classes Classes

	keywords map[string]bool
}

var (
	defaultOnce    sync.Once
	defaultLexicon *Lexicon
)

// Default returns the lexicon compiled into the binary.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Load(dataFS, dataDir)
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon is broken: %v", err))
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

func Load(fsys fs.FS, dir string) (*Lexicon, error) {
	lexLogger := logger.NewLogger("LoadLexicon")

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	docChan := make(chan document, len(entries))
	errChan := make(chan error, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			buf, err := fs.ReadFile(fsys, path.Join(dir, name))
			if err != nil {
				lexLogger.Err(err).Str("file", name).Msg("Could not read lexicon file")
				errChan <- err
				return
			}

			var doc document
			if err := yaml.Unmarshal(buf, &doc); err != nil {
				lexLogger.Err(err).Str("file", name).Msg("Could not parse lexicon file")
				errChan <- fmt.Errorf("%s: %w", name, err)
				return
			}
			docChan <- doc
		}(entry.Name())
	}

	go func() {
		wg.Wait()
		close(docChan)
		close(errChan)
	}()

	lex := &Lexicon{}
	var sections int
	for doc := range docChan {
		if doc.English != nil {
			lex.English = *doc.English
			sections++
		}
		if doc.Spanish != nil {
			lex.Spanish = *doc.Spanish
			sections++
		}
		if doc.Logical != nil {
			lex.Logical = *doc.Logical
			sections++
		}
		if doc.Classes != nil {
			lex.Classes = *doc.Classes
			sections++
		}
	}
	if err := <-errChan; err != nil {
		return nil, err
	}
	if sections != 4 {
		return nil, errors.New("lexicon is missing sections")
	}

	lex.keywords = make(map[string]bool, len(lex.Logical.Keywords))
	for _, kw := range lex.Logical.Keywords {
		lex.keywords[kw] = true
	}
	lexLogger.Debug().Int("keywords", len(lex.keywords)).Msg("Lexicon loaded")
	return lex, nil
}

// IsKeyword reports whether the predicate name belongs to the fixed RRG vocabulary.
func (lex *Lexicon) IsKeyword(name string) bool {
	return lex.keywords[strings.ToLower(name)]
}

func (lex *Lexicon) Correction(name string) (string, bool) {
	c, ok := lex.Logical.Corrections[strings.ToLower(name)]
	return c, ok
}

// Modifier returns the inner operator (INGR, BECOME, PROC, SEML) of an aktionsart class.
func (lex *Lexicon) Modifier(akt string) string {
	return lex.Logical.Modifiers[akt]
}

func (lex *Lexicon) Operator(code string) (Operator, bool) {
	for _, op := range lex.Logical.Operators {
		if op.Code == code {
			return op, true
		}
	}
	return Operator{}, false
}

// OperatorIndex is the position of the operator in the catalog, -1 when unknown.
func (lex *Lexicon) OperatorIndex(code string) int {
	for i, op := range lex.Logical.Operators {
		if op.Code == code {
			return i
		}
	}
	return -1
}
