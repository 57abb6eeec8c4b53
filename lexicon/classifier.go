package lexicon

import (
	"gopkg.in/yaml.v3"
	"strings"
)

type VerbClass struct {
	Class string            `yaml:"class"`
	Verbs []string          `yaml:"verbs"`
	Nouns map[string]string `yaml:"nouns"`
}

// Classifier is an ordered list of verb classes. A lemma belongs to the first
// class that lists it, so a verb repeated in two classes resolves to the earlier.
type Classifier struct {
	classes []VerbClass
	index   map[string]string
}

func NewClassifier(classes ...VerbClass) Classifier {
	c := Classifier{classes: classes, index: make(map[string]string)}
	for _, vc := range classes {
		for _, v := range vc.Verbs {
			c.add(v, vc.Class)
		}
		for v := range vc.Nouns {
			c.add(v, vc.Class)
		}
	}
	return c
}

func (c *Classifier) add(lemma string, class string) {
	key := Normalize(lemma)
	if _, seen := c.index[key]; !seen {
		c.index[key] = class
	}
}

func (c *Classifier) UnmarshalYAML(value *yaml.Node) error {
	var classes []VerbClass
	if err := value.Decode(&classes); err != nil {
		return err
	}
	*c = NewClassifier(classes...)
	return nil
}

// Lookup returns the class of the lemma.
func (c Classifier) Lookup(lemma string) (string, bool) {
	class, ok := c.index[Normalize(lemma)]
	return class, ok
}

// In reports whether the lemma is listed under the class, regardless of
// precedence.
func (c Classifier) In(class string, lemma string) bool {
	key := Normalize(lemma)
	for _, vc := range c.classes {
		if vc.Class != class {
			continue
		}
		for _, v := range vc.Verbs {
			if Normalize(v) == key {
				return true
			}
		}
		if _, ok := vc.Nouns[key]; ok {
			return true
		}
	}
	return false
}

// Nominal returns the noun of the act named by the verb in a class that
// carries nominalizations.
func (c Classifier) Nominal(class string, lemma string) (string, bool) {
	key := Normalize(lemma)
	for _, vc := range c.classes {
		if vc.Class == class {
			n, ok := vc.Nouns[key]
			return n, ok
		}
	}
	return "", false
}

// Members lists the verbs of a class in file order.
func (c Classifier) Members(class string) []string {
	var members []string
	for _, vc := range c.classes {
		if vc.Class != class {
			continue
		}
		members = append(members, vc.Verbs...)
		for v := range vc.Nouns {
			members = append(members, v)
		}
	}
	return members
}

func (c Classifier) Classes() []string {
	names := make([]string, 0, len(c.classes))
	for _, vc := range c.classes {
		names = append(names, vc.Class)
	}
	return names
}

// Stem strips a multi-word predicate down to its first word.
func Stem(pred string) string {
	if i := strings.IndexByte(pred, '.'); i >= 0 {
		return pred[:i]
	}
	return pred
}
