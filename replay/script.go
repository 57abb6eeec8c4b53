package replay

import (
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
	"gopkg.in/yaml.v3"
)

// Script is a batch of recorded dialogs with the outcome each should reach.
type Script struct {
	Name  string `yaml:"name" json:"name"`
	Cases []Case `yaml:"cases" json:"cases"`
}

type Case struct {
	Name    string              `yaml:"name" json:"name"`
	Kind    sessionstore.Kind   `yaml:"kind" json:"kind"`
	Lang    aktionsart.Lang     `yaml:"lang,omitempty" json:"lang,omitempty"`
	Seed    *aktionsart.Handoff `yaml:"seed,omitempty" json:"seed,omitempty"`
	Answers []dialog.Input      `yaml:"answers" json:"answers"`
	Expect  Outcome             `yaml:"expect" json:"expect"`
}

// Outcome is where a dialog ended. Empty fields in an expectation are not
// checked.
type Outcome struct {
	Node      string `yaml:"node,omitempty" json:"node,omitempty"`
	Label     string `yaml:"label,omitempty" json:"label,omitempty"`
	Structure string `yaml:"structure,omitempty" json:"structure,omitempty"`
}

var ErrEmptyScript = errors.New("replay script has no cases")

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse replay script: %w", err)
	}
	if len(script.Cases) == 0 {
		return nil, ErrEmptyScript
	}
	for i := range script.Cases {
		c := &script.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if _, err := sessionstore.ParseKind(string(c.Kind)); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		lang, err := aktionsart.ParseLang(string(c.Lang))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		c.Lang = lang
		if c.Seed != nil && c.Kind != sessionstore.KindLS {
			return nil, fmt.Errorf("%s: only logical structure cases can be seeded", c.Name)
		}
	}
	return &script, nil
}
