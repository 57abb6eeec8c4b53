package aktionsart

import (
	"fmt"
	"strings"
)

type Lang string

const (
	English Lang = "en"
	Spanish Lang = "es"
)

func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Spanish, "":
		return Spanish, nil
	}
	return "", fmt.Errorf("unsupported language '%s'", s)
}

// Features are the five diagnostic results; nil means the test was not answered.
type Features struct {
	Causative *bool `json:"causative,omitempty"`
	Stative   *bool `json:"stative,omitempty"`
	Punctual  *bool `json:"punctual,omitempty"`
	Telic     *bool `json:"telic,omitempty"`
	Dynamic   *bool `json:"dynamic,omitempty"`
}

func flag(v bool) *bool {
	return &v
}

func copyFlag(v *bool) *bool {
	if v == nil {
		return nil
	}
	return flag(*v)
}

func isSet(v *bool) bool {
	return v != nil && *v
}

func (f Features) Clone() Features {
	return Features{
		Causative: copyFlag(f.Causative),
		Stative:   copyFlag(f.Stative),
		Punctual:  copyFlag(f.Punctual),
		Telic:     copyFlag(f.Telic),
		Dynamic:   copyFlag(f.Dynamic),
	}
}

type class int

const (
	state class = iota
	achievement
	semelfactive
	activeAccomplishment
	activity
	accomplishment
	process
)

var classNames = map[Lang][7]string{
	English: {"state", "achievement", "semelfactive", "active accomplishment", "activity", "accomplishment", "process"},
	Spanish: {"estado", "logro", "semelfactivo", "realización activa", "actividad", "realización", "proceso"},
}

func (f Features) class() class {
	punctual, telic, dynamic := isSet(f.Punctual), isSet(f.Telic), isSet(f.Dynamic)
	switch {
	case isSet(f.Stative):
		return state
	case punctual && telic:
		return achievement
	case punctual:
		return semelfactive
	case telic && dynamic:
		return activeAccomplishment
	case dynamic:
		return activity
	case telic:
		return accomplishment
	}
	return process
}

// Label resolves the aspectual class. Unanswered features count as false.
func Label(f Features, lang Lang) string {
	names, ok := classNames[lang]
	if !ok {
		names = classNames[Spanish]
		lang = Spanish
	}
	c := f.class()
	name := names[c]
	if !isSet(f.Causative) {
		return name
	}
	if lang == English {
		return "causative " + name
	}
	switch c {
	case accomplishment, activeAccomplishment, activity:
		return name + " causativa"
	}
	return name + " causativo"
}

// Tags renders the answered features as "[+stative]" style markers in the
// order they are tested.
func (f Features) Tags(lang Lang) []string {
	names := [5]string{"causative", "stative", "punctual", "telic", "dynamic"}
	if lang == Spanish {
		names = [5]string{"causativo", "estativo", "puntual", "télico", "dinámico"}
	}
	var tags []string
	for i, v := range []*bool{f.Causative, f.Stative, f.Punctual, f.Telic, f.Dynamic} {
		if v == nil {
			continue
		}
		sign := "-"
		if *v {
			sign = "+"
		}
		tags = append(tags, fmt.Sprintf("[%s%s]", sign, names[i]))
	}
	return tags
}
