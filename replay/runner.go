package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
	"github.com/carlosgonzalezvergara/vendler/utils"
	jsonpatch "github.com/evanphx/json-patch"
	"time"
)

var replayLogger = logger.NewLogger("Replay")

type CaseResult struct {
	Name   string  `json:"name"`
	Passed bool    `json:"passed"`
	Steps  int     `json:"steps"`
	Actual Outcome `json:"actual"`
	// Diff is the merge patch that turns the expectation into what was reached.
	Diff  json.RawMessage `json:"diff,omitempty"`
	Error string          `json:"error,omitempty"`
}

type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

type Report struct {
	Script      string       `json:"script"`
	Summary     Summary      `json:"summary"`
	Cases       []CaseResult `json:"cases"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
}

// Runner plays scripts through the classifier and the structure builder.
type Runner struct {
	aktionsart map[aktionsart.Lang]*aktionsart.Engine
	ls         *ls.Engine
}

func NewRunner(lsEngine *ls.Engine, engines ...*aktionsart.Engine) *Runner {
	r := &Runner{aktionsart: make(map[aktionsart.Lang]*aktionsart.Engine, len(engines)), ls: lsEngine}
	for _, e := range engines {
		r.aktionsart[e.Lang()] = e
	}
	return r
}

// Run replays every case. A canceled context stops the run and the cases not
// reached are reported with the context error.
func (r *Runner) Run(ctx context.Context, script *Script) Report {
	report := Report{Script: script.Name, StartedAt: time.Now().UTC(), Cases: make([]CaseResult, 0, len(script.Cases))}
	for _, c := range script.Cases {
		var result CaseResult
		if err := ctx.Err(); err != nil {
			result = CaseResult{Name: c.Name, Error: err.Error()}
		} else {
			result = r.runCase(c)
		}
		report.Cases = append(report.Cases, result)
		report.Summary.Total++
		if result.Passed {
			report.Summary.Passed++
		} else {
			report.Summary.Failed++
		}
	}
	report.CompletedAt = time.Now().UTC()
	replayLogger.Info().
		Str("script", script.Name).
		Int("passed", report.Summary.Passed).
		Int("failed", report.Summary.Failed).
		Msg("Replay finished")
	return report
}

func (r *Runner) runCase(c Case) CaseResult {
	result := CaseResult{Name: c.Name}
	steps, actual, err := r.play(c)
	result.Steps, result.Actual = steps, actual
	if err != nil {
		result.Error = err.Error()
		replayLogger.Debug().Err(err).Str("case", c.Name).Msg("Case failed")
		return result
	}
	diff, err := compare(c.Expect, actual)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if diff != nil {
		result.Diff = diff
		return result
	}
	result.Passed = true
	return result
}

func (r *Runner) play(c Case) (steps int, actual Outcome, err error) {
	defer utils.RecoverWithError(&err)
	switch c.Kind {
	case sessionstore.KindAktionsart:
		e, ok := r.aktionsart[c.Lang]
		if !ok {
			return 0, actual, fmt.Errorf("no classifier for language '%s'", c.Lang)
		}
		sess, err := e.Start()
		if err != nil {
			return 0, actual, err
		}
		steps, err = answerAll(c.Answers, func() string { return sess.Node }, func(in dialog.Input) error {
			return e.Answer(sess, in)
		})
		actual.Node = sess.Node
		if handoff, resErr := aktionsart.Result(sess); resErr == nil {
			actual.Label = handoff.Label
		}
		return steps, actual, err
	case sessionstore.KindLS:
		var sess *ls.Session
		if c.Seed != nil {
			sess, err = r.ls.Seed(*c.Seed)
		} else {
			sess, err = r.ls.Start()
		}
		if err != nil {
			return 0, actual, err
		}
		steps, err = answerAll(c.Answers, func() string { return sess.Node }, func(in dialog.Input) error {
			return r.ls.Answer(sess, in)
		})
		actual.Node = sess.Node
		actual.Label = sess.State.Akt
		if structure, resErr := ls.Result(sess); resErr == nil {
			actual.Structure = structure.String()
		}
		return steps, actual, err
	}
	return 0, actual, fmt.Errorf("unknown session kind '%s'", c.Kind)
}

func answerAll(answers []dialog.Input, node func() string, answer func(dialog.Input) error) (int, error) {
	for i, in := range answers {
		at := node()
		if err := answer(in); err != nil {
			return i, fmt.Errorf("answer %d at '%s': %w", i+1, at, err)
		}
	}
	return len(answers), nil
}

// compare returns nil when actual satisfies expect, otherwise the merge patch
// from expect to the checked part of actual.
func compare(expect, actual Outcome) (json.RawMessage, error) {
	checked := Outcome{}
	if expect.Node != "" {
		checked.Node = actual.Node
	}
	if expect.Label != "" {
		checked.Label = actual.Label
	}
	if expect.Structure != "" {
		checked.Structure = actual.Structure
	}
	if checked == expect {
		return nil, nil
	}
	want, err := json.Marshal(expect)
	if err != nil {
		return nil, err
	}
	got, err := json.Marshal(checked)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(want, got)
}
