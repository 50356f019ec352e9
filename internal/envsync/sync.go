// Package envsync keeps a service's .env in step with its .env.example.
package envsync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ThomasCrouzet/kompose/internal/ui"
)

const (
	EnvFile     = ".env"
	ExampleFile = ".env.example"
)

// Action is what happened, or should happen, to a set of variables.
type Action string

const (
	ActionCreated           Action = "created"
	ActionAddToExample      Action = "add_to_example"
	ActionRemoveFromEnv     Action = "remove_from_env"
	ActionAddToEnv          Action = "add_to_env"
	ActionRemoveFromExample Action = "remove_from_example"
	ActionSkip              Action = "skip"
)

// exampleValue is written for variables copied into the template.
const exampleValue = "''"

// Status summarizes a service after syncing.
type Status string

const (
	StatusCreated Status = "created"
	StatusSynced  Status = "synced"
	StatusUpdated Status = "updated"
)

// Direction tells which file holds the extra variables.
type Direction int

const (
	// OnlyInEnv are variables set in .env but missing from the template.
	OnlyInEnv Direction = iota
	// OnlyInExample are template variables missing from .env.
	OnlyInExample
)

// Choices returns the actions offered for a direction, add first.
func (d Direction) Choices() []Action {
	if d == OnlyInEnv {
		return []Action{ActionAddToExample, ActionRemoveFromEnv}
	}
	return []Action{ActionAddToEnv, ActionRemoveFromExample}
}

// Question is put to the Prompter for each direction with differences.
type Question struct {
	Service   string
	Direction Direction
	Keys      []string
}

// Prompter picks an action for a set of variables. Returning ActionSkip
// leaves both files untouched.
type Prompter interface {
	Ask(q Question) (Action, error)
}

// Change records variables moved by one action.
type Change struct {
	Service string
	Action  Action
	Target  string // file the change applies to
	Vars    []string
}

// Outcome is the per-service row of the sync table.
type Outcome struct {
	Service string
	Status  Status
	Summary []string // e.g. "+2 example", "1 skipped"
	Count   int      // variables in a created .env
}

// Syncer applies sync decisions to service directories.
type Syncer struct {
	// Force adds missing variables in both directions without asking.
	Force    bool
	Prompter Prompter
	Out      io.Writer

	log *logrus.Logger
}

func NewSyncer(force bool, prompter Prompter, log *logrus.Logger) *Syncer {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Syncer{Force: force, Prompter: prompter, Out: os.Stdout, log: log}
}

// SyncService syncs one service directory. ok is false when the service
// has no .env.example.
func (s *Syncer) SyncService(dir string) (outcome Outcome, changes []Change, ok bool, err error) {
	service := filepath.Base(dir)
	outcome.Service = service

	example, err := ReadFile(filepath.Join(dir, ExampleFile))
	if err != nil || !example.Exists {
		return outcome, nil, false, err
	}
	env, err := ReadFile(filepath.Join(dir, EnvFile))
	if err != nil {
		return outcome, nil, true, err
	}

	exampleKeys, exampleVals := example.Vars()

	if !env.Exists {
		env.Lines = append([]string(nil), example.Lines...)
		if err := env.Write(); err != nil {
			return outcome, nil, true, err
		}
		if err := os.Chmod(env.Path, 0o600); err != nil {
			s.log.WithError(err).WithField("path", env.Path).Warn("chmod failed")
		}
		s.log.WithField("service", service).Debug(".env created from template")
		outcome.Status = StatusCreated
		outcome.Count = len(exampleKeys)
		return outcome, []Change{{Service: service, Action: ActionCreated, Target: EnvFile, Vars: sorted(exampleKeys)}}, true, nil
	}

	envKeys, envVals := env.Vars()
	onlyEnv := missing(envKeys, exampleVals)
	onlyExample := missing(exampleKeys, envVals)

	outcome.Status = StatusSynced
	if len(onlyEnv) == 0 && len(onlyExample) == 0 {
		return outcome, nil, true, nil
	}

	if len(onlyEnv) > 0 {
		q := Question{Service: service, Direction: OnlyInEnv, Keys: sorted(onlyEnv)}
		action, err := s.decide(q)
		if err != nil {
			return outcome, changes, true, err
		}
		change, summary, err := apply(action, q, envKeys, envVals, env, example)
		if err != nil {
			return outcome, changes, true, err
		}
		changes = append(changes, change)
		outcome.Summary = append(outcome.Summary, summary)
	}

	if len(onlyExample) > 0 {
		q := Question{Service: service, Direction: OnlyInExample, Keys: sorted(onlyExample)}
		action, err := s.decide(q)
		if err != nil {
			return outcome, changes, true, err
		}
		change, summary, err := apply(action, q, exampleKeys, exampleVals, env, example)
		if err != nil {
			return outcome, changes, true, err
		}
		changes = append(changes, change)
		outcome.Summary = append(outcome.Summary, summary)
	}

	outcome.Status = StatusUpdated
	return outcome, changes, true, nil
}

func (s *Syncer) decide(q Question) (Action, error) {
	where := "in .env but not in .env.example"
	color := ui.Yellow
	if q.Direction == OnlyInExample {
		where = "in .env.example but not in .env"
		color = ui.Blue
	}
	fmt.Fprintf(s.Out, "\n%s: variables %s:\n", ui.Bold(q.Service), where)
	for _, k := range q.Keys {
		fmt.Fprintf(s.Out, "  %s\n", color(k))
	}

	if s.Force {
		return q.Direction.Choices()[0], nil
	}
	if s.Prompter == nil {
		return ActionSkip, nil
	}
	return s.Prompter.Ask(q)
}

// apply performs action on the question's keys. order and values come
// from the file the keys were found in.
func apply(action Action, q Question, order []string, values map[string]string, env, example *File) (Change, string, error) {
	set := make(map[string]bool, len(q.Keys))
	for _, k := range q.Keys {
		set[k] = true
	}
	change := Change{Service: q.Service, Action: action, Vars: q.Keys}
	n := len(q.Keys)

	switch action {
	case ActionAddToExample:
		vars := make(map[string]string, n)
		for _, k := range q.Keys {
			vars[k] = exampleValue
		}
		example.Add(vars, order)
		change.Target = ExampleFile
		return change, fmt.Sprintf("+%d example", n), example.Write()
	case ActionRemoveFromEnv:
		env.Remove(set)
		change.Target = EnvFile
		return change, fmt.Sprintf("-%d env", n), env.Write()
	case ActionAddToEnv:
		vars := make(map[string]string, n)
		for _, k := range q.Keys {
			vars[k] = values[k]
		}
		env.Add(vars, order)
		change.Target = EnvFile
		return change, fmt.Sprintf("+%d env", n), env.Write()
	case ActionRemoveFromExample:
		example.Remove(set)
		change.Target = ExampleFile
		return change, fmt.Sprintf("-%d example", n), example.Write()
	}

	change.Action = ActionSkip
	change.Target = EnvFile
	if q.Direction == OnlyInExample {
		change.Target = ExampleFile
	}
	return change, fmt.Sprintf("%d skipped", n), nil
}

// missing returns the keys not present in other, in order.
func missing(keys []string, other map[string]string) []string {
	var out []string
	for _, k := range keys {
		if _, ok := other[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

func sorted(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}

// Result collects a sync run over several services.
type Result struct {
	Outcomes []Outcome
	Changes  []Change
}

// Sync syncs each service directory in turn. Services without a template
// are left out of the result.
func (s *Syncer) Sync(dirs []string) (*Result, error) {
	res := &Result{}
	for _, dir := range dirs {
		outcome, changes, ok, err := s.SyncService(dir)
		if err != nil {
			return res, fmt.Errorf("syncing %s: %w", filepath.Base(dir), err)
		}
		if !ok {
			continue
		}
		res.Outcomes = append(res.Outcomes, outcome)
		res.Changes = append(res.Changes, changes...)
	}
	return res, nil
}

// ChangesFor returns the changes with the given action, in run order.
func (r *Result) ChangesFor(action Action) []Change {
	var out []Change
	for _, c := range r.Changes {
		if c.Action == action {
			out = append(out, c)
		}
	}
	return out
}
