package envsync

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var actionLabels = map[Action]string{
	ActionAddToExample:      "Add to .env.example",
	ActionRemoveFromEnv:     "Remove from .env",
	ActionAddToEnv:          "Add to .env",
	ActionRemoveFromExample: "Remove from .env.example",
	ActionSkip:              "Skip",
}

// HuhPrompter asks with an interactive select. Aborting the prompt skips.
type HuhPrompter struct{}

func (HuhPrompter) Ask(q Question) (Action, error) {
	choice := ActionSkip

	var opts []huh.Option[Action]
	for _, a := range append(q.Direction.Choices(), ActionSkip) {
		opts = append(opts, huh.NewOption(actionLabels[a], a))
	}

	err := huh.NewSelect[Action]().
		Title(fmt.Sprintf("What to do with %d variable(s)?", len(q.Keys))).
		Options(opts...).
		Value(&choice).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ActionSkip, nil
	}
	if err != nil {
		return ActionSkip, err
	}
	return choice, nil
}
