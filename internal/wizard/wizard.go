package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := DefaultAnswers()
	if detection.Workspace != "" {
		answers.Workspace = detection.Workspace
	}
	if len(detection.Hosts) > 0 && !contains(detection.Hosts, answers.Host) {
		answers.Host = detection.Hosts[0]
	}

	var hints []string
	if detection.Workspace != "" {
		hints = append(hints, fmt.Sprintf("Workspace found: %s", detection.Workspace))
	}
	if len(detection.Hosts) > 0 {
		hints = append(hints, fmt.Sprintf("Hosts: %s", strings.Join(detection.Hosts, ", ")))
	}
	if !detection.DockerAvailable {
		hints = append(hints, "docker not found in PATH")
	}

	desc := "Directory holding base/ and one directory per host."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	// Step 1: workspace and host
	var hostField huh.Field
	if len(detection.Hosts) > 0 {
		var opts []huh.Option[string]
		for _, h := range detection.Hosts {
			opts = append(opts, huh.NewOption(h, h))
		}
		hostField = huh.NewSelect[string]().
			Title("Default host").
			Options(opts...).
			Value(&answers.Host)
	} else {
		hostField = huh.NewInput().
			Title("Default host").
			Description("Directory name under the workspace").
			Value(&answers.Host)
	}

	// Step 2: conventions checked by lint
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workspace path").
				Description(desc).
				Value(&answers.Workspace),
			hostField,
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Public domain").
				Description("Routers on this domain need the public middleware").
				Value(&answers.PublicDomain),
			huh.NewInput().
				Title("Private domain").
				Value(&answers.PrivateDomain),
			huh.NewInput().
				Title("Public middleware").
				Value(&answers.PublicMiddleware),
			huh.NewInput().
				Title("Private middleware").
				Value(&answers.PrivateMiddleware),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Reverse proxy network").
				Value(&answers.Network),
			huh.NewSelect[string]().
				Title("Logging driver").
				Options(
					huh.NewOption("local", "local"),
					huh.NewOption("json-file", "json-file"),
					huh.NewOption("journald", "journald"),
				).
				Value(&answers.LoggingDriver),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return &answers, nil
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
