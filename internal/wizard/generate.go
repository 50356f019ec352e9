package wizard

import (
	"bytes"
	"text/template"

	"github.com/ThomasCrouzet/kompose/internal/config"
	"github.com/ThomasCrouzet/kompose/internal/lint"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	Workspace   string
	Host        string
	ComposeFile string
	Network     string

	// Lint conventions
	PublicDomain      string
	PrivateDomain     string
	PublicMiddleware  string
	PrivateMiddleware string
	LoggingDriver     string
}

// DefaultAnswers pre-fills the wizard from the built-in defaults.
func DefaultAnswers() WizardAnswers {
	conv := lint.DefaultConventions()
	return WizardAnswers{
		Workspace:         config.DefaultWorkspace,
		Host:              config.DefaultHost,
		ComposeFile:       workspace.DefaultComposeFile,
		Network:           conv.Network,
		PublicDomain:      conv.PublicDomain,
		PrivateDomain:     conv.PrivateDomain,
		PublicMiddleware:  conv.PublicMiddleware,
		PrivateMiddleware: conv.PrivateMiddleware,
		LoggingDriver:     conv.LoggingDriver,
	}
}

const configTemplate = `# kompose configuration
# Environment variables override any key, e.g. KOMPOSE_HOST=pi

workspace: {{ .Workspace }}
host: {{ .Host }}
{{- if ne .ComposeFile "compose.yml" }}
compose_file: {{ .ComposeFile }}
{{- end }}
network: {{ .Network }}

logs:
  tail: 100

lint:
  public_domain: {{ .PublicDomain }}
  private_domain: {{ .PrivateDomain }}
  public_middleware: {{ .PublicMiddleware }}
  private_middleware: {{ .PrivateMiddleware }}
  network: {{ .Network }}
  logging_driver: {{ .LoggingDriver }}
`

// GenerateConfig renders the YAML config from wizard answers. Empty
// answers fall back to the defaults.
func GenerateConfig(answers WizardAnswers) (string, error) {
	d := DefaultAnswers()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&answers.Workspace, d.Workspace)
	fill(&answers.Host, d.Host)
	fill(&answers.ComposeFile, d.ComposeFile)
	fill(&answers.Network, d.Network)
	fill(&answers.PublicDomain, d.PublicDomain)
	fill(&answers.PrivateDomain, d.PrivateDomain)
	fill(&answers.PublicMiddleware, d.PublicMiddleware)
	fill(&answers.PrivateMiddleware, d.PrivateMiddleware)
	fill(&answers.LoggingDriver, d.LoggingDriver)

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
