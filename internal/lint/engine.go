package lint

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/sirupsen/logrus"

	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

// Engine runs every checker over the services of one host directory.
type Engine struct {
	Conventions Conventions
	ComposeFile string
	log         *logrus.Logger
}

// NewEngine creates an engine. A nil logger discards diagnostics.
func NewEngine(conv Conventions, composeFile string, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if composeFile == "" {
		composeFile = workspace.DefaultComposeFile
	}
	return &Engine{
		Conventions: conv.withDefaults(),
		ComposeFile: composeFile,
		log:         log,
	}
}

// Report is the outcome of one lint run.
type Report struct {
	Results []ServiceResult
}

// Failed returns the results that have at least one issue.
func (r *Report) Failed() []ServiceResult {
	var out []ServiceResult
	for _, res := range r.Results {
		if res.HasErrors() {
			out = append(out, res)
		}
	}
	return out
}

// TotalIssues sums the issues of every service.
func (r *Report) TotalIssues() int {
	n := 0
	for _, res := range r.Results {
		n += res.ErrorCount()
	}
	return n
}

// Passed reports whether no service has issues.
func (r *Report) Passed() bool {
	return r.TotalIssues() == 0
}

// Run lints the services found at the root of fsys, which is a host
// directory. When only is set just that service is linted, and a missing
// directory is reported as workspace.ErrServiceNotFound.
func (e *Engine) Run(fsys fs.FS, only string) (*Report, error) {
	ex, err := LoadExclusions(fsys)
	if err != nil {
		return nil, err
	}

	var names []string
	if only != "" {
		info, err := fs.Stat(fsys, only)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", workspace.ErrServiceNotFound, only)
		}
		names = []string{only}
	} else {
		names, err = workspace.ServiceNames(fsys, e.ComposeFile)
		if err != nil {
			return nil, err
		}
	}
	e.log.WithField("services", len(names)).Debug("lint run started")

	report := &Report{}
	for _, name := range names {
		file := path.Join(name, e.ComposeFile)
		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			e.log.WithField("service", name).Debug("no compose file, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		res := e.LintContent(name, file, string(data), ex)
		e.log.WithFields(logrus.Fields{"service": name, "issues": res.ErrorCount()}).Debug("service linted")
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// LintContent runs all checkers against the text of one compose file.
func (e *Engine) LintContent(name, file, content string, ex Exclusions) ServiceResult {
	res := ServiceResult{Name: name, Path: file}

	for _, block := range ExtractServiceProps(content) {
		for _, issue := range FindOrderIssues(block.Props, e.Conventions) {
			res.Order = append(res.Order, Issue{
				Category: issue.Category,
				Message:  block.Name + issue.Message,
				Fix:      issue.Fix,
			})
		}
	}

	res.Router = FindRouterIssues(content, ex.Routers, e.Conventions)
	res.Middleware = FindMiddlewareIssues(content, ex.Middlewares, e.Conventions)
	res.Config = FindConfigIssues(content, name, ex.Logging, ex.Network, e.Conventions)
	return res
}
