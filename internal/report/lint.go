package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ThomasCrouzet/kompose/internal/lint"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

// detailLimit caps router and middleware issues listed per service.
const detailLimit = 5

// Lint writes the summary table, the detail sections of failing services,
// and the final verdict line.
func Lint(w io.Writer, rep *lint.Report) {
	tbl := ui.NewTable("Service", "Order", "Routers", "Middlewares", "Config")
	for _, r := range rep.Results {
		name := ui.Green(r.Name)
		if r.HasErrors() {
			name = ui.Red(r.Name)
		}
		tbl.AddRow(name, count(r.Order), count(r.Router), count(r.Middleware), count(r.Config))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tbl.Render())

	failed := rep.Failed()
	lintOrder(w, failed)
	lintCapped(w, "Router Naming", failed, func(r lint.ServiceResult) []lint.Issue { return r.Router })
	lintCapped(w, "Middlewares", failed, func(r lint.ServiceResult) []lint.Issue { return r.Middleware })
	lintConfig(w, failed)

	fmt.Fprintln(w)
	if total := rep.TotalIssues(); total > 0 {
		fmt.Fprintln(w, ui.Red(fmt.Sprintf("%d issue(s) in %d service(s)", total, len(failed))))
		return
	}
	fmt.Fprintln(w, ui.Green(fmt.Sprintf("All %d services passed", len(rep.Results))))
}

func count(issues []lint.Issue) string {
	if len(issues) == 0 {
		return ui.Dash()
	}
	return ui.Red(strconv.Itoa(len(issues)))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", ui.Bold(title))
}

func lintOrder(w io.Writer, failed []lint.ServiceResult) {
	first := true
	for _, r := range failed {
		if len(r.Order) == 0 {
			continue
		}
		if first {
			section(w, "Property Order")
			first = false
		}
		fmt.Fprintf(w, "  %s\n", ui.Cyan(r.Path))
		for _, issue := range r.Order {
			fmt.Fprintf(w, "    %s  %s\n", ui.Gray(issue.Message), issue.Fix)
		}
	}
}

func lintCapped(w io.Writer, title string, failed []lint.ServiceResult, pick func(lint.ServiceResult) []lint.Issue) {
	first := true
	for _, r := range failed {
		issues := pick(r)
		if len(issues) == 0 {
			continue
		}
		if first {
			section(w, title)
			first = false
		}
		fmt.Fprintf(w, "  %s\n", ui.Cyan(r.Name))
		for i, issue := range issues {
			if i == detailLimit {
				fmt.Fprintf(w, "    %s\n", ui.Gray(fmt.Sprintf("+%d more", len(issues)-detailLimit)))
				break
			}
			fmt.Fprintf(w, "    %s\n", issue.Message)
		}
	}
}

func lintConfig(w io.Writer, failed []lint.ServiceResult) {
	first := true
	for _, r := range failed {
		if len(r.Config) == 0 {
			continue
		}
		if first {
			section(w, "Configuration")
			first = false
		}
		fmt.Fprintf(w, "  %s  %s\n", ui.Cyan(r.Name), strings.Join(lint.Messages(r.Config), ", "))
	}
}
