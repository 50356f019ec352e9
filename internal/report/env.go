package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ThomasCrouzet/kompose/internal/envsync"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

// createdLimit caps the variables listed for a freshly created .env.
const createdLimit = 8

// EnvSync writes the per-service table and one section per kind of change.
func EnvSync(w io.Writer, res *envsync.Result) {
	tbl := ui.NewTable("Service", "Status", "Changes")
	for _, o := range res.Outcomes {
		switch o.Status {
		case envsync.StatusCreated:
			tbl.AddRow(o.Service, ui.Green("+ created"), fmt.Sprintf("%d vars", o.Count))
		case envsync.StatusUpdated:
			tbl.AddRow(o.Service, ui.Yellow("~ updated"), strings.Join(o.Summary, ", "))
		default:
			tbl.AddRow(o.Service, ui.Green("✓ synced"), ui.Dash())
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tbl.Render())

	envSection(w, "Created", res.ChangesFor(envsync.ActionCreated), ui.Green("+"), createdLimit)
	envSection(w, "Added to .env.example", res.ChangesFor(envsync.ActionAddToExample), ui.Yellow("+"), 0)
	envSection(w, "Added to .env", res.ChangesFor(envsync.ActionAddToEnv), ui.Green("+"), 0)
	envSection(w, "Removed from .env", res.ChangesFor(envsync.ActionRemoveFromEnv), ui.Red("-"), 0)
	envSection(w, "Removed from .env.example", res.ChangesFor(envsync.ActionRemoveFromExample), ui.Red("-"), 0)
	envSection(w, "Skipped", res.ChangesFor(envsync.ActionSkip), ui.Gray("?"), 0)
}

// envSection lists changes; limit 0 lists every variable.
func envSection(w io.Writer, title string, changes []envsync.Change, marker string, limit int) {
	if len(changes) == 0 {
		return
	}
	section(w, title)
	for _, c := range changes {
		fmt.Fprintf(w, "  %s\n", ui.Cyan(c.Service+"/"+c.Target))
		for i, v := range c.Vars {
			if limit > 0 && i == limit {
				fmt.Fprintf(w, "    %s\n", ui.Gray(fmt.Sprintf("+%d more", len(c.Vars)-limit)))
				break
			}
			fmt.Fprintf(w, "    %s %s\n", marker, v)
		}
	}
}
