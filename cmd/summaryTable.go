package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// sheetStatus is one line of the end-of-run summary.
type sheetStatus struct {
	name     string
	rows     int
	category category
}

// printRunSummary renders the sheets written this run as a table.
func printRunSummary(w io.Writer, sheets []sheetStatus) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Sheet", "Category", "Rows"})
	for i, s := range sheets {
		t.AppendRow(table.Row{i + 1, s.name, s.category.String(), s.rows})
	}
	t.Render()
}

// printBattery renders the command battery with each command's local
// authorization category. No network calls are made.
func printBattery(w io.Writer, commands []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Command", "Category", "Roles"})
	for i, name := range commands {
		cat, roles := classify(name)
		roleCol := "any"
		if cat == catUnclassified {
			roleCol = "server decides"
		} else if len(roles) > 0 {
			roleCol = ""
			for j, r := range roles {
				if j > 0 {
					roleCol += ", "
				}
				roleCol += r
			}
		}
		t.AppendRow(table.Row{i + 1, name, cat.String(), roleCol})
	}
	t.Render()
}
