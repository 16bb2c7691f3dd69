package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"nlrbdata/lib/scrapers/nlrb"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func writeJson(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func writeCasesJson(out io.Writer, cases []nlrb.CaseSummary) error {
	fields := make([]map[string]any, len(cases))
	for i, c := range cases {
		fields[i] = c.Fields()
	}
	return writeJson(out, fields)
}

func renderCases(out io.Writer, cases []nlrb.CaseSummary) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Case", "Title", "Status", "Status Date", "Region", "City"})
	for _, c := range cases {
		statusDate := ""
		if c.StatusDate != nil {
			statusDate = c.StatusDate.Format("2006-01-02")
		}
		status := c.StatusType
		if status == "" {
			status = c.Status
		}
		t.AppendRow(table.Row{c.CaseNumber, c.Title, status, statusDate, c.RegionNumber, c.RegionCity})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d cases", len(cases))})
	t.Render()
}

func renderTable(out io.Writer, title string, data nlrb.Table) {
	if data.Empty() {
		fmt.Fprintf(out, "%s: none\n", title)
		return
	}
	t := newTable(out)
	t.SetTitle(title)
	if len(data.Columns) > 0 {
		header := table.Row{}
		for _, column := range data.Columns {
			header = append(header, column)
		}
		t.AppendHeader(header)
	}
	for _, row := range data.Rows {
		r := table.Row{}
		for _, cell := range row {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}
	t.Render()
}

func renderCase(out io.Writer, detail nlrb.CaseDetail) {
	closeReason := "-"
	if detail.CloseReason != nil {
		closeReason = *detail.CloseReason
	}

	t := newTable(out)
	t.SetTitle(detail.CaseNumber)
	t.AppendRows([]table.Row{
		{"City", detail.City},
		{"Date Filed", detail.DateFiled},
		{"Region", detail.Region},
		{"Status", detail.Status},
		{"Close Reason", closeReason},
	})
	t.Render()

	renderTable(out, "Docket", detail.Docket)
	renderTable(out, "Participants", detail.Participants)

	if len(detail.Allegations) == 0 {
		fmt.Fprintln(out, "Allegations: none")
		return
	}
	fmt.Fprintln(out, "Allegations:")
	for _, allegation := range detail.Allegations {
		fmt.Fprintf(out, "  - %s\n", allegation)
	}
}
