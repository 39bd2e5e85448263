package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fulldump/landregistry/listview"
	"github.com/fulldump/landregistry/service"
	"github.com/fulldump/landregistry/utils"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderViews(views []*service.View) string {
	t := newTable("name", "title", "record", "total", "actions")
	for _, view := range views {
		t.Row(view.Name, view.Title, view.Record, strconv.Itoa(view.Total), strings.Join(view.Actions, ", "))
	}
	return t.Render()
}

func renderSnapshot(snapshot *listview.Snapshot, columns []string) string {

	if len(columns) == 0 && len(snapshot.Records) > 0 {
		columns = utils.GetKeys(snapshot.Records[0].Fields())
	}

	t := newTable(columns...)
	for _, record := range snapshot.Records {
		fields := record.Fields()
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = listview.FormatValue(fields[column])
		}
		t.Row(row...)
	}

	footer := fmt.Sprintf("Showing %d to %d of %d, page %d of %d",
		snapshot.From, snapshot.To, snapshot.Page.Total,
		snapshot.Page.CurrentPage, snapshot.Page.TotalPages)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(snapshot.Title),
		t.Render(),
		footerStyle.Render(footer),
	)
}

func renderSummary(field string, counts map[string]int) string {

	values := utils.GetKeys(counts)
	sort.SliceStable(values, func(i, j int) bool {
		return counts[values[i]] > counts[values[j]]
	})

	t := newTable(field, "count")
	for _, value := range values {
		t.Row(value, strconv.Itoa(counts[value]))
	}
	return t.Render()
}
