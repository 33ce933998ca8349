// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"clientgen/internal/common"
	"clientgen/internal/diag"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

var severityOrder = map[diag.Severity]int{
	diag.SeverityInternal: 0,
	diag.SeverityError:    1,
	diag.SeverityWarning:  2,
}

func newTable(w io.Writer, format Format) *tablewriter.Table {

	if format != FormatMarkdown {
		return tablewriter.NewTable(w)
	}
	return tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{Formatting: tw.CellFormatting{AutoFormat: tw.Fail}},
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignNone}},
		}),
	)
}

// Diagnostics печатает диагностики таблицей: сначала внутренние ошибки, затем ошибки и предупреждения.
func Diagnostics(w io.Writer, items []diag.Diagnostic, format Format) (err error) {

	if len(items) == 0 {
		_, err = fmt.Fprintln(w, "no diagnostics")
		return
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b diag.Diagnostic) int {
		if d := severityOrder[a.Severity] - severityOrder[b.Severity]; d != 0 {
			return d
		}
		return strings.Compare(a.Operation, b.Operation)
	})

	rows := make([][]string, 0, len(sorted))
	for _, item := range sorted {
		rows = append(rows, []string{string(item.Severity), item.Operation, string(item.Code), item.Message})
	}
	table := newTable(w, format)
	table.Header("Severity", "Operation", "Code", "Message")
	if err = table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add rows to table: %w", err)
	}
	if err = table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	var summary []string
	for severity, count := range common.SortedPairs(diag.Count(items)) {
		summary = append(summary, fmt.Sprintf("%s: %d", severity, count))
	}
	_, err = fmt.Fprintln(w, strings.Join(summary, ", "))
	return
}

// FunctionRow — строка таблицы функций в README сгенерированного клиента.
type FunctionRow struct {
	Function string
	Endpoint string
	Returns  string
}

func Functions(w io.Writer, rows []FunctionRow) (err error) {

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{"`" + row.Function + "`", "`" + row.Endpoint + "`", "`" + row.Returns + "`"})
	}
	table := newTable(w, FormatMarkdown)
	table.Header("Function", "Endpoint", "Returns")
	if err = table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add rows to table: %w", err)
	}
	if err = table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return
}
