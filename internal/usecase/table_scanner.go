package usecase

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shofit/backend/internal/domain"
)

// tableKeywords mark a table as size-chart material. Matching is a plain
// substring test over the table's lowercased text.
var tableKeywords = []string{"size", "chest", "waist", "hip", "shoulder", "measurement"}

// scanTables walks every <table> in document order and returns the chart
// from the first keyword-matching table that parses into at least one row.
// The winner is always the earliest productive table, never a scored pick.
func scanTables(doc *goquery.Document) domain.SizeChart {
	chart := domain.EmptySizeChart()
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		text := strings.ToLower(table.Text())
		if !containsAny(text, tableKeywords) {
			return true
		}
		parsed := parseTable(table)
		if parsed.IsEmpty() {
			return true
		}
		chart = parsed
		return false
	})
	return chart
}

// parseTable converts one <table> selection into a SizeChart. Headers come
// from the first row's cells; data rows from the rest, mapped positionally.
// If no data rows come out (single-row tables, or charts without a real
// header row), a repair pass re-reads every row as data against the same
// headers.
func parseTable(table *goquery.Selection) domain.SizeChart {
	chart := domain.EmptySizeChart()

	rows := table.Find("tr")
	if rows.Length() == 0 {
		return chart
	}

	headers := []string{}
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(cell.Text()))
	})
	chart.Headers = headers

	chart.Rows = parseDataRows(rows.Slice(1, rows.Length()), headers)
	if len(chart.Rows) == 0 {
		chart.Rows = parseDataRows(rows, headers)
	}
	return chart
}

// parseDataRows maps each row's cells onto the headers by position. Cells
// past the end of the header list (or under a blank header) get a
// synthesized "column_<index>" key. Rows with no cells are dropped.
func parseDataRows(rows *goquery.Selection, headers []string) []map[string]string {
	out := []map[string]string{}
	rows.Each(func(_ int, row *goquery.Selection) {
		record := map[string]string{}
		row.Find("th, td").Each(func(i int, cell *goquery.Selection) {
			key := fmt.Sprintf("column_%d", i)
			if i < len(headers) && headers[i] != "" {
				key = headers[i]
			}
			record[key] = strings.TrimSpace(cell.Text())
		})
		if len(record) == 0 {
			return
		}
		out = append(out, record)
	})
	return out
}
