package usecase

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shofit/backend/internal/domain"
)

// unitHints are the unit markers a size-flagged region must carry before it
// is worth parsing. The bare quote covers inch notation like 32".
var unitHints = []string{"cm", "inch", `"`}

// scanSizeRegions is the second strategy: elements whose class or id hints
// at a size chart. A candidate qualifies when its class/id contains "size"
// or "chart" (case-insensitive substring) and its text mentions "size" plus
// at least one unit. Candidates are tried in document order; the first one
// yielding a non-empty chart wins.
func scanSizeRegions(doc *goquery.Document) domain.SizeChart {
	chart := domain.EmptySizeChart()
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		attrs := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
		if !strings.Contains(attrs, "size") && !strings.Contains(attrs, "chart") {
			return true
		}

		text := strings.ToLower(sel.Text())
		if !strings.Contains(text, "size") || !containsAny(text, unitHints) {
			return true
		}

		chart = parseRegion(sel)
		return chart.IsEmpty()
	})
	return chart
}

// parseRegion extracts a chart from one candidate element. Nested tables
// take priority and reuse the table parse; a table-less region falls back
// to the text pattern extractor.
func parseRegion(sel *goquery.Selection) domain.SizeChart {
	tables := sel.Find("table")
	if tables.Length() > 0 {
		chart := domain.EmptySizeChart()
		tables.EachWithBreak(func(_ int, table *goquery.Selection) bool {
			parsed := parseTable(table)
			if parsed.IsEmpty() {
				return true
			}
			chart = parsed
			return false
		})
		return chart
	}
	return extractFromText(sel.Text())
}
