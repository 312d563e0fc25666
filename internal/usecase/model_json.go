package usecase

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shofit/backend/internal/domain"
)

// jsonObjectRe grabs the first { through the last } of a model reply.
// Models wrap answers in prose or markdown fences; the greedy span covers
// the whole object either way.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSONObject returns the JSON object span inside a model reply, or
// "" when the reply contains none.
func extractJSONObject(raw string) string {
	return jsonObjectRe.FindString(raw)
}

// modelChart is the JSON shape the extraction prompt demands. Row values
// are decoded loosely because models sometimes emit bare numbers where
// strings were asked for.
type modelChart struct {
	Headers []string                 `json:"headers"`
	Rows    []map[string]interface{} `json:"rows"`
}

// parseModelChart decodes a model reply into a SizeChart. Row values are
// normalized to trimmed strings, null values dropped, and any row key the
// model used without declaring in headers is appended to them so every row
// key stays covered. Returns ok=false when no JSON object is found or the
// decode fails.
func parseModelChart(raw string) (domain.SizeChart, bool) {
	span := extractJSONObject(raw)
	if span == "" {
		return domain.EmptySizeChart(), false
	}

	var payload modelChart
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return domain.EmptySizeChart(), false
	}

	chart := domain.EmptySizeChart()
	chart.Headers = append(chart.Headers, payload.Headers...)

	known := make(map[string]bool, len(chart.Headers))
	for _, h := range chart.Headers {
		known[h] = true
	}

	for _, row := range payload.Rows {
		record := make(map[string]string, len(row))
		for key, value := range row {
			s, ok := stringifyValue(value)
			if !ok {
				continue
			}
			record[key] = s
		}
		if len(record) == 0 {
			continue
		}

		var missing []string
		for key := range record {
			if !known[key] {
				known[key] = true
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		chart.Headers = append(chart.Headers, missing...)

		chart.Rows = append(chart.Rows, record)
	}
	return chart, true
}

// stringifyValue renders a decoded JSON value as a cell string. Nulls are
// dropped; nested structures keep their JSON form.
func stringifyValue(v interface{}) (string, bool) {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(value), true
	case nil:
		return "", false
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
