package usecase

import (
	"regexp"

	"github.com/shofit/backend/internal/domain"
)

// sizeTokens is the canonical scan order for size labels in free text.
// Extracted rows accumulate in this order, not in text order.
var sizeTokens = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL", "XXXL", "2XL", "3XL", "4XL"}

// patternHeaders is the fixed column set for pattern-extracted charts.
var patternHeaders = []string{"Size", "Chest", "Waist", "Hip", "Shoulder"}

// bodyParts pairs each pattern header with its value regex. A value is a
// number or a numeric range like 34-36, captured verbatim.
var bodyParts = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Chest", regexp.MustCompile(`(?i)chest\s*[:=]?\s*(\d+(?:-\d+)?)`)},
	{"Waist", regexp.MustCompile(`(?i)waist\s*[:=]?\s*(\d+(?:-\d+)?)`)},
	{"Hip", regexp.MustCompile(`(?i)hips?\s*[:=]?\s*(\d+(?:-\d+)?)`)},
	{"Shoulder", regexp.MustCompile(`(?i)shoulders?\s*[:=]?\s*(\d+(?:-\d+)?)`)},
}

// tokenSpanRes maps each size token to a regex that captures its
// measurement span: the token as a whole word, a colon or whitespace, then
// the rest of the line.
var tokenSpanRes = buildTokenSpanRes()

func buildTokenSpanRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(sizeTokens))
	for _, token := range sizeTokens {
		res[token] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b[:\s]+([^\n]+)`)
	}
	return res
}

// chartPhraseRe is the whole-page gate: the literal phrase "size chart" or
// "size guide", then eventually a size token, then a number carrying a unit.
var chartPhraseRe = regexp.MustCompile(
	`(?is)size\s*(?:chart|guide).*?\b(?:xxs|xs|s|m|l|xl|xxl|xxxl|2xl|3xl|4xl)\b.*?\d+(?:\.\d+)?\s*(?:cm|inch(?:es)?|")`,
)

// extractFromText pulls size rows out of an arbitrary text block. For each
// size token, in canonical order, it captures the token's measurement span
// and reads body-part values from it. A token only becomes a row when at
// least one body-part value was found next to it; a bare size mention is
// not a row. Rows keep token-scan order, not text order.
func extractFromText(text string) domain.SizeChart {
	rows := []map[string]string{}
	for _, token := range sizeTokens {
		m := tokenSpanRes[token].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		span := m[1]

		row := map[string]string{"Size": token}
		for _, part := range bodyParts {
			if pm := part.re.FindStringSubmatch(span); pm != nil {
				row[part.name] = pm[1]
			}
		}
		if len(row) == 1 {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return domain.EmptySizeChart()
	}
	return domain.SizeChart{
		Headers: append([]string{}, patternHeaders...),
		Rows:    rows,
	}
}

// extractFromBodyText is the whole-page last resort, used only after the
// structural strategies came up empty. The page must pass the chart-phrase
// gate; the matched span is then handed to the structured parser above.
func extractFromBodyText(text string) domain.SizeChart {
	span := chartPhraseRe.FindString(text)
	if span == "" {
		return domain.EmptySizeChart()
	}
	return extractFromText(span)
}
