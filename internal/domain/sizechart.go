package domain

// SizeChart is a normalized size chart extracted from a product page.
// Headers keep the column order they appeared in; each row maps a header
// name (or a synthesized "column_<index>" placeholder when a header is
// missing) to a trimmed cell value. A chart with zero rows is the canonical
// "not found" value - it is valid and never nil.
type SizeChart struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

// EmptySizeChart returns the canonical empty chart. Both slices are
// allocated so the chart serializes as {"headers":[],"rows":[]} rather
// than null.
func EmptySizeChart() SizeChart {
	return SizeChart{
		Headers: []string{},
		Rows:    []map[string]string{},
	}
}

// IsEmpty reports whether the chart carries no data rows.
func (c SizeChart) IsEmpty() bool {
	return len(c.Rows) == 0
}

// ExtractionResult is the outcome of one size-chart extraction call.
// Success reflects whether the page fetch succeeded; a fetched page with no
// discoverable chart is still a success with an empty SizeChart. RawText is
// a diagnostic excerpt of the page body, capped at 2000 characters.
type ExtractionResult struct {
	Success   bool      `json:"success"`
	SizeChart SizeChart `json:"sizeChart"`
	RawText   string    `json:"rawText"`
	URL       string    `json:"url"`
	Error     string    `json:"error,omitempty"`
}

// ExtractRequest is the payload for the extract-size-chart operation.
type ExtractRequest struct {
	URL string `json:"url"`
}
