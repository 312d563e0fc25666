package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shofit/backend/internal/domain"
)

const (
	// rawTextLimit caps the diagnostic excerpt returned with every
	// extraction result.
	rawTextLimit = 2000
	// aiTextLimit caps the page text sent to the model by the AI fallback.
	aiTextLimit = 5000
)

// pageContent is one fetched page, parsed once and shared by every strategy.
type pageContent struct {
	doc      *goquery.Document
	bodyText string
}

// extractionStrategy is one self-contained extraction attempt. Strategies
// run in registration order and the first one returning a chart with rows
// wins; later strategies never run.
type extractionStrategy struct {
	name string
	run  func(ctx context.Context, page *pageContent) domain.SizeChart
}

// ExtractionService turns a product-page URL into a SizeChart by trying a
// fixed sequence of strategies: keyword-matched tables, size-flagged
// regions, a whole-page text pattern, and finally the model.
type ExtractionService struct {
	fetcher    domain.PageFetcher
	model      domain.ModelClient
	strategies []extractionStrategy
}

// NewExtractionService creates an extraction service with its dependencies.
func NewExtractionService(fetcher domain.PageFetcher, model domain.ModelClient) *ExtractionService {
	s := &ExtractionService{
		fetcher: fetcher,
		model:   model,
	}
	s.strategies = []extractionStrategy{
		{name: "html-table", run: func(_ context.Context, page *pageContent) domain.SizeChart {
			return scanTables(page.doc)
		}},
		{name: "keyword-region", run: func(_ context.Context, page *pageContent) domain.SizeChart {
			return scanSizeRegions(page.doc)
		}},
		{name: "text-pattern", run: func(_ context.Context, page *pageContent) domain.SizeChart {
			return extractFromBodyText(page.bodyText)
		}},
		{name: "ai-fallback", run: s.aiExtract},
	}
	return s
}

// Extract fetches the page and runs the strategy chain over it. A fetch
// failure produces Success=false and stops there; a fetched page always
// produces Success=true, with the canonical empty chart when every strategy
// comes up empty. Strategies run strictly one after another.
func (s *ExtractionService) Extract(ctx context.Context, pageURL string) domain.ExtractionResult {
	result := domain.ExtractionResult{
		SizeChart: domain.EmptySizeChart(),
		URL:       pageURL,
	}

	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		log.Printf("[EXTRACT] fetch failed for %s: %v", pageURL, err)
		result.Error = err.Error()
		return result
	}
	result.Success = true

	page, err := newPageContent(html)
	if err != nil {
		log.Printf("[EXTRACT] parse failed for %s: %v", pageURL, err)
		result.RawText = truncateRunes(normalizeText(html), rawTextLimit)
		return result
	}
	result.RawText = truncateRunes(page.bodyText, rawTextLimit)

	for _, strategy := range s.strategies {
		chart := strategy.run(ctx, page)
		if chart.IsEmpty() {
			continue
		}
		log.Printf("[EXTRACT] strategy %s found %d rows on %s", strategy.name, len(chart.Rows), pageURL)
		result.SizeChart = chart
		return result
	}

	log.Printf("[EXTRACT] no size chart found on %s", pageURL)
	return result
}

// newPageContent parses the HTML once and precomputes the normalized body
// text the text-based strategies work from.
func newPageContent(html string) (*pageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &pageContent{
		doc:      doc,
		bodyText: normalizeText(doc.Find("body").Text()),
	}, nil
}

// aiExtract is the terminal strategy: page text goes to the model with a
// strict JSON-only prompt. Every failure mode collapses to the canonical
// empty chart; this strategy never reports an error upward. With no API key
// configured the model client refuses immediately and no call is made.
func (s *ExtractionService) aiExtract(ctx context.Context, page *pageContent) domain.SizeChart {
	prompt := buildChartPrompt(truncateRunes(page.bodyText, aiTextLimit))

	raw, err := s.model.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrModelNotConfigured) {
			log.Printf("[EXTRACT] skipping AI fallback: %v", err)
		} else {
			log.Printf("[EXTRACT] AI fallback failed: %v", err)
		}
		return domain.EmptySizeChart()
	}

	chart, ok := parseModelChart(raw)
	if !ok {
		log.Printf("[EXTRACT] AI fallback returned no parseable chart")
		return domain.EmptySizeChart()
	}
	return chart
}

// buildChartPrompt builds the extraction instruction for the model.
func buildChartPrompt(pageText string) string {
	return fmt.Sprintf(`You are a data extraction assistant. Find the clothing size chart in the following web page text.

Output ONLY valid JSON with this exact structure (no markdown, no explanation):
{"headers": ["Size", "Chest", "Waist"], "rows": [{"Size": "S", "Chest": "34-36", "Waist": "28-30"}]}

Rules:
- headers: the column names of the size chart, in order
- rows: one object per size, keys matching the headers, all values as strings
- Keep measurement ranges exactly as written (e.g. "34-36")
- Omit fields that are not present; do not invent values
- If the text contains no size chart, return {"headers": [], "rows": []}

Page text:
%s`, pageText)
}
