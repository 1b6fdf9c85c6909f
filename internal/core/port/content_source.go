package port

import "context"

// PageScraper extracts readable text from a web page.
type PageScraper interface {
	ScrapeText(ctx context.Context, url string) (string, error)
}

// Summarizer condenses scraped text into a short business summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
