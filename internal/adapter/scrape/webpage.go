package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
	"mediaplan/internal/pkg/httpretry"
)

// Webpage extracts the paragraph text of a page.
type Webpage struct {
	doer httpretry.HTTPDoer
}

var _ port.PageScraper = (*Webpage)(nil)

func NewWebpage(doer httpretry.HTTPDoer) *Webpage {
	return &Webpage{doer: doer}
}

// ScrapeText joins the text of every <p> element. Pages without paragraphs
// fall back to readability's article extraction. A destination refused by
// the doer is reported as domain.ErrInvalidInput.
func (w *Webpage) ScrapeText(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	body, err := fetch(ctx, w.doer, rawURL)
	if errors.Is(err, httpretry.ErrNonPublicAddress) {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := collapse(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) > 0 {
		return strings.Join(parts, " "), nil
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	return collapse(article.TextContent), nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
