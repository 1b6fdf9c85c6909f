package scrape

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// readTable returns the first two cell texts of every data row of the first
// table matching selector, keyed by the first cell. Header rows and rows
// with fewer than two cells are skipped.
func readTable(body []byte, selector string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no %q table on page", selector)
	}

	out := make(map[string]string)
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		if key == "" {
			return
		}
		out[key] = strings.TrimSpace(cells.Eq(1).Text())
	})
	return out, nil
}

// parseNumber reads figures such as "2,345.6", "3.17%" or "$1.20".
func parseNumber(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "%", "", "$", "", " ", "").Replace(s)
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
