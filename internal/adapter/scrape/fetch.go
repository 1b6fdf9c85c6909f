// Package scrape reads benchmark tables and page text out of HTML.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"mediaplan/internal/pkg/httpretry"
)

// maxBody caps how much of a page is read.
const maxBody = 2 << 20

func fetch(ctx context.Context, doer httpretry.HTTPDoer, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("User-Agent", "mediaplan/1.0")
	resp, err := doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}
