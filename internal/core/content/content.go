// Package content renders the fixed ad-copy and blog templates around a
// business summary.
package content

import (
	"fmt"

	"github.com/osteele/liquid"

	"mediaplan/internal/core/domain"
)

const (
	googleAdSource = `Looking for {{ summary }}? Get the best services in {{ country }} now!`
	metaAdSource   = `Explore top-notch {{ summary }} services in {{ country }}. Click here to learn more!`
	blogSource     = "Are you looking for the best {{ summary }}? Look no further!\n\n" +
		"In {{ country }}, our {{ summary }} services stand out for their quality and reliability."
)

var (
	engine   = liquid.NewEngine()
	googleAd = mustParse(googleAdSource)
	metaAd   = mustParse(metaAdSource)
	blog     = mustParse(blogSource)
)

func mustParse(src string) *liquid.Template {
	tpl, err := engine.ParseString(src)
	if err != nil {
		panic(fmt.Sprintf("content: parse template: %v", err))
	}
	return tpl
}

// GenerateAds renders the Google and Meta ad copy.
func GenerateAds(summary, country string) (domain.AdCopy, error) {
	b := bindings(summary, country)
	google, err := googleAd.RenderString(b)
	if err != nil {
		return domain.AdCopy{}, fmt.Errorf("render google ad: %w", err)
	}
	meta, err := metaAd.RenderString(b)
	if err != nil {
		return domain.AdCopy{}, fmt.Errorf("render meta ad: %w", err)
	}
	return domain.AdCopy{Google: google, Meta: meta}, nil
}

// GenerateBlog renders the two-paragraph blog post.
func GenerateBlog(summary, country string) (string, error) {
	out, err := blog.RenderString(bindings(summary, country))
	if err != nil {
		return "", fmt.Errorf("render blog: %w", err)
	}
	return out, nil
}

func bindings(summary, country string) liquid.Bindings {
	return liquid.Bindings{"summary": summary, "country": country}
}
