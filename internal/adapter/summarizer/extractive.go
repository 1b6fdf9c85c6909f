// Package summarizer turns scraped page text into a short business summary.
package summarizer

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"mediaplan/internal/core/port"
)

// ErrNoText is returned when there is nothing to summarize.
var ErrNoText = errors.New("no text to summarize")

var sentenceEnd = regexp.MustCompile(`[.!?]+(\s+|$)`)

// Extractive picks the highest scoring sentences of the text, scored by the
// frequency of their non-stopword terms, and returns them in their original
// order. It needs no model and is the default summarizer.
type Extractive struct {
	maxSentences int
}

var _ port.Summarizer = (*Extractive)(nil)

func NewExtractive(maxSentences int) *Extractive {
	if maxSentences <= 0 {
		maxSentences = 2
	}
	return &Extractive{maxSentences: maxSentences}
}

func (e *Extractive) Summarize(_ context.Context, text string) (string, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return "", ErrNoText
	}

	freq := make(map[string]int)
	for _, w := range strings.Fields(preprocess(text)) {
		freq[w]++
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, 0, len(sentences))
	for i, s := range sentences {
		words := terms(s)
		if len(words) == 0 {
			continue
		}
		total := 0
		for _, w := range words {
			total += freq[w]
		}
		ranked = append(ranked, scored{idx: i, score: float64(total) / float64(len(words))})
	}
	if len(ranked) == 0 {
		return "", ErrNoText
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > e.maxSentences {
		ranked = ranked[:e.maxSentences]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].idx < ranked[j].idx })

	picked := make([]string, 0, len(ranked))
	for _, r := range ranked {
		picked = append(picked, sentences[r.idx])
	}
	return strings.Join(picked, " "), nil
}

func splitSentences(text string) []string {
	text = strings.Join(strings.Fields(text), " ")
	var out []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}
